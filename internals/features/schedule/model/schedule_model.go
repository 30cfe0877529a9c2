package model

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/helpers/dbtime"
)

// ScheduleModel = satu slot kuliah mingguan (hari + rentang jam) milik
// satu faculty. Field substitute/original/rescheduled adalah overlay
// sementara selama leave — cancel leave mengembalikan semuanya ke nil.
type ScheduleModel struct {
	ScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`

	ScheduleSubject string     `gorm:"not null;column:schedule_subject" json:"schedule_subject"`
	ScheduleDay     string     `gorm:"type:varchar(9);not null;column:schedule_day" json:"schedule_day"` // Monday..Saturday
	ScheduleStartTime dbtime.Tod `gorm:"type:time;not null;column:schedule_start_time" json:"schedule_start_time"`
	ScheduleEndTime   dbtime.Tod `gorm:"type:time;not null;column:schedule_end_time" json:"schedule_end_time"`

	ScheduleFacultyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_schedules_faculty_day;column:schedule_faculty_id" json:"schedule_faculty_id"`
	ScheduleDepartment string    `gorm:"not null;index:idx_schedules_cohort;column:schedule_department" json:"schedule_department"`
	ScheduleYear       int       `gorm:"not null;index:idx_schedules_cohort;column:schedule_year" json:"schedule_year"` // 1-4
	ScheduleRoom       string    `gorm:"not null;default:'TBA';column:schedule_room" json:"schedule_room"`

	// Overlay substitusi (diisi orchestrator leave, bukan ownership permanen)
	ScheduleIsRescheduled       bool       `gorm:"not null;default:false;column:schedule_is_rescheduled" json:"schedule_is_rescheduled"`
	ScheduleSubstituteFacultyID *uuid.UUID `gorm:"type:uuid;column:schedule_substitute_faculty_id" json:"schedule_substitute_faculty_id,omitempty"`
	ScheduleOriginalFacultyID   *uuid.UUID `gorm:"type:uuid;column:schedule_original_faculty_id" json:"schedule_original_faculty_id,omitempty"`
	ScheduleRescheduledDate     *time.Time `gorm:"type:date;column:schedule_rescheduled_date" json:"schedule_rescheduled_date,omitempty"`

	ScheduleIsCancelled  bool    `gorm:"not null;default:false;column:schedule_is_cancelled" json:"schedule_is_cancelled"`
	ScheduleCancelReason *string `gorm:"column:schedule_cancel_reason" json:"schedule_cancel_reason,omitempty"`

	ScheduleCreatedAt time.Time  `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt *time.Time `gorm:"column:schedule_updated_at;autoUpdateTime" json:"schedule_updated_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }
