package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status leave. Hanya "pending" yang pernah di-set oleh core ini;
// approved/rejected dimodelkan untuk kompatibilitas data, tidak ada
// flow approval yang mentransisikannya.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// FacultyLeaveModel = satu pengajuan cuti (rentang tanggal inklusif).
type FacultyLeaveModel struct {
	FacultyLeaveID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:faculty_leave_id" json:"faculty_leave_id"`

	FacultyLeaveFacultyID uuid.UUID `gorm:"type:uuid;not null;index;column:faculty_leave_faculty_id" json:"faculty_leave_faculty_id"`

	FacultyLeaveStartDate time.Time `gorm:"type:date;not null;column:faculty_leave_start_date" json:"faculty_leave_start_date"`
	FacultyLeaveEndDate   time.Time `gorm:"type:date;not null;column:faculty_leave_end_date" json:"faculty_leave_end_date"`
	FacultyLeaveReason    string    `gorm:"not null;column:faculty_leave_reason" json:"faculty_leave_reason"`

	FacultyLeaveStatus string `gorm:"type:varchar(10);not null;default:'pending';column:faculty_leave_status" json:"faculty_leave_status"`

	// Hari-hari (nama weekday, distinct) yang tersentuh rentang cuti
	FacultyLeaveDays pq.StringArray `gorm:"type:text[];column:faculty_leave_days" json:"faculty_leave_days"`

	// Value-list milik leave; ikut terhapus saat leave dihapus (hard delete)
	Substitutions []LeaveSubstitutionModel `gorm:"foreignKey:LeaveSubstitutionLeaveID;references:FacultyLeaveID;constraint:OnDelete:CASCADE" json:"substitutions"`

	FacultyLeaveCreatedAt time.Time  `gorm:"column:faculty_leave_created_at;autoCreateTime" json:"faculty_leave_created_at"`
	FacultyLeaveUpdatedAt *time.Time `gorm:"column:faculty_leave_updated_at;autoUpdateTime" json:"faculty_leave_updated_at,omitempty"`
}

func (FacultyLeaveModel) TableName() string { return "faculty_leaves" }

// LeaveSubstitutionModel = satu occurrence (slot × tanggal) yang
// digantikan substitute selama cuti.
type LeaveSubstitutionModel struct {
	LeaveSubstitutionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leave_substitution_id" json:"leave_substitution_id"`

	LeaveSubstitutionLeaveID    uuid.UUID `gorm:"type:uuid;not null;index;column:leave_substitution_leave_id" json:"leave_substitution_leave_id"`
	LeaveSubstitutionScheduleID uuid.UUID `gorm:"type:uuid;not null;column:leave_substitution_schedule_id" json:"leave_substitution_schedule_id"`

	LeaveSubstitutionSubstituteFacultyID uuid.UUID `gorm:"type:uuid;not null;column:leave_substitution_substitute_faculty_id" json:"leave_substitution_substitute_faculty_id"`

	LeaveSubstitutionDay  string    `gorm:"type:varchar(9);not null;column:leave_substitution_day" json:"leave_substitution_day"`
	LeaveSubstitutionDate time.Time `gorm:"type:date;not null;column:leave_substitution_date" json:"leave_substitution_date"`

	// Dimodelkan, tidak pernah di-set oleh core ini (tidak ada flow konfirmasi)
	LeaveSubstitutionConfirmed bool `gorm:"not null;default:false;column:leave_substitution_confirmed" json:"leave_substitution_confirmed"`
}

func (LeaveSubstitutionModel) TableName() string { return "faculty_leave_substitutions" }
