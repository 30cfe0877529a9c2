// file: internals/features/schedule/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/schedule/model"
	userModel "kampusku_backend/internals/features/users/model"
	"kampusku_backend/internals/helpers/dbtime"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateScheduleRequest struct {
	ScheduleSubject    string     `json:"schedule_subject" validate:"required,max=120"`
	ScheduleDay        string     `json:"schedule_day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	ScheduleStartTime  dbtime.Tod `json:"schedule_start_time" validate:"required"`
	ScheduleEndTime    dbtime.Tod `json:"schedule_end_time" validate:"required"`
	ScheduleDepartment string     `json:"schedule_department" validate:"required,max=60"`
	ScheduleYear       int        `json:"schedule_year" validate:"required,min=1,max=4"`
	ScheduleRoom       *string    `json:"schedule_room" validate:"omitempty,max=30"`
}

// Update (partial)
type UpdateScheduleRequest struct {
	ScheduleSubject   *string     `json:"schedule_subject" validate:"omitempty,max=120"`
	ScheduleDay       *string     `json:"schedule_day" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	ScheduleStartTime *dbtime.Tod `json:"schedule_start_time" validate:"omitempty"`
	ScheduleEndTime   *dbtime.Tod `json:"schedule_end_time" validate:"omitempty"`
	ScheduleRoom      *string     `json:"schedule_room" validate:"omitempty,max=30"`
}

type CancelScheduleRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=200"`
}

type AssignSubstituteRequest struct {
	SubstituteFacultyID uuid.UUID `json:"substitute_faculty_id" validate:"required"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

// UserBrief: potongan identitas untuk populate nama pengajar.
type UserBrief struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

type ScheduleResponse struct {
	ScheduleID uuid.UUID `json:"schedule_id"`

	ScheduleSubject   string     `json:"schedule_subject"`
	ScheduleDay       string     `json:"schedule_day"`
	ScheduleStartTime dbtime.Tod `json:"schedule_start_time"`
	ScheduleEndTime   dbtime.Tod `json:"schedule_end_time"`

	ScheduleDepartment string `json:"schedule_department"`
	ScheduleYear       int    `json:"schedule_year"`
	ScheduleRoom       string `json:"schedule_room"`

	ScheduleFaculty    *UserBrief `json:"schedule_faculty,omitempty"`
	ScheduleSubstitute *UserBrief `json:"schedule_substitute,omitempty"`

	ScheduleIsRescheduled   bool       `json:"schedule_is_rescheduled"`
	ScheduleRescheduledDate *time.Time `json:"schedule_rescheduled_date,omitempty"`

	ScheduleIsCancelled  bool    `json:"schedule_is_cancelled"`
	ScheduleCancelReason *string `json:"schedule_cancel_reason,omitempty"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateScheduleRequest) ToModel(facultyID uuid.UUID) model.ScheduleModel {
	room := "TBA"
	if r.ScheduleRoom != nil && *r.ScheduleRoom != "" {
		room = *r.ScheduleRoom
	}
	return model.ScheduleModel{
		ScheduleSubject:    r.ScheduleSubject,
		ScheduleDay:        r.ScheduleDay,
		ScheduleStartTime:  r.ScheduleStartTime,
		ScheduleEndTime:    r.ScheduleEndTime,
		ScheduleFacultyID:  facultyID,
		ScheduleDepartment: r.ScheduleDepartment,
		ScheduleYear:       r.ScheduleYear,
		ScheduleRoom:       room,
	}
}

func BriefFromUser(u *userModel.UserModel) *UserBrief {
	if u == nil {
		return nil
	}
	return &UserBrief{UserID: u.UserID, UserName: u.UserName, UserEmail: u.UserEmail}
}

// FromModel membentuk response terpopulasi; faculty/substitute boleh nil
// kalau lookup directory tidak menemukan (mis. data lama).
func FromModel(m model.ScheduleModel, faculty, substitute *userModel.UserModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:              m.ScheduleID,
		ScheduleSubject:         m.ScheduleSubject,
		ScheduleDay:             m.ScheduleDay,
		ScheduleStartTime:       m.ScheduleStartTime,
		ScheduleEndTime:         m.ScheduleEndTime,
		ScheduleDepartment:      m.ScheduleDepartment,
		ScheduleYear:            m.ScheduleYear,
		ScheduleRoom:            m.ScheduleRoom,
		ScheduleFaculty:         BriefFromUser(faculty),
		ScheduleSubstitute:      BriefFromUser(substitute),
		ScheduleIsRescheduled:   m.ScheduleIsRescheduled,
		ScheduleRescheduledDate: m.ScheduleRescheduledDate,
		ScheduleIsCancelled:     m.ScheduleIsCancelled,
		ScheduleCancelReason:    m.ScheduleCancelReason,
		ScheduleCreatedAt:       m.ScheduleCreatedAt,
	}
}
