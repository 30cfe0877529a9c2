// file: internals/features/leave/dto/leave_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/leave/model"
	"kampusku_backend/internals/helpers/dbtime"
)

const DateLayout = "2006-01-02"

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CheckConflictsRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// SubstitutionInput: satu occurrence (slot × tanggal) + substitute pilihan applicant.
type SubstitutionInput struct {
	ScheduleID          uuid.UUID `json:"schedule_id" validate:"required"`
	SubstituteFacultyID uuid.UUID `json:"substitute_faculty_id" validate:"required"`
	Day                 string    `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	Date                string    `json:"date" validate:"required,datetime=2006-01-02"`
}

type ApplyLeaveRequest struct {
	StartDate     string              `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string              `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason        string              `json:"reason" validate:"required,max=500"`
	Substitutions []SubstitutionInput `json:"substitutions" validate:"omitempty,dive"`
}

// ParseRange: parse + cek start <= end.
func ParseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date tidak valid")
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date tidak valid")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date harus >= start_date")
	}
	return start, end, nil
}

func (s SubstitutionInput) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, s.Date)
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SubstitutionResponse struct {
	LeaveSubstitutionID uuid.UUID `json:"leave_substitution_id"`
	ScheduleID          uuid.UUID `json:"schedule_id"`
	ScheduleSubject     string    `json:"schedule_subject,omitempty"`

	SubstituteFacultyID uuid.UUID `json:"substitute_faculty_id"`
	SubstituteName      string    `json:"substitute_name,omitempty"`
	SubstituteEmail     string    `json:"substitute_email,omitempty"`

	Day       string      `json:"day"`
	Date      string      `json:"date"`
	StartTime *dbtime.Tod `json:"start_time,omitempty"`
	EndTime   *dbtime.Tod `json:"end_time,omitempty"`
	Confirmed bool        `json:"confirmed"`
}

type LeaveResponse struct {
	FacultyLeaveID uuid.UUID `json:"faculty_leave_id"`
	FacultyID      uuid.UUID `json:"faculty_id"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`

	Days          []string               `json:"days"`
	Substitutions []SubstitutionResponse `json:"substitutions"`

	CreatedAt time.Time `json:"created_at"`
}

func LeaveFromModel(m model.FacultyLeaveModel, subs []SubstitutionResponse) LeaveResponse {
	if subs == nil {
		subs = []SubstitutionResponse{}
	}
	return LeaveResponse{
		FacultyLeaveID: m.FacultyLeaveID,
		FacultyID:      m.FacultyLeaveFacultyID,
		StartDate:      m.FacultyLeaveStartDate.Format(DateLayout),
		EndDate:        m.FacultyLeaveEndDate.Format(DateLayout),
		Reason:         m.FacultyLeaveReason,
		Status:         m.FacultyLeaveStatus,
		Days:           m.FacultyLeaveDays,
		Substitutions:  subs,
		CreatedAt:      m.FacultyLeaveCreatedAt,
	}
}
