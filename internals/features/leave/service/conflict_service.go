// file: internals/features/leave/service/conflict_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleModel "kampusku_backend/internals/features/schedule/model"
	"kampusku_backend/internals/helpers/dbtime"
)

// LeaveDay = satu tanggal kalender dalam rentang cuti + nama weekday-nya.
type LeaveDay struct {
	Date time.Time
	Day  string
}

// ConflictingOccurrence = satu (slot × tanggal) yang bentrok dengan cuti.
// Slot mingguan yang sama bisa muncul beberapa kali kalau rentang cuti
// melewati weekday-nya lebih dari sekali.
type ConflictingOccurrence struct {
	ScheduleID uuid.UUID  `json:"schedule_id"`
	Subject    string     `json:"subject"`
	Day        string     `json:"day"`
	Date       string     `json:"date"` // "2006-01-02"
	StartTime  dbtime.Tod `json:"start_time"`
	EndTime    dbtime.Tod `json:"end_time"`
	Department string     `json:"department"`
	Year       int        `json:"year"`
}

// LeaveDaysBetween jalan dari start sampai end inklusif dan melewati
// restDay (hari libur mingguan kampus, kebijakan institusi).
// Jam/zona diabaikan; yang dihitung tanggal kalender.
func LeaveDaysBetween(start, end time.Time, restDay string) []LeaveDay {
	days := []LeaveDay{}
	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	for !cur.After(last) {
		name := cur.Weekday().String()
		if name != restDay {
			days = append(days, LeaveDay{Date: cur, Day: name})
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// DistinctDayNames: weekday unik yang tersentuh, urutan kemunculan.
func DistinctDayNames(days []LeaveDay) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, d := range days {
		if _, ok := seen[d.Day]; !ok {
			seen[d.Day] = struct{}{}
			out = append(out, d.Day)
		}
	}
	return out
}

// ConflictService: deteksi bentrok cuti vs slot mingguan milik faculty.
type ConflictService struct {
	DB      *gorm.DB
	RestDay string
}

func NewConflictService(db *gorm.DB, restDay string) *ConflictService {
	return &ConflictService{DB: db, RestDay: restDay}
}

// DetectConflicts: expand rentang → weekday set → ambil slot non-cancelled
// milik faculty di weekday tsb → silangkan per tanggal yang cocok.
func (s *ConflictService) DetectConflicts(facultyID uuid.UUID, start, end time.Time) ([]ConflictingOccurrence, error) {
	leaveDays := LeaveDaysBetween(start, end, s.RestDay)
	dayNames := DistinctDayNames(leaveDays)
	if len(dayNames) == 0 {
		return []ConflictingOccurrence{}, nil
	}

	var slots []scheduleModel.ScheduleModel
	if err := s.DB.
		Where("schedule_faculty_id = ? AND schedule_day IN ? AND schedule_is_cancelled = FALSE", facultyID, dayNames).
		Order("schedule_day ASC, schedule_start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return CrossOccurrences(slots, leaveDays), nil
}

// CrossOccurrences: (slot × tanggal dengan weekday sama) → occurrences.
func CrossOccurrences(slots []scheduleModel.ScheduleModel, leaveDays []LeaveDay) []ConflictingOccurrence {
	out := []ConflictingOccurrence{}
	for _, d := range leaveDays {
		for _, slot := range slots {
			if slot.ScheduleDay != d.Day {
				continue
			}
			out = append(out, ConflictingOccurrence{
				ScheduleID: slot.ScheduleID,
				Subject:    slot.ScheduleSubject,
				Day:        slot.ScheduleDay,
				Date:       d.Date.Format("2006-01-02"),
				StartTime:  slot.ScheduleStartTime,
				EndTime:    slot.ScheduleEndTime,
				Department: slot.ScheduleDepartment,
				Year:       slot.ScheduleYear,
			})
		}
	}
	return out
}
