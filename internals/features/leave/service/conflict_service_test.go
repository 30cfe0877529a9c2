package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scheduleModel "kampusku_backend/internals/features/schedule/model"
	"kampusku_backend/internals/helpers/dbtime"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		restDay  string
		wantDays []string
	}{
		{
			name:     "satu hari",
			start:    date(2025, time.March, 3), // Monday
			end:      date(2025, time.March, 3),
			restDay:  "Sunday",
			wantDays: []string{
				"Monday",
			},
		},
		{
			name:     "seminggu penuh skip Sunday",
			start:    date(2025, time.March, 3), // Monday
			end:      date(2025, time.March, 9), // Sunday
			restDay:  "Sunday",
			wantDays: []string{
				"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
			},
		},
		{
			name:     "rentang hanya rest day",
			start:    date(2025, time.March, 9), // Sunday
			end:      date(2025, time.March, 9),
			restDay:  "Sunday",
			wantDays: []string{},
		},
		{
			name:     "rest day Friday",
			start:    date(2025, time.March, 6), // Thursday
			end:      date(2025, time.March, 8), // Saturday
			restDay:  "Friday",
			wantDays: []string{
				"Thursday", "Saturday",
			},
		},
		{
			name:     "lintas dua minggu, weekday sama muncul dua kali",
			start:    date(2025, time.March, 3),  // Monday
			end:      date(2025, time.March, 10), // Monday minggu berikutnya
			restDay:  "Sunday",
			wantDays: []string{
				"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Monday",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeaveDaysBetween(tt.start, tt.end, tt.restDay)
			require.Len(t, got, len(tt.wantDays))
			for i, d := range got {
				assert.Equal(t, tt.wantDays[i], d.Day)
				assert.Equal(t, d.Day, d.Date.Weekday().String(), "tanggal dan weekday harus konsisten")
			}
		})
	}
}

func TestLeaveDaysBetween_InclusiveBounds(t *testing.T) {
	got := LeaveDaysBetween(date(2025, time.March, 3), date(2025, time.March, 5), "Sunday")
	require.Len(t, got, 3)
	assert.Equal(t, date(2025, time.March, 3), got[0].Date)
	assert.Equal(t, date(2025, time.March, 5), got[2].Date)
}

func TestDistinctDayNames(t *testing.T) {
	days := LeaveDaysBetween(date(2025, time.March, 3), date(2025, time.March, 10), "Sunday")
	names := DistinctDayNames(days)
	// Monday muncul dua kali di rentang, tapi distinct-nya sekali
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}, names)
}

func TestCrossOccurrences(t *testing.T) {
	monSlot := scheduleModel.ScheduleModel{
		ScheduleID:         uuid.New(),
		ScheduleSubject:    "Basis Data",
		ScheduleDay:        "Monday",
		ScheduleStartTime:  mustTod(t, "09:00"),
		ScheduleEndTime:    mustTod(t, "10:00"),
		ScheduleDepartment: "CSE",
		ScheduleYear:       2,
	}
	wedSlot := scheduleModel.ScheduleModel{
		ScheduleID:         uuid.New(),
		ScheduleSubject:    "Jaringan Komputer",
		ScheduleDay:        "Wednesday",
		ScheduleStartTime:  mustTod(t, "11:00"),
		ScheduleEndTime:    mustTod(t, "12:00"),
		ScheduleDepartment: "CSE",
		ScheduleYear:       2,
	}

	t.Run("slot mingguan muncul per tanggal yang cocok", func(t *testing.T) {
		// Rentang dua minggu: Monday 2x, Wednesday 1x
		days := LeaveDaysBetween(date(2025, time.March, 3), date(2025, time.March, 10), "Sunday")
		got := CrossOccurrences([]scheduleModel.ScheduleModel{monSlot, wedSlot}, days)

		require.Len(t, got, 3)
		assert.Equal(t, monSlot.ScheduleID, got[0].ScheduleID)
		assert.Equal(t, "2025-03-03", got[0].Date)
		assert.Equal(t, wedSlot.ScheduleID, got[1].ScheduleID)
		assert.Equal(t, "2025-03-05", got[1].Date)
		assert.Equal(t, monSlot.ScheduleID, got[2].ScheduleID)
		assert.Equal(t, "2025-03-10", got[2].Date)
	})

	t.Run("tidak ada weekday yang cocok", func(t *testing.T) {
		days := LeaveDaysBetween(date(2025, time.March, 4), date(2025, time.March, 4), "Sunday") // Tuesday
		got := CrossOccurrences([]scheduleModel.ScheduleModel{monSlot, wedSlot}, days)
		assert.Empty(t, got)
	})

	t.Run("tanpa slot", func(t *testing.T) {
		days := LeaveDaysBetween(date(2025, time.March, 3), date(2025, time.March, 8), "Sunday")
		got := CrossOccurrences(nil, days)
		assert.Empty(t, got)
	})
}

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	require.NoError(t, err)
	return tod
}
