package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, s string) Tod {
	t.Helper()
	v, err := Parse(s)
	require.NoError(t, err)
	return v
}

func TestParseAndBefore(t *testing.T) {
	assert.True(t, tod(t, "09:00").Before(tod(t, "10:00")))
	assert.False(t, tod(t, "10:00").Before(tod(t, "09:00")))
	assert.False(t, tod(t, "09:00").Before(tod(t, "09:00")))

	_, err := Parse("25:00")
	assert.Error(t, err)
}

func TestOverlaps_HalfOpen(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd string
		bStart, bEnd string
		want         bool
	}{
		{"terpisah jauh", "09:00", "10:00", "11:00", "12:00", false},
		{"overlap sebagian", "09:00", "10:30", "10:00", "11:00", true},
		{"identik", "09:00", "10:00", "09:00", "10:00", true},
		{"a di dalam b", "09:30", "09:45", "09:00", "10:00", true},
		// batas setengah-terbuka: selesai tepat di mulai yang lain = bukan bentrok
		{"a selesai tepat saat b mulai", "09:00", "10:00", "10:00", "11:00", false},
		{"b selesai tepat saat a mulai", "10:00", "11:00", "09:00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tod(t, tt.aStart), tod(t, tt.aEnd), tod(t, tt.bStart), tod(t, tt.bEnd))
			assert.Equal(t, tt.want, got)
			// simetris
			assert.Equal(t, tt.want, Overlaps(tod(t, tt.bStart), tod(t, tt.bEnd), tod(t, tt.aStart), tod(t, tt.aEnd)))
		})
	}
}

func TestFrom_StripsDateAndZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	src := time.Date(2025, time.March, 3, 9, 30, 15, 0, loc)

	got := From(src)
	assert.Equal(t, "09:30:15", got.Format("15:04:05"))
}

func TestScanValue(t *testing.T) {
	var v Tod
	require.NoError(t, v.Scan("09:00:00"))
	assert.Equal(t, "09:00:00", v.Format("15:04:05"))

	require.NoError(t, v.Scan([]byte("13:45")))
	assert.Equal(t, "13:45:00", v.Format("15:04:05"))

	require.NoError(t, v.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15:00", v.Format("15:04:05"))

	assert.Error(t, v.Scan(42))

	out, err := tod(t, "09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", out)
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(tod(t, "09:00"))
	require.NoError(t, err)
	assert.Equal(t, `"09:00:00"`, string(b))

	var v Tod
	require.NoError(t, json.Unmarshal([]byte(`"10:30"`), &v))
	assert.Equal(t, "10:30:00", v.Format("15:04:05"))
}
