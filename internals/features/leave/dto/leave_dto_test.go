package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("2025-03-03", "2025-03-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), end)

	// satu hari valid
	_, _, err = ParseRange("2025-03-03", "2025-03-03")
	assert.NoError(t, err)

	// end sebelum start
	_, _, err = ParseRange("2025-03-07", "2025-03-03")
	assert.Error(t, err)

	// format salah
	_, _, err = ParseRange("03-03-2025", "2025-03-07")
	assert.Error(t, err)
	_, _, err = ParseRange("2025-03-03", "besok")
	assert.Error(t, err)
}

func TestSubstitutionInputParseDate(t *testing.T) {
	in := SubstitutionInput{Date: "2025-03-05"}
	d, err := in.ParseDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), d)

	in.Date = "2025/03/05"
	_, err = in.ParseDate()
	assert.Error(t, err)
}
