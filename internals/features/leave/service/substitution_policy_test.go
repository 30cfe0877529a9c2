package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/leave/dto"
)

func occ(scheduleID uuid.UUID, day, date string) ConflictingOccurrence {
	return ConflictingOccurrence{ScheduleID: scheduleID, Day: day, Date: date}
}

func sub(scheduleID, substituteID uuid.UUID, day, date string) dto.SubstitutionInput {
	return dto.SubstitutionInput{
		ScheduleID:          scheduleID,
		SubstituteFacultyID: substituteID,
		Day:                 day,
		Date:                date,
	}
}

func TestValidateSubstitutions(t *testing.T) {
	applicant := uuid.New()
	subA := uuid.New()
	subB := uuid.New()
	slot1 := uuid.New()
	slot2 := uuid.New()

	t.Run("lengkap dan valid", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
			occ(slot2, "Wednesday", "2025-03-05"),
		}
		subs := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
			sub(slot2, subB, "Wednesday", "2025-03-05"),
		}
		assert.NoError(t, ValidateSubstitutions(conflicts, subs, applicant))
	})

	t.Run("tanpa bentrok tanpa substitusi", func(t *testing.T) {
		assert.NoError(t, ValidateSubstitutions(nil, nil, applicant))
	})

	t.Run("coverage kurang", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
			occ(slot2, "Wednesday", "2025-03-05"),
		}
		subs := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
		}
		err := ValidateSubstitutions(conflicts, subs, applicant)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "belum lengkap")
	})

	t.Run("entri di luar bentrokan ditolak", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
		}
		subs := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
			sub(slot2, subA, "Wednesday", "2025-03-05"),
		}
		assert.Error(t, ValidateSubstitutions(conflicts, subs, applicant))
	})

	t.Run("substitute diri sendiri ditolak", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
		}
		subs := []dto.SubstitutionInput{
			sub(slot1, applicant, "Monday", "2025-03-03"),
		}
		err := ValidateSubstitutions(conflicts, subs, applicant)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "diri sendiri")
	})

	t.Run("entri ganda untuk occurrence yang sama ditolak", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
		}
		subs := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
			sub(slot1, subB, "Monday", "2025-03-03"),
		}
		assert.Error(t, ValidateSubstitutions(conflicts, subs, applicant))
	})

	t.Run("slot berulang lintas minggu harus substitute sama", func(t *testing.T) {
		conflicts := []ConflictingOccurrence{
			occ(slot1, "Monday", "2025-03-03"),
			occ(slot1, "Monday", "2025-03-10"),
		}

		// beda substitute per minggu → overlay slot akan saling timpa → tolak
		mixed := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
			sub(slot1, subB, "Monday", "2025-03-10"),
		}
		err := ValidateSubstitutions(conflicts, mixed, applicant)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "substitute yang sama")

		// substitute sama di semua occurrence → valid
		same := []dto.SubstitutionInput{
			sub(slot1, subA, "Monday", "2025-03-03"),
			sub(slot1, subA, "Monday", "2025-03-10"),
		}
		assert.NoError(t, ValidateSubstitutions(conflicts, same, applicant))
	})
}

func TestUniqueSubstituteIDs(t *testing.T) {
	subA := uuid.New()
	subB := uuid.New()
	slot1 := uuid.New()
	slot2 := uuid.New()

	ids := UniqueSubstituteIDs([]dto.SubstitutionInput{
		sub(slot1, subA, "Monday", "2025-03-03"),
		sub(slot1, subA, "Monday", "2025-03-10"),
		sub(slot2, subB, "Wednesday", "2025-03-05"),
	})
	assert.Equal(t, []uuid.UUID{subA, subB}, ids)

	assert.Empty(t, UniqueSubstituteIDs(nil))
}
