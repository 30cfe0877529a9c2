// file: internals/features/leave/service/substitution_policy.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/leave/dto"
)

// ValidateSubstitutions menegakkan kontrak pengajuan cuti:
//   - setiap occurrence bentrok (schedule, tanggal) tercakup tepat satu entri;
//   - tidak ada entri untuk occurrence yang tidak bentrok;
//   - substitute bukan applicant sendiri;
//   - slot yang berulang lintas minggu HARUS memakai substitute yang sama
//     di semua entrinya — overlay substitute hidup di level slot, bukan
//     per occurrence, jadi substitute berbeda akan saling menimpa.
func ValidateSubstitutions(conflicts []ConflictingOccurrence, subs []dto.SubstitutionInput, applicantID uuid.UUID) error {
	type occKey struct {
		schedule uuid.UUID
		date     string
	}

	need := map[occKey]struct{}{}
	for _, cf := range conflicts {
		need[occKey{cf.ScheduleID, cf.Date}] = struct{}{}
	}

	covered := map[occKey]struct{}{}
	perSlot := map[uuid.UUID]uuid.UUID{}

	for _, sub := range subs {
		if sub.SubstituteFacultyID == applicantID {
			return fmt.Errorf("substitute tidak boleh diri sendiri")
		}

		k := occKey{sub.ScheduleID, sub.Date}
		if _, ok := need[k]; !ok {
			return fmt.Errorf("substitusi untuk slot %s tanggal %s tidak termasuk bentrokan", sub.ScheduleID, sub.Date)
		}
		if _, dup := covered[k]; dup {
			return fmt.Errorf("substitusi ganda untuk slot %s tanggal %s", sub.ScheduleID, sub.Date)
		}
		covered[k] = struct{}{}

		if prev, ok := perSlot[sub.ScheduleID]; ok && prev != sub.SubstituteFacultyID {
			return fmt.Errorf("slot %s berulang lintas minggu: semua occurrence harus memakai substitute yang sama", sub.ScheduleID)
		}
		perSlot[sub.ScheduleID] = sub.SubstituteFacultyID
	}

	if len(covered) != len(need) {
		return fmt.Errorf("substitusi belum lengkap: %d dari %d occurrence tercakup", len(covered), len(need))
	}
	return nil
}

// UniqueSubstituteIDs: daftar substitute distinct (untuk validasi directory).
func UniqueSubstituteIDs(subs []dto.SubstitutionInput) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{}
	out := []uuid.UUID{}
	for _, s := range subs {
		if _, ok := seen[s.SubstituteFacultyID]; !ok {
			seen[s.SubstituteFacultyID] = struct{}{}
			out = append(out, s.SubstituteFacultyID)
		}
	}
	return out
}
