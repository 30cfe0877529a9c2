package constants

// Hari perkuliahan (Minggu bukan hari mengajar).
var TeachingDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// IsTeachingDay cek apakah nama hari termasuk hari perkuliahan.
func IsTeachingDay(day string) bool {
	for _, d := range TeachingDays {
		if d == day {
			return true
		}
	}
	return false
}
