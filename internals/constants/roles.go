package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
)

// Template pesan error role
const (
	ErrOnlyFacultyCanAccess  = "❌ Hanya faculty yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
)

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var AllRoles = []string{RoleStudent, RoleFaculty}
