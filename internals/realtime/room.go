package realtime

import "fmt"

// RoomKey: satu-satunya definisi penamaan room kohort student.
// Dipakai sisi subscribe (ws connect) DAN sisi publish (controller)
// supaya skema alamat tidak pernah drift.
func RoomKey(department string, year int) string {
	return fmt.Sprintf("%s-%d", department, year)
}

// FacultyRoomKey: room per-department untuk faculty.
func FacultyRoomKey(department string) string {
	return "faculty-" + department
}
