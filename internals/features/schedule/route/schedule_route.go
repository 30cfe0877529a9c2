package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	scheduleCtrl "kampusku_backend/internals/features/schedule/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
	"kampusku_backend/internals/realtime"
)

func ScheduleRoutes(r fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := scheduleCtrl.NewScheduleController(db, hub)

	onlyFaculty := authMw.OnlyRoles(constants.RoleErrorFaculty("jadwal"), constants.RoleFaculty)
	onlyStudent := authMw.OnlyRoles(constants.RoleErrorStudent("timetable"), constants.RoleStudent)

	g := r.Group("/schedule")

	// Faculty
	g.Post("/", onlyFaculty, ctrl.Create)
	g.Put("/:id/cancel", onlyFaculty, ctrl.Cancel)
	g.Put("/:id/substitute", onlyFaculty, ctrl.AssignSubstitute)
	g.Get("/day/:day", onlyFaculty, ctrl.ListByDay)
	g.Put("/:id", onlyFaculty, ctrl.Update)
	g.Delete("/:id", onlyFaculty, ctrl.Delete)

	// Student
	g.Get("/timetable", onlyStudent, ctrl.StudentTimetable)

	// Shared
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
}
