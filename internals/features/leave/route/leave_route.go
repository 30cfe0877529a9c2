// file: internals/features/leave/route/leave_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/leave/controller"
	"kampusku_backend/internals/middlewares"
	"kampusku_backend/internals/middlewares/auth"
	"kampusku_backend/internals/realtime"
)

// FacultyLeaveRoutes: seluruh endpoint cuti hanya untuk faculty.
func FacultyLeaveRoutes(r fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := controller.NewFacultyLeaveController(db, hub)

	onlyFaculty := auth.OnlyRoles(constants.RoleErrorFaculty("mengelola cuti"), constants.RoleFaculty)

	leave := r.Group("/faculty-leave", onlyFaculty)

	leave.Post("/check", ctrl.CheckConflicts)
	leave.Post("/", middlewares.LeaveSubmitRateLimiter(), ctrl.ApplyLeave)
	leave.Get("/", ctrl.GetLeaves)
	leave.Get("/substitutes", ctrl.GetAvailableSubstitutes)
	leave.Delete("/:id", ctrl.CancelLeave)
}
