// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveRoute "kampusku_backend/internals/features/leave/route"
	notificationRoute "kampusku_backend/internals/features/notifications/route"
	scheduleRoute "kampusku_backend/internals/features/schedule/route"
	"kampusku_backend/internals/middlewares/auth"
	"kampusku_backend/internals/realtime"
)

// SetupRoutes: semua REST endpoint di bawah /api + JWT, websocket di luar
// group karena auth-nya jalan sebelum upgrade (lihat realtime.RegisterWebsocket).
func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub) {
	api := app.Group("/api", auth.AuthMiddleware(db))

	scheduleRoute.ScheduleRoutes(api, db, hub)
	leaveRoute.FacultyLeaveRoutes(api, db, hub)
	notificationRoute.NotificationRoutes(api, db)

	realtime.RegisterWebsocket(app, db, hub)
}
