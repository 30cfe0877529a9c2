package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtrl "kampusku_backend/internals/features/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtrl.NewNotificationController(db)

	g := r.Group("/notification")
	g.Get("/", ctrl.List)
	g.Get("/unread/count", ctrl.UnreadCount)
	g.Put("/read-all", ctrl.MarkAllRead)
	g.Put("/:id/read", ctrl.MarkRead)
	g.Delete("/:id", ctrl.Delete)
}
