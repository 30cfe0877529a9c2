// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/notifications/dto"
	"kampusku_backend/internals/features/notifications/model"
	userModel "kampusku_backend/internals/features/users/model"
	userService "kampusku_backend/internals/features/users/service"
	helper "kampusku_backend/internals/helpers"
)

type NotificationController struct {
	DB        *gorm.DB
	Directory *userService.DirectoryService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Directory: userService.NewDirectoryService(db)}
}

/* ===================== LIST ===================== */
// GET /api/notification?unread_only=true — 50 terbaru milik penerima
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Where("notification_recipient_id = ?", userID)
	if c.Query("unread_only") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var items []model.NotificationModel
	if err := q.Order("notification_created_at DESC").Limit(50).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil notifikasi")
	}

	// Populate pengirim (batch)
	senderIDs := make([]uuid.UUID, 0, len(items))
	for _, n := range items {
		if n.NotificationSenderID != nil {
			senderIDs = append(senderIDs, *n.NotificationSenderID)
		}
	}
	senders, err := ctrl.Directory.MapUsersByID(senderIDs)
	if err != nil {
		senders = nil
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		var sender *userModel.UserModel
		if n.NotificationSenderID != nil {
			if u, ok := senders[*n.NotificationSenderID]; ok {
				sender = &u
			}
		}
		out = append(out, dto.FromModel(n, sender))
	}

	return helper.Success(c, "OK", fiber.Map{"count": len(out), "notifications": out})
}

/* ===================== UNREAD COUNT ===================== */
// GET /api/notification/unread/count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_recipient_id = ? AND notification_is_read = FALSE", userID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hitung notifikasi")
	}

	return helper.Success(c, "OK", fiber.Map{"count": count})
}

/* ===================== MARK READ ===================== */
// PUT /api/notification/:id/read — hanya penerima
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedNotification(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	if err := ctrl.DB.Model(m).Updates(map[string]interface{}{
		"notification_is_read": true,
		"notification_read_at": now,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}

	return helper.Success(c, "Notifikasi ditandai sudah dibaca", nil)
}

/* ===================== MARK ALL READ ===================== */
// PUT /api/notification/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	now := time.Now()
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_recipient_id = ? AND notification_is_read = FALSE", userID).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": now,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update notifikasi")
	}

	return helper.Success(c, "Semua notifikasi ditandai sudah dibaca", nil)
}

/* ===================== DELETE ===================== */
// DELETE /api/notification/:id — hanya penerima
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedNotification(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hapus notifikasi")
	}

	return helper.Success(c, "Notifikasi dihapus", fiber.Map{"deleted_id": m.NotificationID})
}

/* ===================== INTERNAL ===================== */

func (ctrl *NotificationController) findOwnedNotification(c *fiber.Ctx) (*model.NotificationModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	var m model.NotificationModel
	if err := ctrl.DB.Where("notification_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil notifikasi")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	if m.NotificationRecipientID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan penerima notifikasi ini")
	}
	return &m, nil
}
