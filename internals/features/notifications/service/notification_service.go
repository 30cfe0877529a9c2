// file: internals/features/notifications/service/notification_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/notifications/model"
	"kampusku_backend/internals/realtime"
)

type CreateNotificationInput struct {
	RecipientID uuid.UUID
	SenderID    *uuid.UUID
	Type        string
	Title       string
	Message     string
	RelatedID   *uuid.UUID
	RelatedType *string
	Data        map[string]interface{}
}

// NotificationService: persist + fan-out ke room personal penerima.
// Emit realtime best-effort; gagal kirim tidak menggagalkan caller.
type NotificationService struct {
	DB        *gorm.DB
	Broadcast realtime.Broadcaster
}

func NewNotificationService(db *gorm.DB, broadcast realtime.Broadcaster) *NotificationService {
	return &NotificationService{DB: db, Broadcast: broadcast}
}

func (s *NotificationService) Create(in CreateNotificationInput) (*model.NotificationModel, error) {
	m := model.NotificationModel{
		NotificationRecipientID: in.RecipientID,
		NotificationSenderID:    in.SenderID,
		NotificationType:        in.Type,
		NotificationTitle:       in.Title,
		NotificationMessage:     in.Message,
		NotificationRelatedID:   in.RelatedID,
		NotificationRelatedType: in.RelatedType,
	}
	if in.Data != nil {
		m.NotificationData = datatypes.JSONMap(in.Data)
	}

	if err := s.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] gagal simpan notifikasi untuk %s: %v", in.RecipientID, err)
		return nil, err
	}

	relatedID := ""
	if in.RelatedID != nil {
		relatedID = in.RelatedID.String()
	}
	s.Broadcast.EmitToUser(in.RecipientID.String(), realtime.EventNotificationReceived, realtime.NotificationPayload{
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		RelatedID: relatedID,
	})

	return &m, nil
}
