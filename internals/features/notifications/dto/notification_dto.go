// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/notifications/model"
	userModel "kampusku_backend/internals/features/users/model"
)

type SenderBrief struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
}

type NotificationResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`

	Sender *SenderBrief `json:"sender,omitempty"`

	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`

	RelatedID   *uuid.UUID `json:"related_id,omitempty"`
	RelatedType *string    `json:"related_type,omitempty"`

	Data map[string]interface{} `json:"data,omitempty"`

	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromModel(m model.NotificationModel, sender *userModel.UserModel) NotificationResponse {
	resp := NotificationResponse{
		NotificationID: m.NotificationID,
		Type:           m.NotificationType,
		Title:          m.NotificationTitle,
		Message:        m.NotificationMessage,
		RelatedID:      m.NotificationRelatedID,
		RelatedType:    m.NotificationRelatedType,
		Data:           m.NotificationData,
		IsRead:         m.NotificationIsRead,
		ReadAt:         m.NotificationReadAt,
		CreatedAt:      m.NotificationCreatedAt,
	}
	if sender != nil {
		resp.Sender = &SenderBrief{
			UserID:    sender.UserID,
			UserName:  sender.UserName,
			UserEmail: sender.UserEmail,
			UserRole:  sender.UserRole,
		}
	}
	return resp
}
