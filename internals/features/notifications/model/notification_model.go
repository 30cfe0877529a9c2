package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tipe notifikasi.
const (
	NotificationTypeScheduleUpdate    = "schedule_update"
	NotificationTypeLeaveRequest      = "leave_request"
	NotificationTypeApplicationStatus = "application_status"
	NotificationTypeSubstituteRequest = "substitute_request"
	NotificationTypeGeneral           = "general"
)

// Jenis entity yang bisa dirujuk notification_related_id.
const (
	RelatedTypeSchedule     = "schedule"
	RelatedTypeFacultyLeave = "faculty_leave"
	RelatedTypeApplication  = "application"
)

// NotificationModel: record fire-and-forget; hanya penerima yang boleh
// menandai read / menghapus, selain itu tidak pernah diupdate.
type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`

	NotificationRecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient;column:notification_recipient_id" json:"notification_recipient_id"`
	NotificationSenderID    *uuid.UUID `gorm:"type:uuid;column:notification_sender_id" json:"notification_sender_id,omitempty"`

	NotificationType    string `gorm:"type:varchar(20);not null;column:notification_type" json:"notification_type"`
	NotificationTitle   string `gorm:"not null;column:notification_title" json:"notification_title"`
	NotificationMessage string `gorm:"not null;column:notification_message" json:"notification_message"`

	NotificationRelatedID   *uuid.UUID `gorm:"type:uuid;column:notification_related_id" json:"notification_related_id,omitempty"`
	NotificationRelatedType *string    `gorm:"type:varchar(20);column:notification_related_type" json:"notification_related_type,omitempty"`

	// Payload tambahan bebas bentuk (mis. tanggal occurrence, subject)
	NotificationData datatypes.JSONMap `gorm:"type:jsonb;column:notification_data" json:"notification_data,omitempty"`

	NotificationIsRead bool       `gorm:"not null;default:false;index:idx_notifications_recipient;column:notification_is_read" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
