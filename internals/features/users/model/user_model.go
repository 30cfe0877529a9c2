package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel = directory kampus (student & faculty).
// Registrasi/login dikelola flow auth di luar core ini; di sini users
// hanya dibaca (lookup substitute, resolve nama, validasi aktif).
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName  string `gorm:"not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"uniqueIndex;not null;column:user_email" json:"user_email"`
	UserRole  string `gorm:"type:varchar(10);not null;column:user_role" json:"user_role"` // student | faculty

	UserDepartment string `gorm:"not null;column:user_department" json:"user_department"`

	// Khusus student
	UserRollNumber *string `gorm:"column:user_roll_number" json:"user_roll_number,omitempty"`
	UserYear       *int    `gorm:"column:user_year" json:"user_year,omitempty"` // 1-4

	// Khusus faculty
	UserDesignation *string `gorm:"column:user_designation" json:"user_designation,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
