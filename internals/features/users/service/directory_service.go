// file: internals/features/users/service/directory_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/users/model"
	"kampusku_backend/internals/helpers/dbtime"
)

// DirectoryService: lookup read-only ke tabel users.
type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

// GetUser ambil satu user by id.
func (s *DirectoryService) GetUser(id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.DB.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CountActiveFaculty: berapa dari ids yang benar-benar faculty aktif.
// Dipakai validasi substitute sebelum mutasi apa pun.
func (s *DirectoryService) CountActiveFaculty(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := s.DB.Model(&model.UserModel{}).
		Where("user_id IN ?", ids).
		Where("user_role = ? AND user_is_active = TRUE", constants.RoleFaculty).
		Distinct("user_id").
		Count(&n).Error
	return n, err
}

// ListActiveFacultyExcept: semua faculty aktif selain exclude.
func (s *DirectoryService) ListActiveFacultyExcept(exclude uuid.UUID) ([]model.UserModel, error) {
	var out []model.UserModel
	err := s.DB.
		Select("user_id, user_name, user_email, user_department, user_designation").
		Where("user_role = ? AND user_is_active = TRUE AND user_id <> ?", constants.RoleFaculty, exclude).
		Order("user_name ASC").
		Find(&out).Error
	return out, err
}

// ListAvailableFaculty: faculty aktif selain exclude yang TIDAK punya slot
// bentrok di (day, [start,end)). Aturan overlap setengah-terbuka:
// existingStart < queryEnd AND existingEnd > queryStart — slot yang selesai
// tepat di start query bukan bentrok, begitu juga sebaliknya.
func (s *DirectoryService) ListAvailableFaculty(exclude uuid.UUID, day string, start, end dbtime.Tod) ([]model.UserModel, error) {
	busy := s.DB.Table("schedules").
		Select("schedule_faculty_id").
		Where("schedule_day = ? AND schedule_is_cancelled = FALSE", day).
		Where("schedule_start_time < ? AND schedule_end_time > ?", end, start)

	var out []model.UserModel
	err := s.DB.
		Select("user_id, user_name, user_email, user_department, user_designation").
		Where("user_role = ? AND user_is_active = TRUE AND user_id <> ?", constants.RoleFaculty, exclude).
		Where("user_id NOT IN (?)", busy).
		Order("user_name ASC").
		Find(&out).Error
	return out, err
}

// MapUsersByID: batch resolve nama/email untuk populate response.
func (s *DirectoryService) MapUsersByID(ids []uuid.UUID) (map[uuid.UUID]model.UserModel, error) {
	out := map[uuid.UUID]model.UserModel{}
	if len(ids) == 0 {
		return out, nil
	}
	var users []model.UserModel
	if err := s.DB.
		Select("user_id, user_name, user_email, user_role, user_department").
		Where("user_id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.UserID] = u
	}
	return out, nil
}
