// file: internals/features/schedule/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/schedule/dto"
	"kampusku_backend/internals/features/schedule/model"
	userModel "kampusku_backend/internals/features/users/model"
	userService "kampusku_backend/internals/features/users/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/realtime"
)

type ScheduleController struct {
	DB        *gorm.DB
	Broadcast realtime.Broadcaster
	Directory *userService.DirectoryService
	validate  *validator.Validate
}

func NewScheduleController(db *gorm.DB, broadcast realtime.Broadcaster) *ScheduleController {
	return &ScheduleController{
		DB:        db,
		Broadcast: broadcast,
		Directory: userService.NewDirectoryService(db),
		validate:  validator.New(),
	}
}

/* ===================== CREATE ===================== */
// POST /api/schedule
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ScheduleStartTime.Before(req.ScheduleEndTime) {
		return helper.Error(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}

	m := req.ToModel(facultyID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat jadwal")
	}

	resp := ctrl.populate(m)
	ctrl.Broadcast.EmitToRoom(
		realtime.RoomKey(m.ScheduleDepartment, m.ScheduleYear),
		realtime.EventScheduleUpdate,
		realtime.SchedulePayload{Type: realtime.ScheduleEventCreated, Schedule: resp},
	)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal berhasil dibuat", resp)
}

/* ===================== LIST ===================== */
// GET /api/schedule
// Faculty lihat jadwal miliknya (filter day/department/year opsional),
// student lihat jadwal kohortnya sendiri.
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.ScheduleModel{})
	if role == constants.RoleFaculty {
		q = q.Where("schedule_faculty_id = ?", userID)
		if dept := c.Query("department"); dept != "" {
			q = q.Where("schedule_department = ?", dept)
		}
		if year := c.QueryInt("year"); year > 0 {
			q = q.Where("schedule_year = ?", year)
		}
	} else {
		dept, err := helper.GetDepartmentFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("schedule_department = ? AND schedule_year = ?", dept, helper.GetYearFromToken(c))
	}
	if day := c.Query("day"); day != "" {
		q = q.Where("schedule_day = ?", day)
	}

	var schedules []model.ScheduleModel
	if err := q.Order("schedule_day ASC, schedule_start_time ASC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil jadwal")
	}

	return helper.Success(c, "OK", ctrl.populateAll(schedules))
}

/* ===================== TIMETABLE (STUDENT) ===================== */
// GET /api/schedule/timetable — jadwal kohort dikelompokkan per hari
func (ctrl *ScheduleController) StudentTimetable(c *fiber.Ctx) error {
	dept, err := helper.GetDepartmentFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	year := helper.GetYearFromToken(c)

	var schedules []model.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_department = ? AND schedule_year = ? AND schedule_is_cancelled = FALSE", dept, year).
		Order("schedule_day ASC, schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil timetable")
	}

	timetable := map[string][]dto.ScheduleResponse{}
	for _, d := range constants.TeachingDays {
		timetable[d] = []dto.ScheduleResponse{}
	}
	for _, resp := range ctrl.populateAll(schedules) {
		timetable[resp.ScheduleDay] = append(timetable[resp.ScheduleDay], resp)
	}

	return helper.Success(c, "OK", timetable)
}

/* ===================== BY DAY (FACULTY) ===================== */
// GET /api/schedule/day/:day — slot milik sendiri di satu hari
func (ctrl *ScheduleController) ListByDay(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day := c.Params("day")
	if !constants.IsTeachingDay(day) {
		return helper.Error(c, fiber.StatusBadRequest, "Hari tidak valid")
	}

	var schedules []model.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_faculty_id = ? AND schedule_day = ? AND schedule_is_cancelled = FALSE", facultyID, day).
		Order("schedule_start_time ASC").
		Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil jadwal")
	}

	return helper.Success(c, "OK", ctrl.populateAll(schedules))
}

/* ===================== DETAIL ===================== */
// GET /api/schedule/:id
func (ctrl *ScheduleController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.findSchedule(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", ctrl.populate(*m))
}

/* ===================== UPDATE ===================== */
// PUT /api/schedule/:id
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedSchedule(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ScheduleSubject != nil {
		updates["schedule_subject"] = *req.ScheduleSubject
	}
	if req.ScheduleDay != nil {
		updates["schedule_day"] = *req.ScheduleDay
	}
	start, end := m.ScheduleStartTime, m.ScheduleEndTime
	if req.ScheduleStartTime != nil {
		start = *req.ScheduleStartTime
		updates["schedule_start_time"] = *req.ScheduleStartTime
	}
	if req.ScheduleEndTime != nil {
		end = *req.ScheduleEndTime
		updates["schedule_end_time"] = *req.ScheduleEndTime
	}
	if !start.Before(end) {
		return helper.Error(c, fiber.StatusBadRequest, "Jam mulai harus sebelum jam selesai")
	}
	if req.ScheduleRoom != nil {
		updates["schedule_room"] = *req.ScheduleRoom
	}
	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan data", ctrl.populate(*m))
	}

	if err := ctrl.DB.Model(m).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update jadwal")
	}

	resp := ctrl.populate(*m)
	ctrl.Broadcast.EmitToRoom(
		realtime.RoomKey(m.ScheduleDepartment, m.ScheduleYear),
		realtime.EventScheduleUpdate,
		realtime.SchedulePayload{Type: realtime.ScheduleEventUpdated, Schedule: resp},
	)

	return helper.Success(c, "Jadwal berhasil diupdate", resp)
}

/* ===================== CANCEL ===================== */
// PUT /api/schedule/:id/cancel
func (ctrl *ScheduleController) Cancel(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedSchedule(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CancelScheduleRequest
	_ = c.BodyParser(&req) // body opsional

	reason := "Cancelled by faculty"
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}

	if err := ctrl.DB.Model(m).Updates(map[string]interface{}{
		"schedule_is_cancelled":  true,
		"schedule_cancel_reason": reason,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan jadwal")
	}

	resp := ctrl.populate(*m)
	ctrl.Broadcast.EmitToRoom(
		realtime.RoomKey(m.ScheduleDepartment, m.ScheduleYear),
		realtime.EventScheduleUpdate,
		realtime.SchedulePayload{Type: realtime.ScheduleEventCancelled, Schedule: resp},
	)

	return helper.Success(c, "Jadwal berhasil dibatalkan", resp)
}

/* ===================== ASSIGN SUBSTITUTE ===================== */
// PUT /api/schedule/:id/substitute — substitusi manual satu slot
func (ctrl *ScheduleController) AssignSubstitute(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedSchedule(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AssignSubstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	n, err := ctrl.Directory.CountActiveFaculty([]uuid.UUID{req.SubstituteFacultyID})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal validasi substitute")
	}
	if n == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Substitute faculty tidak ditemukan")
	}

	if err := ctrl.DB.Model(m).Updates(map[string]interface{}{
		"schedule_is_rescheduled":        true,
		"schedule_original_faculty_id":   m.ScheduleFacultyID,
		"schedule_substitute_faculty_id": req.SubstituteFacultyID,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal assign substitute")
	}

	resp := ctrl.populate(*m)
	ctrl.Broadcast.EmitToRoom(
		realtime.RoomKey(m.ScheduleDepartment, m.ScheduleYear),
		realtime.EventScheduleUpdate,
		realtime.SchedulePayload{Type: realtime.ScheduleEventSubstituteAssigned, Schedule: resp},
	)

	return helper.Success(c, "Substitute berhasil di-assign", resp)
}

/* ===================== DELETE ===================== */
// DELETE /api/schedule/:id
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.findOwnedSchedule(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	dept, year, id := m.ScheduleDepartment, m.ScheduleYear, m.ScheduleID

	if err := ctrl.DB.Delete(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}

	ctrl.Broadcast.EmitToRoom(
		realtime.RoomKey(dept, year),
		realtime.EventScheduleUpdate,
		realtime.SchedulePayload{Type: realtime.ScheduleEventDeleted, ScheduleID: id.String()},
	)

	return helper.Success(c, "Jadwal berhasil dihapus", fiber.Map{"deleted_id": id})
}

/* ===================== INTERNAL ===================== */

func (ctrl *ScheduleController) findSchedule(c *fiber.Ctx) (*model.ScheduleModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	var m model.ScheduleModel
	if err := ctrl.DB.Where("schedule_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil jadwal")
	}
	return &m, nil
}

// findOwnedSchedule: 404 kalau tidak ada, 403 kalau bukan pemilik.
func (ctrl *ScheduleController) findOwnedSchedule(c *fiber.Ctx) (*model.ScheduleModel, error) {
	m, err := ctrl.findSchedule(c)
	if err != nil {
		return nil, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	if m.ScheduleFacultyID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Bukan pemilik jadwal ini")
	}
	return m, nil
}

func (ctrl *ScheduleController) populate(m model.ScheduleModel) dto.ScheduleResponse {
	all := ctrl.populateAll([]model.ScheduleModel{m})
	return all[0]
}

// populateAll: resolve nama faculty & substitute secara batch.
func (ctrl *ScheduleController) populateAll(schedules []model.ScheduleModel) []dto.ScheduleResponse {
	ids := make([]uuid.UUID, 0, len(schedules)*2)
	for _, m := range schedules {
		ids = append(ids, m.ScheduleFacultyID)
		if m.ScheduleSubstituteFacultyID != nil {
			ids = append(ids, *m.ScheduleSubstituteFacultyID)
		}
	}
	users, err := ctrl.Directory.MapUsersByID(ids)
	if err != nil {
		users = nil // populate nama best-effort, data inti tetap terkirim
	}

	out := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, m := range schedules {
		var faculty, substitute *userModel.UserModel
		if u, ok := users[m.ScheduleFacultyID]; ok {
			faculty = &u
		}
		if m.ScheduleSubstituteFacultyID != nil {
			if u, ok := users[*m.ScheduleSubstituteFacultyID]; ok {
				substitute = &u
			}
		}
		out = append(out, dto.FromModel(m, faculty, substitute))
	}
	return out
}
