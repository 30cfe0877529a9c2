// file: internals/features/leave/controller/leave_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/leave/dto"
	"kampusku_backend/internals/features/leave/model"
	leaveService "kampusku_backend/internals/features/leave/service"
	notifModel "kampusku_backend/internals/features/notifications/model"
	notifService "kampusku_backend/internals/features/notifications/service"
	scheduleDto "kampusku_backend/internals/features/schedule/dto"
	scheduleModel "kampusku_backend/internals/features/schedule/model"
	userModel "kampusku_backend/internals/features/users/model"
	userService "kampusku_backend/internals/features/users/service"
	helper "kampusku_backend/internals/helpers"
	"kampusku_backend/internals/helpers/dbtime"
	"kampusku_backend/internals/realtime"
)

// FacultyLeaveController = orchestrator cuti + substitusi.
// Alur: cek bentrok → (ada bentrok) wajib satu substitute per occurrence →
// mutasi slot + simpan leave dalam SATU transaksi → notifikasi & fan-out.
type FacultyLeaveController struct {
	DB            *gorm.DB
	Broadcast     realtime.Broadcaster
	Conflicts     *leaveService.ConflictService
	Directory     *userService.DirectoryService
	Notifications *notifService.NotificationService
	validate      *validator.Validate
}

func NewFacultyLeaveController(db *gorm.DB, broadcast realtime.Broadcaster) *FacultyLeaveController {
	return &FacultyLeaveController{
		DB:            db,
		Broadcast:     broadcast,
		Conflicts:     leaveService.NewConflictService(db, configs.RestDay),
		Directory:     userService.NewDirectoryService(db),
		Notifications: notifService.NewNotificationService(db, broadcast),
		validate:      validator.New(),
	}
}

/* ===================== CHECK CONFLICTS ===================== */
// POST /api/faculty-leave/check — read murni, tidak ada mutasi
func (ctrl *FacultyLeaveController) CheckConflicts(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CheckConflictsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	start, end, err := dto.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	conflicts, err := ctrl.Conflicts.DetectConflicts(facultyID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek bentrokan jadwal")
	}

	return helper.Success(c, "OK", fiber.Map{
		"has_conflicts": len(conflicts) > 0,
		"conflicts":     conflicts,
	})
}

/* ===================== APPLY ===================== */
// POST /api/faculty-leave
// Bentrok dihitung ulang server-side — daftar dari client tidak dipercaya.
func (ctrl *FacultyLeaveController) ApplyLeave(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	start, end, err := dto.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	conflicts, err := ctrl.Conflicts.DetectConflicts(facultyID, start, end)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek bentrokan jadwal")
	}

	// Ada kuliah terjadwal tapi substitusi kosong → bukan error biasa:
	// kirim daftar bentrok segar supaya client bisa resubmit tanpa
	// round-trip kedua.
	if len(conflicts) > 0 && len(req.Substitutions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":                  fiber.StatusBadRequest,
			"status":                "error",
			"message":               "Ada kuliah terjadwal pada rentang cuti. Assign substitute untuk setiap slot.",
			"requires_substitution": true,
			"conflicts":             conflicts,
		})
	}

	if len(req.Substitutions) > 0 {
		if err := leaveService.ValidateSubstitutions(conflicts, req.Substitutions, facultyID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		// Pastikan semua substitute adalah faculty aktif SEBELUM mutasi apa pun
		subIDs := leaveService.UniqueSubstituteIDs(req.Substitutions)
		n, err := ctrl.Directory.CountActiveFaculty(subIDs)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal validasi substitute")
		}
		if n != int64(len(subIDs)) {
			return helper.Error(c, fiber.StatusBadRequest, "Substitute bukan faculty aktif")
		}
	}

	leaveDays := leaveService.LeaveDaysBetween(start, end, ctrl.Conflicts.RestDay)
	leave := model.FacultyLeaveModel{
		FacultyLeaveFacultyID: facultyID,
		FacultyLeaveStartDate: start,
		FacultyLeaveEndDate:   end,
		FacultyLeaveReason:    req.Reason,
		FacultyLeaveStatus:    model.LeaveStatusPending,
		FacultyLeaveDays:      leaveService.DistinctDayNames(leaveDays),
	}
	for _, sub := range req.Substitutions {
		date, err := sub.ParseDate()
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Tanggal substitusi tidak valid")
		}
		leave.Substitutions = append(leave.Substitutions, model.LeaveSubstitutionModel{
			LeaveSubstitutionScheduleID:          sub.ScheduleID,
			LeaveSubstitutionSubstituteFacultyID: sub.SubstituteFacultyID,
			LeaveSubstitutionDay:                 sub.Day,
			LeaveSubstitutionDate:                date,
		})
	}

	// ===== TRANSACTION: mutasi slot + simpan leave, semua atau tidak sama sekali =====
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, sub := range leave.Substitutions {
			res := tx.Model(&scheduleModel.ScheduleModel{}).
				Where("schedule_id = ?", sub.LeaveSubstitutionScheduleID).
				Updates(map[string]interface{}{
					"schedule_is_rescheduled":        true,
					"schedule_substitute_faculty_id": sub.LeaveSubstitutionSubstituteFacultyID,
					"schedule_original_faculty_id":   facultyID,
					"schedule_rescheduled_date":      sub.LeaveSubstitutionDate,
				})
			if res.Error != nil {
				return res.Error
			}
			// Conflict check dan submit membaca store yang sama; slot hilang
			// di tengah berarti data korup, bukan input salah.
			if res.RowsAffected == 0 {
				return fmt.Errorf("slot %s tidak ditemukan saat apply substitusi", sub.LeaveSubstitutionScheduleID)
			}
		}
		return tx.Create(&leave).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengajuan cuti: "+err.Error())
	}

	// ===== FAN-OUT (setelah commit; best-effort, tidak menggagalkan request) =====
	ctrl.notifyAfterSubmit(c, facultyID, leave)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan cuti berhasil dikirim",
		ctrl.populateLeave(leave))
}

// notifyAfterSubmit: notifikasi ke tiap substitute + broadcast slot
// ter-update ke room kohort student terdampak.
func (ctrl *FacultyLeaveController) notifyAfterSubmit(c *fiber.Ctx, facultyID uuid.UUID, leave model.FacultyLeaveModel) {
	applicantName, _ := c.Locals("user_name").(string)
	if applicantName == "" {
		if u, err := ctrl.Directory.GetUser(facultyID); err == nil {
			applicantName = u.UserName
		}
	}

	for _, sub := range leave.Substitutions {
		var slot scheduleModel.ScheduleModel
		if err := ctrl.DB.Where("schedule_id = ?", sub.LeaveSubstitutionScheduleID).First(&slot).Error; err != nil {
			continue
		}

		scheduleID := sub.LeaveSubstitutionScheduleID
		relatedType := notifModel.RelatedTypeSchedule
		dateStr := sub.LeaveSubstitutionDate.Format(dto.DateLayout)
		_, _ = ctrl.Notifications.Create(notifService.CreateNotificationInput{
			RecipientID: sub.LeaveSubstitutionSubstituteFacultyID,
			SenderID:    &facultyID,
			Type:        notifModel.NotificationTypeSubstituteRequest,
			Title:       "Substitute Request",
			Message:     fmt.Sprintf("%s has assigned you as substitute for %s on %s", applicantName, slot.ScheduleSubject, dateStr),
			RelatedID:   &scheduleID,
			RelatedType: &relatedType,
			Data: map[string]interface{}{
				"subject": slot.ScheduleSubject,
				"day":     sub.LeaveSubstitutionDay,
				"date":    dateStr,
			},
		})

		ctrl.Broadcast.EmitToRoom(
			realtime.RoomKey(slot.ScheduleDepartment, slot.ScheduleYear),
			realtime.EventScheduleUpdate,
			realtime.SchedulePayload{
				Type:     realtime.ScheduleEventSubstituteAssigned,
				Schedule: ctrl.populateSchedule(slot),
			},
		)
	}
}

/* ===================== LIST ===================== */
// GET /api/faculty-leave — riwayat cuti milik sendiri, terbaru dulu
func (ctrl *FacultyLeaveController) GetLeaves(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var leaves []model.FacultyLeaveModel
	if err := ctrl.DB.
		Preload("Substitutions").
		Where("faculty_leave_faculty_id = ?", facultyID).
		Order("faculty_leave_created_at DESC").
		Find(&leaves).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil riwayat cuti")
	}

	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		out = append(out, ctrl.populateLeave(lv))
	}

	return helper.Success(c, "OK", fiber.Map{"count": len(out), "leaves": out})
}

/* ===================== AVAILABLE SUBSTITUTES ===================== */
// GET /api/faculty-leave/substitutes?day&start_time&end_time
// Tanpa filter: semua faculty aktif selain caller. Dengan filter:
// faculty yang punya slot overlap [start,end) di hari itu dikecualikan.
func (ctrl *FacultyLeaveController) GetAvailableSubstitutes(c *fiber.Ctx) error {
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	day := c.Query("day")
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")

	var faculty []userModel.UserModel
	if day != "" && startStr != "" && endStr != "" {
		if !constants.IsTeachingDay(day) {
			return helper.Error(c, fiber.StatusBadRequest, "Hari tidak valid")
		}
		start, err := dbtime.Parse(startStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "start_time tidak valid")
		}
		end, err := dbtime.Parse(endStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "end_time tidak valid")
		}
		if !start.Before(end) {
			return helper.Error(c, fiber.StatusBadRequest, "start_time harus sebelum end_time")
		}
		faculty, err = ctrl.Directory.ListAvailableFaculty(facultyID, day, start, end)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil daftar faculty")
		}
	} else {
		faculty, err = ctrl.Directory.ListActiveFacultyExcept(facultyID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil daftar faculty")
		}
	}

	return helper.Success(c, "OK", fiber.Map{"count": len(faculty), "faculty": faculty})
}

/* ===================== CANCEL ===================== */
// DELETE /api/faculty-leave/:id
// Revert semua substitusi (last-write-wins, tanpa optimistic lock) lalu
// hard delete record cuti beserta entri substitusinya.
func (ctrl *FacultyLeaveController) CancelLeave(c *fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID cuti tidak valid")
	}
	facultyID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var leave model.FacultyLeaveModel
	if err := ctrl.DB.Preload("Substitutions").
		Where("faculty_leave_id = ?", leaveID).
		First(&leave).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengajuan cuti tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal ambil pengajuan cuti")
	}

	// Hanya pemilik yang boleh cancel — tidak ada mutasi slot kalau ditolak
	if leave.FacultyLeaveFacultyID != facultyID {
		return helper.Error(c, fiber.StatusForbidden, "Bukan pemilik pengajuan cuti ini")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, sub := range leave.Substitutions {
			if err := tx.Model(&scheduleModel.ScheduleModel{}).
				Where("schedule_id = ?", sub.LeaveSubstitutionScheduleID).
				Updates(map[string]interface{}{
					"schedule_is_rescheduled":        false,
					"schedule_substitute_faculty_id": nil,
					"schedule_original_faculty_id":   nil,
					"schedule_rescheduled_date":      nil,
				}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("leave_substitution_leave_id = ?", leave.FacultyLeaveID).
			Delete(&model.LeaveSubstitutionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&leave).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan cuti: "+err.Error())
	}

	return helper.Success(c, "Pengajuan cuti berhasil dibatalkan", fiber.Map{"deleted_id": leave.FacultyLeaveID})
}

/* ===================== INTERNAL ===================== */

// populateLeave: resolve nama substitute + subject/jam slot per entri.
func (ctrl *FacultyLeaveController) populateLeave(leave model.FacultyLeaveModel) dto.LeaveResponse {
	subIDs := make([]uuid.UUID, 0, len(leave.Substitutions))
	scheduleIDs := make([]uuid.UUID, 0, len(leave.Substitutions))
	for _, sub := range leave.Substitutions {
		subIDs = append(subIDs, sub.LeaveSubstitutionSubstituteFacultyID)
		scheduleIDs = append(scheduleIDs, sub.LeaveSubstitutionScheduleID)
	}

	users, err := ctrl.Directory.MapUsersByID(subIDs)
	if err != nil {
		users = nil
	}

	slots := map[uuid.UUID]scheduleModel.ScheduleModel{}
	if len(scheduleIDs) > 0 {
		var rows []scheduleModel.ScheduleModel
		if err := ctrl.DB.Where("schedule_id IN ?", scheduleIDs).Find(&rows).Error; err == nil {
			for _, r := range rows {
				slots[r.ScheduleID] = r
			}
		}
	}

	subs := make([]dto.SubstitutionResponse, 0, len(leave.Substitutions))
	for _, sub := range leave.Substitutions {
		resp := dto.SubstitutionResponse{
			LeaveSubstitutionID: sub.LeaveSubstitutionID,
			ScheduleID:          sub.LeaveSubstitutionScheduleID,
			SubstituteFacultyID: sub.LeaveSubstitutionSubstituteFacultyID,
			Day:                 sub.LeaveSubstitutionDay,
			Date:                sub.LeaveSubstitutionDate.Format(dto.DateLayout),
			Confirmed:           sub.LeaveSubstitutionConfirmed,
		}
		if u, ok := users[sub.LeaveSubstitutionSubstituteFacultyID]; ok {
			resp.SubstituteName = u.UserName
			resp.SubstituteEmail = u.UserEmail
		}
		if slot, ok := slots[sub.LeaveSubstitutionScheduleID]; ok {
			resp.ScheduleSubject = slot.ScheduleSubject
			st, et := slot.ScheduleStartTime, slot.ScheduleEndTime
			resp.StartTime = &st
			resp.EndTime = &et
		}
		subs = append(subs, resp)
	}

	return dto.LeaveFromModel(leave, subs)
}

// populateSchedule: response slot terpopulasi untuk payload broadcast.
func (ctrl *FacultyLeaveController) populateSchedule(m scheduleModel.ScheduleModel) scheduleDto.ScheduleResponse {
	ids := []uuid.UUID{m.ScheduleFacultyID}
	if m.ScheduleSubstituteFacultyID != nil {
		ids = append(ids, *m.ScheduleSubstituteFacultyID)
	}
	users, err := ctrl.Directory.MapUsersByID(ids)
	if err != nil {
		users = nil
	}

	var faculty, substitute *userModel.UserModel
	if u, ok := users[m.ScheduleFacultyID]; ok {
		faculty = &u
	}
	if m.ScheduleSubstituteFacultyID != nil {
		if u, ok := users[*m.ScheduleSubstituteFacultyID]; ok {
			substitute = &u
		}
	}
	return scheduleDto.FromModel(m, faculty, substitute)
}
