package controller

import (
	"context"
	"errors"

	"github.com/jayehzzz/my-church-tracker/internals/features/lookup"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB         *gorm.DB
	Resolver   *lookup.Resolver
	Reconciler *service.Reconciler
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:         db,
		Resolver:   lookup.NewResolver(db),
		Reconciler: service.NewReconciler(service.NewGormStore(db)),
	}
}

func (ctl *AttendanceController) render(c *fiber.Ctx, rows []model.AttendanceModel, inc lookup.Include) error {
	views, err := ctl.Resolver.Attendance(c.UserContext(), rows, inc)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", views, len(views))
}

// GET /attendance
func (ctl *AttendanceController) GetAllAttendance(c *fiber.Ctx) error {
	var rows []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows, lookup.Include{Person: true, Service: true})
}

// GET /attendance/:id
func (ctl *AttendanceController) GetAttendanceByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var row model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "attendance_id = ?", id).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	views, err := ctl.Resolver.Attendance(c.UserContext(), []model.AttendanceModel{row}, lookup.Include{Person: true, Service: true})
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", views[0])
}

// GET /attendance/by-service/:service_id
func (ctl *AttendanceController) GetAttendanceByService(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "service_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var rows []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("service_id = ?", id).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows, lookup.Include{Person: true})
}

// GET /attendance/by-person/:person_id
func (ctl *AttendanceController) GetAttendanceByPerson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "person_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var rows []model.AttendanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("person_id = ?", id).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows, lookup.Include{Service: true})
}

// POST /attendance
func (ctl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	row := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "attendance recorded", row)
}

// PATCH /attendance/:id
func (ctl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var row model.AttendanceModel
	if err := db.First(&row, "attendance_id = ?", id).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := db.Model(&row).Updates(updates).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
		if err := db.First(&row, "attendance_id = ?", id).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
	}
	return helper.JsonUpdated(c, "attendance updated", row)
}

// DELETE /attendance/:id
func (ctl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Where("attendance_id = ?", id).Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return helper.WriteDBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance not found")
	}
	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{"attendance_id": id})
}

// POST /attendance/bulk: all rows or none.
func (ctl *AttendanceController) BulkCreateAttendance(c *fiber.Ctx) error {
	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	rows := make([]model.AttendanceModel, 0, len(req.Records))
	for _, r := range req.Records {
		rows = append(rows, r.ToModel())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "attendance recorded", rows)
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// POST /attendance/sync
func (ctl *AttendanceController) SyncAttendance(c *fiber.Ctx) error {
	var req dto.SyncAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	serviceID := uuid.MustParse(req.ServiceID)

	svc, err := ctl.Resolver.Service(c.UserContext(), serviceID)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	if svc == nil {
		return helper.JsonError(c, fiber.StatusNotFound, service.ErrNotFound.Error()+": service "+serviceID.String())
	}

	res, err := ctl.Reconciler.Reconcile(c.UserContext(), serviceID, req.Roster())
	if err != nil {
		var partial *service.PartialApplyError
		if errors.As(err, &partial) {
			log.Error().Err(err).Str("service_id", serviceID.String()).Msg("attendance sync partially applied")
			return helper.JsonErrorDetails(c, fiber.StatusInternalServerError,
				"attendance sync partially applied; resubmit the same roster to finish", map[string][]string{
					"removed":   idStrings(partial.Removed),
					"upserted":  idStrings(partial.Upserted),
					"failed_at": {string(partial.Op) + " " + partial.PersonID.String()},
				})
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Err(err).Str("service_id", serviceID.String()).Msg("attendance sync cancelled")
			return helper.JsonError(c, fiber.StatusRequestTimeout, "attendance sync cancelled before any change")
		}
		log.Error().Err(err).Str("service_id", serviceID.String()).Msg("attendance sync failed")
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "attendance store unavailable")
	}
	return helper.JsonOK(c, "attendance synced", res)
}
