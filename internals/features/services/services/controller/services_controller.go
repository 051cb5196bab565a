package controller

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ServicesController struct {
	DB    *gorm.DB
	Stats *service.StatsService
}

func NewServicesController(db *gorm.DB) *ServicesController {
	return &ServicesController{DB: db, Stats: service.NewStatsService(db)}
}

// GET /services
func (ctl *ServicesController) GetAllServices(c *fiber.Ctx) error {
	out, err := service.ListServices(c.UserContext(), ctl.DB, helper.DateRange{})
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /services/by-date-range?start_date=&end_date=
func (ctl *ServicesController) GetServicesByDateRange(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := service.ListServices(c.UserContext(), ctl.DB, r)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /services/:id
func (ctl *ServicesController) GetServiceByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var svc model.ServiceModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&svc, "service_id = ?", id).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", svc)
}

// POST /services
func (ctl *ServicesController) CreateService(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	svc := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&svc).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "service created", svc)
}

// PATCH /services/:id
func (ctl *ServicesController) UpdateService(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	db := ctl.DB.WithContext(c.UserContext())
	var svc model.ServiceModel
	if err := db.First(&svc, "service_id = ?", id).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := db.Model(&svc).Updates(updates).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
		if err := db.First(&svc, "service_id = ?", id).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
	}
	return helper.JsonUpdated(c, "service updated", svc)
}

// DELETE /services/:id
func (ctl *ServicesController) DeleteService(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.DeleteService(c.UserContext(), ctl.DB, id); err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonDeleted(c, "service deleted", fiber.Map{"service_id": id})
}

// POST /services/:id/refresh-stats
func (ctl *ServicesController) RefreshStats(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	svc, err := ctl.Stats.Refresh(c.UserContext(), id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonUpdated(c, "stats refreshed", svc)
}
