package controller

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ActivitiesController struct {
	DB *gorm.DB
}

func NewActivitiesController(db *gorm.DB) *ActivitiesController {
	return &ActivitiesController{DB: db}
}

func (ctl *ActivitiesController) list(c *fiber.Ctx, f service.Filter) error {
	out, err := service.ListActivities(c.UserContext(), ctl.DB, f)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /activities
func (ctl *ActivitiesController) GetAllActivities(c *fiber.Ctx) error {
	return ctl.list(c, service.Filter{})
}

// GET /activities/recent?limit=
func (ctl *ActivitiesController) GetRecentActivities(c *fiber.Ctx) error {
	return ctl.list(c, service.Filter{Limit: helper.QueryInt(c, "limit", service.DefaultRecentLimit)})
}

// GET /activities/by-type/:type
func (ctl *ActivitiesController) GetActivitiesByType(c *fiber.Ctx) error {
	return ctl.list(c, service.Filter{Type: c.Params("type")})
}

// GET /activities/by-date-range?start_date=&end_date=
func (ctl *ActivitiesController) GetActivitiesByDateRange(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.list(c, service.Filter{Range: r})
}

// GET /activities/:id
func (ctl *ActivitiesController) GetActivityByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var a model.ActivityModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&a, "activity_id = ?", id).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", a)
}

// POST /activities
func (ctl *ActivitiesController) CreateActivity(c *fiber.Ctx) error {
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	a := req.ToModel()
	if a.ActivityType == "" {
		return helper.JsonValidationError(c, map[string][]string{"activity_type": {"must contain letters or digits"}})
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&a).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "activity created", a)
}
