package controller

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/lookup"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitationsController struct {
	DB       *gorm.DB
	Resolver *lookup.Resolver
}

func NewVisitationsController(db *gorm.DB) *VisitationsController {
	return &VisitationsController{DB: db, Resolver: lookup.NewResolver(db)}
}

func (ctl *VisitationsController) render(c *fiber.Ctx, rows []model.VisitationModel) error {
	views, err := ctl.Resolver.Visitations(c.UserContext(), rows)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", views, len(views))
}

func (ctl *VisitationsController) load(c *fiber.Ctx, id uuid.UUID) (*model.VisitationModel, error) {
	var v model.VisitationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&v, "visitation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// GET /visitations
func (ctl *VisitationsController) GetAllVisitations(c *fiber.Ctx) error {
	rows, err := service.ListVisitations(c.UserContext(), ctl.DB, helper.DateRange{})
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows)
}

// GET /visitations/by-date-range?start_date=&end_date=
func (ctl *VisitationsController) GetVisitationsByDateRange(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := service.ListVisitations(c.UserContext(), ctl.DB, r)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows)
}

// GET /visitations/by-person/:person_id
func (ctl *VisitationsController) GetVisitationsByPerson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "person_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := service.ListByPerson(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows)
}

// GET /visitations/follow-up
func (ctl *VisitationsController) GetRequiringFollowUp(c *fiber.Ctx) error {
	rows, err := service.RequiringFollowUp(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return ctl.render(c, rows)
}

// GET /visitations/:id
func (ctl *VisitationsController) GetVisitationByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	v, err := ctl.load(c, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	views, err := ctl.Resolver.Visitations(c.UserContext(), []model.VisitationModel{*v})
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", views[0])
}

// POST /visitations
func (ctl *VisitationsController) CreateVisitation(c *fiber.Ctx) error {
	var req dto.CreateVisitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	v := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&v).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "visitation created", v)
}

// PATCH /visitations/:id
func (ctl *VisitationsController) UpdateVisitation(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateVisitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	v, err := ctl.load(c, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).Model(v).Updates(updates).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
		if v, err = ctl.load(c, id); err != nil {
			return helper.WriteDBError(c, err)
		}
	}
	return helper.JsonUpdated(c, "visitation updated", v)
}

// DELETE /visitations/:id
func (ctl *VisitationsController) DeleteVisitation(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.UserContext()).Where("visitation_id = ?", id).Delete(&model.VisitationModel{})
	if res.Error != nil {
		return helper.WriteDBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "visitation not found")
	}
	return helper.JsonDeleted(c, "visitation deleted", fiber.Map{"visitation_id": id})
}
