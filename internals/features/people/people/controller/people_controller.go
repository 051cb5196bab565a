package controller

import (
	"errors"
	"strings"

	"github.com/jayehzzz/my-church-tracker/internals/features/lookup"
	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PeopleController struct {
	DB       *gorm.DB
	Service  *service.PeopleService
	Resolver *lookup.Resolver
}

func NewPeopleController(db *gorm.DB) *PeopleController {
	return &PeopleController{
		DB:       db,
		Service:  service.NewPeopleService(db),
		Resolver: lookup.NewResolver(db),
	}
}

func writeStatusError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, model.ErrUnknownStatus):
		return helper.JsonValidationError(c, map[string][]string{"status": {err.Error()}})
	}
	return helper.WriteDBError(c, err)
}

// POST /people
func (ctl *PeopleController) CreatePerson(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	person := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&person).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "person created", person)
}

// GET /people
func (ctl *PeopleController) GetAllPeople(c *fiber.Ctx) error {
	people, err := ctl.Service.List(c.UserContext())
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", people, len(people))
}

// GET /people/:id
func (ctl *PeopleController) GetPersonByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	person, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	invitedBy, err := ctl.Resolver.PersonName(c.UserContext(), person.InvitedByID)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPersonResponse(*person, invitedBy))
}

// GET /people/by-status/:status
func (ctl *PeopleController) GetPeopleByStatus(c *fiber.Ctx) error {
	status, err := model.ParseMemberStatus(c.Params("status"))
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"status": {err.Error()}})
	}
	people, err := ctl.Service.ListByStatus(c.UserContext(), status)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", people, len(people))
}

// GET /people/search?q=
func (ctl *PeopleController) SearchPeople(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return helper.JsonValidationError(c, map[string][]string{"q": {"is required"}})
	}
	people, err := ctl.Service.Search(c.UserContext(), q)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", people, len(people))
}

// PATCH /people/:id
func (ctl *PeopleController) UpdatePerson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.MemberStatus != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"member_status": {"use POST /people/:id/status to change member status"},
		})
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ctx := c.UserContext()
	person, err := ctl.Service.Get(ctx, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "nothing to update", person)
	}
	if err := ctl.DB.WithContext(ctx).Model(person).Updates(updates).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	person, err = ctl.Service.Get(ctx, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonUpdated(c, "person updated", person)
}

// POST /people/:id/status
func (ctl *PeopleController) ChangeStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	person, err := ctl.Service.ChangeStatus(c.UserContext(), id, model.MemberStatus(req.Status), req.MembershipDate)
	if err != nil {
		return writeStatusError(c, err)
	}
	return helper.JsonUpdated(c, "status updated", person)
}

// DELETE /people/:id archives; ?hard=true removes the row.
func (ctl *PeopleController) DeletePerson(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if hard, _ := helper.ParseBoolLoose(c.Query("hard")); hard {
		if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
			return helper.WriteDBError(c, err)
		}
		return helper.JsonDeleted(c, "person deleted", fiber.Map{"person_id": id})
	}
	person, err := ctl.Service.Archive(c.UserContext(), id)
	if err != nil {
		return writeStatusError(c, err)
	}
	return helper.JsonDeleted(c, "person archived", person)
}
