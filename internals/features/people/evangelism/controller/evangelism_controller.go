package controller

import (
	"errors"

	"github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/service"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EvangelismController struct {
	Service *service.EvangelismService
}

func NewEvangelismController(db *gorm.DB) *EvangelismController {
	return &EvangelismController{Service: service.NewEvangelismService(db)}
}

func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, peopleModel.ErrInvalidTransition) {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	return helper.WriteDBError(c, err)
}

// GET /evangelism
func (ctl *EvangelismController) GetAllContacts(c *fiber.Ctx) error {
	out, err := ctl.Service.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /evangelism/:id
func (ctl *EvangelismController) GetContactByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "", out)
}

// POST /evangelism
func (ctl *EvangelismController) CreateContact(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	out, err := ctl.Service.Create(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "contact created", out)
}

// PATCH /evangelism/:id
func (ctl *EvangelismController) UpdateContact(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	out, err := ctl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "contact updated", out)
}

// DELETE /evangelism/:id
func (ctl *EvangelismController) DeleteContact(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return helper.JsonDeleted(c, "contact deleted", fiber.Map{"id": id})
}

// POST /evangelism/:id/convert
func (ctl *EvangelismController) MarkConverted(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.ConvertRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	out, err := ctl.Service.MarkConverted(c.UserContext(), id, req.ConversionDate)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "contact converted", out)
}

// GET /evangelism/by-response/:response
func (ctl *EvangelismController) GetByResponse(c *fiber.Ctx) error {
	resp := c.Params("response")
	switch resp {
	case dto.ResponseResponsive, dto.ResponseNonResponsive, dto.ResponseEventsOnly,
		dto.ResponseDoNotContact, dto.ResponseHasChurch:
	default:
		return helper.JsonValidationError(c, map[string][]string{"response": {"unknown response " + resp}})
	}
	out, err := ctl.Service.ByResponse(c.UserContext(), resp)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /evangelism/converted
func (ctl *EvangelismController) GetConverted(c *fiber.Ctx) error {
	out, err := ctl.Service.Converted(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /evangelism/by-date-range?start_date=&end_date=
func (ctl *EvangelismController) GetByDateRange(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := ctl.Service.ByDateRange(c.UserContext(), r)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /evangelism/by-inviter/:person_id
func (ctl *EvangelismController) GetByInviter(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "person_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := ctl.Service.ByInviter(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /evangelism/follow-up?as_of=
func (ctl *EvangelismController) GetRequiringFollowUp(c *fiber.Ctx) error {
	asOf := c.Query("as_of")
	if asOf != "" && !helper.IsISODate(asOf) {
		return helper.JsonValidationError(c, map[string][]string{"as_of": {"must be a date in YYYY-MM-DD format"}})
	}
	out, err := ctl.Service.RequiringFollowUp(c.UserContext(), asOf)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}
