package controller

import (
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/lookup"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingsController struct {
	DB       *gorm.DB
	Resolver *lookup.Resolver
	Now      func() time.Time
}

func NewMeetingsController(db *gorm.DB) *MeetingsController {
	return &MeetingsController{DB: db, Resolver: lookup.NewResolver(db), Now: time.Now}
}

func (ctl *MeetingsController) list(c *fiber.Ctx, f service.Filter) error {
	rows, err := service.ListMeetings(c.UserContext(), ctl.DB, f)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	views, err := ctl.Resolver.Meetings(c.UserContext(), rows)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", views, len(views))
}

func (ctl *MeetingsController) load(c *fiber.Ctx, id uuid.UUID) (*model.MeetingModel, error) {
	var m model.MeetingModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "meeting_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GET /meetings
func (ctl *MeetingsController) GetAllMeetings(c *fiber.Ctx) error {
	return ctl.list(c, service.Filter{})
}

// GET /meetings/by-type/:type
func (ctl *MeetingsController) GetMeetingsByType(c *fiber.Ctx) error {
	t := c.Params("type")
	if !dto.ValidMeetingType(t) {
		return helper.JsonValidationError(c, map[string][]string{"meeting_type": {"unknown meeting type " + t}})
	}
	return ctl.list(c, service.Filter{Type: model.MeetingType(t)})
}

// GET /meetings/by-date-range?start_date=&end_date=
func (ctl *MeetingsController) GetMeetingsByDateRange(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return ctl.list(c, service.Filter{Range: r})
}

// GET /meetings/:id
func (ctl *MeetingsController) GetMeetingByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := ctl.load(c, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	views, err := ctl.Resolver.Meetings(c.UserContext(), []model.MeetingModel{*m})
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", views[0])
}

// POST /meetings
func (ctl *MeetingsController) CreateMeeting(c *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "meeting created", m)
}

// PATCH /meetings/:id
func (ctl *MeetingsController) UpdateMeeting(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	m, err := ctl.load(c, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	if updates := req.ToUpdates(); len(updates) > 0 {
		if err := ctl.DB.WithContext(c.UserContext()).Model(m).Updates(updates).Error; err != nil {
			return helper.WriteDBError(c, err)
		}
		if m, err = ctl.load(c, id); err != nil {
			return helper.WriteDBError(c, err)
		}
	}
	return helper.JsonUpdated(c, "meeting updated", m)
}

// DELETE /meetings/:id
func (ctl *MeetingsController) DeleteMeeting(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.DeleteMeeting(c.UserContext(), ctl.DB, id); err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonDeleted(c, "meeting deleted", fiber.Map{"meeting_id": id})
}

// POST /meetings/:id/attendees
func (ctl *MeetingsController) AddAttendees(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.AddAttendeesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if errs := helper.ValidationErrors(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if _, err := ctl.load(c, id); err != nil {
		return helper.WriteDBError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(req.PersonIDs))
	for _, s := range req.PersonIDs {
		ids = append(ids, uuid.MustParse(s))
	}
	added, err := service.AddAttendees(c.UserContext(), ctl.DB, id, ids, ctl.Now())
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonCreated(c, "attendees added", fiber.Map{"added": added})
}

// GET /meetings/:id/attendees
func (ctl *MeetingsController) GetAttendees(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := service.ListAttendees(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	views, err := ctl.Resolver.MeetingAttendance(c.UserContext(), rows)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", views, len(views))
}

// DELETE /meetings/:id/attendees/:person_id
func (ctl *MeetingsController) RemoveAttendee(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	personID, err := helper.ParseUUIDParam(c, "person_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.RemoveAttendee(c.UserContext(), ctl.DB, id, personID); err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonDeleted(c, "attendee removed", fiber.Map{"meeting_id": id, "person_id": personID})
}
