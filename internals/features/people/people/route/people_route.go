package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPeopleController(db)

	people := api.Group("/people")
	people.Get("/", ctl.GetAllPeople)
	people.Post("/", ctl.CreatePerson)
	people.Get("/search", ctl.SearchPeople)
	people.Get("/by-status/:status", ctl.GetPeopleByStatus)
	people.Get("/:id", ctl.GetPersonByID)
	people.Patch("/:id", ctl.UpdatePerson)
	people.Delete("/:id", ctl.DeletePerson) // ?hard=true
	people.Post("/:id/status", ctl.ChangeStatus)
}
