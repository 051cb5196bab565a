package details

import (
	evangelismRoute "github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/route"
	peopleRoute "github.com/jayehzzz/my-church-tracker/internals/features/people/people/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	peopleRoute.PeopleRoutes(api, db)
	evangelismRoute.EvangelismRoutes(api, db)
}
