package controller

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/dashboard/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

// GET /dashboard/kpis?start_date=&end_date=
func (ctl *DashboardController) GetKPIs(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, false)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := ctl.Service.KPIs(c.UserContext(), r)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonOK(c, "", out)
}

// GET /dashboard/attendance-chart?start_date=&end_date=
func (ctl *DashboardController) GetAttendanceChart(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c, false)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	out, err := ctl.Service.AttendanceChart(c.UserContext(), r)
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}

// GET /dashboard/recent-activities?limit=
func (ctl *DashboardController) GetRecentActivities(c *fiber.Ctx) error {
	out, err := ctl.Service.RecentActivities(c.UserContext(), helper.QueryInt(c, "limit", service.DefaultRecentLimit))
	if err != nil {
		return helper.WriteDBError(c, err)
	}
	return helper.JsonList(c, "", out, len(out))
}
