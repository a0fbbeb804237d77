package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "chwc_backend/internals/features/schedules/controller"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	api.Post("/save-staff-schedule", ctrl.Save)
	api.Get("/today-staff-schedule", ctrl.Today)
	api.Post("/create-staff-schedule-table", ctrl.CreateTable)
}
