package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "chwc_backend/internals/features/reports/controller"
)

// ReportRoutes mounts each report under /api and at its legacy root path;
// older report screens still post to the bare paths.
func ReportRoutes(api fiber.Router, app *fiber.App, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	api.Post("/report1", ctrl.Appointments)
	api.Post("/report2", ctrl.Emergencies)
	api.Post("/report3", ctrl.PORUploads)

	app.Get("/report", ctrl.Index)
	app.Post("/report1", ctrl.Appointments)
	app.Post("/report2", ctrl.Emergencies)
	app.Post("/report3", ctrl.PORUploads)
}
