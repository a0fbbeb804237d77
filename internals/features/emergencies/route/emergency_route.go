package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	emergencyController "chwc_backend/internals/features/emergencies/controller"
)

func EmergencyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := emergencyController.NewEmergencyController(db)

	api.Post("/emergency-onboarding", ctrl.Create)
	api.Get("/emergency-reports", ctrl.ListSummaries)
	api.Get("/emergency-report/:id", ctrl.Get)
	api.Put("/emergency-report/:id", ctrl.Update)
	api.Delete("/emergency-report/:id", ctrl.Delete)
	api.Get("/emergency-table-structure", ctrl.TableStructure)
	api.Post("/create-emergency-table", ctrl.CreateTable)
}
