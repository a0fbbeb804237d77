package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	porController "chwc_backend/internals/features/por/controller"
)

func PORRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := porController.NewPORController(db)

	api.Post("/upload-por-multer", ctrl.Upload)
	api.Get("/por/:studentNumber", ctrl.Latest)
	api.Post("/por/:studentNumber/decision", ctrl.Decide)
	api.Post("/check-por", ctrl.Check)
	api.Get("/student-files/:studentNumber", ctrl.StudentFiles)
	api.Get("/download-file/:id", ctrl.Download)
	api.Get("/por-uploads", ctrl.ListAll)
	api.Post("/update-por-table-structure", ctrl.UpdateTableStructure)
}
