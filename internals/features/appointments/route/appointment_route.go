package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appointmentController "chwc_backend/internals/features/appointments/controller"
)

func AppointmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := appointmentController.NewAppointmentController(db)

	api.Post("/save-appointment", ctrl.Save)
	api.Get("/student-appointments/:studentNumber", ctrl.StudentAppointments)
	api.Get("/appointments", ctrl.ListAll)
	api.Get("/appointments/student/:studentNumber", ctrl.ListForStudent)
	api.Put("/appointments/:id", ctrl.Update)
	api.Put("/appointments/:id/cancel", ctrl.Cancel)
	api.Post("/create-appointments-table", ctrl.CreateTable)
	api.Post("/update-appointments-table", ctrl.UpdateTable)
}
