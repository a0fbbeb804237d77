package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appointmentRoute "chwc_backend/internals/features/appointments/route"
	emergencyRoute "chwc_backend/internals/features/emergencies/route"
	onboardingRoute "chwc_backend/internals/features/onboarding/route"
	porRoute "chwc_backend/internals/features/por/route"
	reportRoute "chwc_backend/internals/features/reports/route"
	scheduleRoute "chwc_backend/internals/features/schedules/route"
	authRoute "chwc_backend/internals/features/users/auth/route"
)

// SetupRoutes mounts every feature under /api, plus the legacy root-level
// report paths.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is working!")
	})

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	onboardingRoute.OnboardingRoutes(api, db)
	porRoute.PORRoutes(api, db)
	appointmentRoute.AppointmentRoutes(api, db)
	scheduleRoute.ScheduleRoutes(api, db)
	emergencyRoute.EmergencyRoutes(api, db)
	reportRoute.ReportRoutes(api, app, db)
}
