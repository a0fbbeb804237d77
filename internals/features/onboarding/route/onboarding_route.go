package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	onboardingController "chwc_backend/internals/features/onboarding/controller"
)

func OnboardingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := onboardingController.NewOnboardingController(db)

	api.Post("/onboarding", ctrl.SubmitOnboarding)
	api.Post("/check-onboarding", ctrl.CheckOnboarding)
	api.Get("/onboarding-data", ctrl.OnboardingData)
	api.Post("/create-onboarding-table", ctrl.CreateOnboardingTable)
}
