package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "chwc_backend/internals/features/users/auth/controller"
	"chwc_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	api.Post("/create-student", ctrl.CreateStudent)
	api.Post("/reset-student-password", ctrl.ResetStudentPassword)
	api.Post("/reset-passwords", ctrl.ResetAllStaffPasswords)
	api.Post("/debug-user", ctrl.DebugUser)
	api.Get("/users", ctrl.ListUsers)
	api.Get("/students", ctrl.ListStudents)
	api.Post("/create-students-table", ctrl.CreateStudentsTable)
}
