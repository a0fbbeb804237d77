package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	onboardingModel "chwc_backend/internals/features/onboarding/model"
	porModel "chwc_backend/internals/features/por/model"
	porService "chwc_backend/internals/features/por/service"
	authDTO "chwc_backend/internals/features/users/auth/dto"
	authHelper "chwc_backend/internals/features/users/auth/helper"
	"chwc_backend/internals/features/users/auth/model"
	authService "chwc_backend/internals/features/users/auth/service"
	helper "chwc_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

const (
	invalidStaffLogin   = "Invalid staff number/username or password"
	invalidStudentLogin = "Invalid student number/username or password"
)

type staffRow struct {
	model.UserModel
	RoleName string `gorm:"column:role_name"`
}

type studentRow struct {
	model.StudentModel
	RoleName string `gorm:"column:role_name"`
}

// POST /api/login
// Staff resolve against users, students against students; both joined to
// roles. Unknown identifier and wrong password produce the same 401.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()

	if req.Identifier == "" || req.Password == "" || req.UserType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifier, password, and user type are required")
	}

	switch req.UserType {
	case "staff":
		return ac.loginStaff(c, req)
	case "student":
		return ac.loginStudent(c, req)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user type")
	}
}

func (ac *AuthController) loginStaff(c *fiber.Ctx, req authDTO.LoginRequest) error {
	var row staffRow
	err := ac.DB.Table("users").
		Select("users.*, roles.role_name").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("users.staff_number = ? OR users.username = ?", req.Identifier, req.Identifier).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidStaffLogin)
	}
	if err != nil {
		log.Println("[ERROR] staff login lookup:", err)
		return helper.JsonDBError(c, "Database error", err)
	}

	if err := authHelper.CheckPasswordHash(row.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidStaffLogin)
	}

	token, err := authService.MintAccessToken(row.StaffNumber, "staff", row.RoleName)
	if err != nil {
		log.Println("[ERROR] mint staff token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Login successful",
		"user":     authDTO.FromUserModel(&row.UserModel, row.RoleName),
		"userType": "staff",
		"token":    token,
	})
}

func (ac *AuthController) loginStudent(c *fiber.Ctx, req authDTO.LoginRequest) error {
	var row studentRow
	err := ac.DB.Table("students").
		Select("students.*, roles.role_name").
		Joins("JOIN roles ON students.role_id = roles.id").
		Where("students.student_number = ? OR students.username = ?", req.Identifier, req.Identifier).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidStudentLogin)
	}
	if err != nil {
		log.Println("[ERROR] student login lookup:", err)
		return helper.JsonDBError(c, "Database error", err)
	}

	if err := authHelper.CheckPasswordHash(row.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidStudentLogin)
	}

	token, err := authService.MintAccessToken(row.StudentNumber, "student", row.RoleName)
	if err != nil {
		log.Println("[ERROR] mint student token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	// Status flags ride along on student logins. A failed lookup degrades to
	// false rather than failing the login; the error is logged.
	onboarded := ac.checkOnboardingStatus(row.StudentNumber)
	porExists, porApproved := ac.checkPORStatus(row.StudentNumber)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":             "Login successful",
		"user":                authDTO.FromStudentModel(&row.StudentModel, row.RoleName),
		"userType":            "student",
		"token":               token,
		"onboardingCompleted": onboarded,
		"porUploaded":         porExists,
		"porApproved":         porApproved,
	})
}

func (ac *AuthController) checkOnboardingStatus(studentNumber string) bool {
	var count int64
	err := ac.DB.Model(&onboardingModel.OnboardingStudentModel{}).
		Where("student_number = ?", studentNumber).
		Count(&count).Error
	if err != nil {
		log.Println("[ERROR] onboarding status lookup:", err)
		return false
	}
	return count > 0
}

func (ac *AuthController) checkPORStatus(studentNumber string) (exists, approved bool) {
	porService.EnsureApprovalColumns(ac.DB)

	var row porModel.PORUploadModel
	err := ac.DB.Where("student_number = ?", studentNumber).
		Order("uploaded_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false
	}
	if err != nil {
		log.Println("[ERROR] por status lookup:", err)
		return false, false
	}
	return true, row.ApprovalStatus == porModel.StatusApproved
}

// POST /api/create-student
func (ac *AuthController) CreateStudent(c *fiber.Ctx) error {
	var req authDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" || req.StudentNumber == "" || req.FullName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		log.Println("[ERROR] hash student password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	student := req.ToModel(hashed)
	if err := ac.DB.Create(student).Error; err != nil {
		log.Println("[ERROR] create student:", err)
		return helper.JsonDBError(c, "Failed to create student account", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Student account created successfully!",
		"studentId": student.ID,
	})
}

// POST /api/reset-student-password
func (ac *AuthController) ResetStudentPassword(c *fiber.Ctx) error {
	var req authDTO.ResetStudentPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.StudentNumber == "" || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student number and new password are required")
	}

	hashed, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		log.Println("[ERROR] hash new password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	tx := ac.DB.Model(&model.StudentModel{}).
		Where("student_number = ?", req.StudentNumber).
		Update("password", hashed)
	if tx.Error != nil {
		log.Println("[ERROR] reset student password:", tx.Error)
		return helper.JsonDBError(c, "Failed to reset password", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return helper.JsonErrorDetails(c, fiber.StatusNotFound,
			"Student not found", "No student found with the provided student number")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password reset successfully!"})
}

// POST /api/reset-passwords (development helper: resets every staff password)
func (ac *AuthController) ResetAllStaffPasswords(c *fiber.Ctx) error {
	const devPassword = "password123"

	hashed, err := authHelper.HashPassword(devPassword)
	if err != nil {
		log.Println("[ERROR] hash dev password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	tx := ac.DB.Model(&model.UserModel{}).Where("1 = 1").Update("password", hashed)
	if tx.Error != nil {
		return helper.JsonDBError(c, "Failed to reset passwords", tx.Error)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Passwords reset successfully!",
		"newPassword":   devPassword,
		"usersAffected": tx.RowsAffected,
	})
}

// POST /api/debug-user
func (ac *AuthController) DebugUser(c *fiber.Ctx) error {
	var req struct {
		StaffNumber string `json:"staffNumber"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.StaffNumber == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Staff number is required")
	}

	var rows []staffRow
	err := ac.DB.Table("users").
		Select("users.*, roles.role_name").
		Joins("JOIN roles ON users.role_id = roles.id").
		Where("users.staff_number = ?", req.StaffNumber).
		Find(&rows).Error
	if err != nil {
		return helper.JsonDBError(c, "Database error", err)
	}

	users := make([]authDTO.StaffProfile, 0, len(rows))
	for i := range rows {
		users = append(users, authDTO.FromUserModel(&rows[i].UserModel, rows[i].RoleName))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"userFound": len(users) > 0,
		"users":     users,
		"count":     len(users),
	})
}

// GET /api/users
func (ac *AuthController) ListUsers(c *fiber.Ctx) error {
	var rows []staffRow
	err := ac.DB.Table("users").
		Select("users.*, roles.role_name").
		Joins("JOIN roles ON users.role_id = roles.id").
		Order("users.id").
		Find(&rows).Error
	if err != nil {
		return helper.JsonDBError(c, "Database error", err)
	}

	users := make([]authDTO.StaffProfile, 0, len(rows))
	for i := range rows {
		users = append(users, authDTO.FromUserModel(&rows[i].UserModel, rows[i].RoleName))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// GET /api/students
func (ac *AuthController) ListStudents(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ac.DB.Order("id").Find(&students).Error; err != nil {
		return helper.JsonDBError(c, "Failed to fetch students", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

// POST /api/create-students-table (development bootstrap)
func (ac *AuthController) CreateStudentsTable(c *fiber.Ctx) error {
	m := ac.DB.Migrator()
	if !m.HasTable(&model.StudentModel{}) {
		if err := m.CreateTable(&model.StudentModel{}); err != nil {
			log.Println("[ERROR] create students table:", err)
			return helper.JsonDBError(c, "Failed to create students table", err)
		}
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Students table created successfully or already exists",
	})
}
