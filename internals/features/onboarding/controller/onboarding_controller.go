package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/onboarding/dto"
	"chwc_backend/internals/features/onboarding/model"
	helper "chwc_backend/internals/helpers"
)

var validate = validator.New()

type OnboardingController struct {
	DB *gorm.DB
}

func NewOnboardingController(db *gorm.DB) *OnboardingController {
	return &OnboardingController{DB: db}
}

// SubmitOnboarding stores a student's intake form. One record per student:
// a second submission for the same number is rejected with 409.
func (oc *OnboardingController) SubmitOnboarding(c *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		if field := helper.FirstValidationField(err); field != "" {
			return helper.JsonRequiredFieldError(c, field)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonErrorDetails(c, fiber.StatusBadRequest, "Invalid date format", err.Error())
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.OnboardingStudentModel{}).
			Where("student_number = ?", record.StudentNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Onboarding record already exists for this student number")
		}
		log.Println("[ERROR] saving onboarding record:", err)
		return helper.JsonDBError(c, "Error saving onboarding data", err)
	}

	return c.JSON(fiber.Map{
		"message":  "Form submitted successfully!",
		"recordId": record.ID,
	})
}

// CheckOnboarding reports whether a student has completed the intake form.
func (oc *OnboardingController) CheckOnboarding(c *fiber.Ctx) error {
	var req struct {
		StudentNumber string `json:"studentNumber"`
	}
	if err := c.BodyParser(&req); err != nil || req.StudentNumber == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student number is required")
	}

	var count int64
	if err := oc.DB.Model(&model.OnboardingStudentModel{}).
		Where("student_number = ?", req.StudentNumber).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] checking onboarding status:", err)
		return helper.JsonDBError(c, "Error checking onboarding status", err)
	}

	return c.JSON(fiber.Map{"exists": count > 0})
}

// OnboardingData lists registrations for the reports screen, optionally
// filtered to a form-date range (from/to, inclusive, YYYY-MM-DD).
func (oc *OnboardingController) OnboardingData(c *fiber.Ctx) error {
	q := oc.DB.Model(&model.OnboardingStudentModel{})

	if from := c.Query("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid 'from' date")
		}
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid 'to' date")
		}
		q = q.Where("date <= ?", to)
	}

	var records []model.OnboardingStudentModel
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		log.Println("[ERROR] fetching onboarding data:", err)
		return helper.JsonDBError(c, "Error fetching onboarding data", err)
	}

	rows := make([]dto.OnboardingReportRow, 0, len(records))
	for i := range records {
		rows = append(rows, dto.ToReportRow(&records[i]))
	}
	return c.JSON(rows)
}

// CreateOnboardingTable is a dev bootstrap hook, mirroring the other
// table-creation endpoints.
func (oc *OnboardingController) CreateOnboardingTable(c *fiber.Ctx) error {
	m := oc.DB.Migrator()
	if m.HasTable(&model.OnboardingStudentModel{}) {
		return c.JSON(fiber.Map{"message": "onboarding_students table already exists"})
	}
	if err := m.CreateTable(&model.OnboardingStudentModel{}); err != nil {
		return helper.JsonDBError(c, "Error creating onboarding_students table", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "onboarding_students table created"})
}
