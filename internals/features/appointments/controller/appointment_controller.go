package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/appointments/dto"
	"chwc_backend/internals/features/appointments/model"
	helper "chwc_backend/internals/helpers"
)

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// Save books an appointment. All required fields are checked up front and
// reported together; nothing is written on a partial request.
func (ac *AppointmentController) Save(c *fiber.Ctx) error {
	var req dto.SaveAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return helper.JsonErrorDetails(c, fiber.StatusBadRequest,
			"Missing required fields",
			strings.Join(missing, ", ")+" are required")
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonErrorDetails(c, fiber.StatusBadRequest, "Invalid appointment date", err.Error())
	}

	if err := ac.DB.Create(record).Error; err != nil {
		log.Println("[ERROR] saving appointment:", err)
		return helper.JsonDBError(c, "Error saving appointment", err)
	}

	return c.JSON(fiber.Map{
		"message":       "Appointment saved successfully!",
		"appointmentId": record.ID,
	})
}

// StudentAppointments lists a student's bookings newest-created-first. A
// deployment where the table was never created answers an empty list, not a
// 500; the booking screen treats the two the same.
func (ac *AppointmentController) StudentAppointments(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")

	if !ac.DB.Migrator().HasTable(&model.AppointmentModel{}) {
		return c.JSON(fiber.Map{
			"appointments": []model.AppointmentModel{},
			"count":        0,
			"message":      "No appointments table found",
		})
	}

	var records []model.AppointmentModel
	if err := ac.DB.Where("student_number = ?", studentNumber).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return helper.JsonDBError(c, "Error fetching appointments", err)
	}

	return c.JSON(fiber.Map{
		"appointments": records,
		"count":        len(records),
	})
}

// ListAll is the staff diary view, soonest-last.
func (ac *AppointmentController) ListAll(c *fiber.Ctx) error {
	var records []model.AppointmentModel
	if err := ac.DB.Order("appointment_date DESC, appointment_time DESC").
		Find(&records).Error; err != nil {
		return helper.JsonDBError(c, "Error fetching appointments", err)
	}
	return c.JSON(fiber.Map{
		"appointments": records,
		"count":        len(records),
	})
}

// ListForStudent mirrors the diary ordering scoped to one student.
func (ac *AppointmentController) ListForStudent(c *fiber.Ctx) error {
	studentNumber := c.Params("studentNumber")

	var records []model.AppointmentModel
	if err := ac.DB.Where("student_number = ?", studentNumber).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&records).Error; err != nil {
		return helper.JsonDBError(c, "Error fetching appointments", err)
	}
	return c.JSON(fiber.Map{
		"appointments": records,
		"count":        len(records),
	})
}

// Update reschedules an appointment. Date, time and reason are all required;
// status is overwritten, defaulting back to scheduled when omitted.
func (ac *AppointmentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	var req dto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil || !req.Complete() {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"appointmentDate, appointmentTime and appointmentFor are required")
	}
	if _, err := time.Parse("2006-01-02", req.AppointmentDate); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment date")
	}

	status := req.Status
	if status == "" {
		status = model.StatusScheduled
	}

	res := ac.DB.Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"appointment_date": req.AppointmentDate,
			"appointment_time": req.AppointmentTime,
			"appointment_for":  req.AppointmentFor,
			"status":           status,
		})
	if res.Error != nil {
		log.Println("[ERROR] updating appointment:", res.Error)
		return helper.JsonDBError(c, "Error updating appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	return c.JSON(fiber.Map{"message": "Appointment updated successfully"})
}

// Cancel forces status to cancelled regardless of the current state.
func (ac *AppointmentController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment id")
	}

	res := ac.DB.Model(&model.AppointmentModel{}).
		Where("id = ?", id).
		Update("status", model.StatusCancelled)
	if res.Error != nil {
		log.Println("[ERROR] cancelling appointment:", res.Error)
		return helper.JsonDBError(c, "Error cancelling appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	return c.JSON(fiber.Map{"message": "Appointment cancelled successfully"})
}

// CreateTable / UpdateTable are the dev bootstrap endpoints for deployments
// that predate the migrator.
func (ac *AppointmentController) CreateTable(c *fiber.Ctx) error {
	m := ac.DB.Migrator()
	if m.HasTable(&model.AppointmentModel{}) {
		return c.JSON(fiber.Map{"message": "appointments table already exists"})
	}
	if err := m.CreateTable(&model.AppointmentModel{}); err != nil {
		return helper.JsonDBError(c, "Error creating appointments table", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "appointments table created"})
}

func (ac *AppointmentController) UpdateTable(c *fiber.Ctx) error {
	m := ac.DB.Migrator()
	if !m.HasTable(&model.AppointmentModel{}) {
		if err := m.CreateTable(&model.AppointmentModel{}); err != nil {
			return helper.JsonDBError(c, "Error creating appointments table", err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "appointments table created"})
	}
	for _, col := range []string{"PreviousAppointmentRef", "Status"} {
		if m.HasColumn(&model.AppointmentModel{}, col) {
			continue
		}
		if err := m.AddColumn(&model.AppointmentModel{}, col); err != nil {
			return helper.JsonDBError(c, "Error updating appointments table", err)
		}
	}
	return c.JSON(fiber.Map{"message": "appointments table structure is up to date"})
}
