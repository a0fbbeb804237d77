package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chwc_backend/internals/features/schedules/dto"
	"chwc_backend/internals/features/schedules/model"
	helper "chwc_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// Save upserts a staff member's lunch windows for one calendar day. Saving
// the same (staff, month, day) again replaces the windows and notes.
func (sc *ScheduleController) Save(c *fiber.Ctx) error {
	var req dto.SaveScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !req.Complete() {
		return helper.JsonError(c, fiber.StatusBadRequest, "staff_name, month and day are required")
	}

	record := req.ToModel()
	err := sc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "staff_name"}, {Name: "month"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"lunch1_start": record.Lunch1Start,
			"lunch1_end":   record.Lunch1End,
			"lunch2_start": record.Lunch2Start,
			"lunch2_end":   record.Lunch2End,
			"notes":        record.Notes,
		}),
	}).Create(record).Error
	if err != nil {
		log.Println("[ERROR] saving staff schedule:", err)
		return helper.JsonDBError(c, "Error saving schedule", err)
	}

	return c.JSON(fiber.Map{
		"message":  "Staff schedule saved successfully!",
		"recordId": record.ID,
	})
}

// Today returns the cover board for the server's current date, one composed
// lunch_times string per staff member.
func (sc *ScheduleController) Today(c *fiber.Ctx) error {
	now := time.Now()
	month := now.Format("January")
	day := now.Day()

	var records []model.StaffScheduleModel
	if err := sc.DB.Where("month = ? AND day = ?", month, day).
		Order("staff_name ASC").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] fetching today's schedule:", err)
		return helper.JsonDBError(c, "Error fetching schedule", err)
	}

	rows := make([]dto.TodayScheduleRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.ToTodayRow(r))
	}
	return c.JSON(fiber.Map{
		"schedule": rows,
		"date":     fmt.Sprintf("%s %d", month, day),
		"count":    len(rows),
	})
}

// CreateTable is the dev bootstrap hook.
func (sc *ScheduleController) CreateTable(c *fiber.Ctx) error {
	m := sc.DB.Migrator()
	if m.HasTable(&model.StaffScheduleModel{}) {
		return c.JSON(fiber.Map{"message": "staff_schedules table already exists"})
	}
	if err := m.CreateTable(&model.StaffScheduleModel{}); err != nil {
		return helper.JsonDBError(c, "Error creating staff_schedules table", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "staff_schedules table created"})
}
