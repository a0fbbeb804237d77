package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/emergencies/dto"
	"chwc_backend/internals/features/emergencies/model"
	helper "chwc_backend/internals/helpers"
)

type EmergencyController struct {
	DB *gorm.DB
}

func NewEmergencyController(db *gorm.DB) *EmergencyController {
	return &EmergencyController{DB: db}
}

// Create files an incident report. Every required form field is checked
// before the insert; the first one missing names itself in the error.
func (ec *EmergencyController) Create(c *fiber.Ctx) error {
	var req dto.EmergencyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if field := req.FirstMissing(); field != "" {
		return helper.JsonRequiredFieldError(c, field)
	}

	record, err := req.ToModel()
	if err != nil {
		return helper.JsonErrorDetails(c, fiber.StatusBadRequest, "Invalid date format", err.Error())
	}

	if err := ec.DB.Create(record).Error; err != nil {
		log.Println("[ERROR] saving emergency report:", err)
		return helper.JsonDBError(c, "Failed to save emergency report", err)
	}

	return c.JSON(fiber.Map{
		"message":  "Emergency report submitted successfully!",
		"recordId": record.ID,
	})
}

// ListSummaries returns every incident newest first, trimmed to the columns
// the overview table shows.
func (ec *EmergencyController) ListSummaries(c *fiber.Ctx) error {
	var summaries []dto.ReportSummary
	err := ec.DB.Model(&model.EmergencyReportModel{}).
		Select("id, date, time_of_call, caller_name, department, patient_name, patient_surname, student_number, created_at").
		Order("created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		log.Println("[ERROR] fetching emergency reports:", err)
		return helper.JsonDBError(c, "Failed to fetch emergency reports", err)
	}

	return c.JSON(fiber.Map{
		"reports": summaries,
		"count":   len(summaries),
	})
}

// Get returns the full incident record.
func (ec *EmergencyController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var record model.EmergencyReportModel
	if err := ec.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Emergency report not found")
		}
		return helper.JsonDBError(c, "Failed to fetch emergency report", err)
	}

	return c.JSON(fiber.Map{"report": record})
}

// Update overwrites an incident record in full. Unlike Create, no required
// set is enforced: the edit screen may save a partially cleared form.
// Unparseable dates are simply left unchanged.
func (ec *EmergencyController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var req dto.EmergencyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{
		"time_of_call":       req.TimeOfCall,
		"person_responsible": req.PersonResponsible,
		"caller_name":        req.CallerName,
		"department":         req.Department,
		"contact_number":     req.ContactNumber,
		"problem_nature":     req.ProblemNature,

		"east_campus":      req.EastCampus,
		"west_campus":      req.WestCampus,
		"education_campus": req.EducationCampus,
		"other_campus":     req.OtherCampus,
		"building":         nilIfEmpty(req.Building),
		"room_number":      nilIfEmpty(req.RoomNumber),
		"floor":            nilIfEmpty(req.Floor),
		"other_location":   nilIfEmpty(req.OtherLocation),

		"staff_informed":    req.StaffInformed,
		"notification_time": req.NotificationTime,
		"team_responding":   req.TeamResponding,
		"time_left_clinic":  req.TimeLeftClinic,

		"chwc_vehicle":           req.ChwcVehicle,
		"sisters_on_foot":        req.SistersOnFoot,
		"other_transport":        req.OtherTransport,
		"other_transport_detail": nilIfEmpty(req.OtherTransportDetail),
		"arrival_time":           req.ArrivalTime,

		"student_number":  req.StudentNumber,
		"patient_name":    req.PatientName,
		"patient_surname": req.PatientSurname,

		"primary_assessment": req.PrimaryAssessment,
		"intervention":       req.Intervention,

		"medical_consent":   req.MedicalConsent,
		"transport_consent": req.TransportConsent,
		"signature":         req.Signature,

		"pt_chwc_vehicle": req.PtChwcVehicle,
		"pt_ambulance":    req.PtAmbulance,
		"pt_other":        req.PtOther,
		"pt_other_detail": nilIfEmpty(req.PtOtherDetail),

		"patient_transported_to": req.PatientTransportedTo,
		"departure_time":         req.DepartureTime,

		"chwc_arrival_time":   req.ChwcArrivalTime,
		"existing_file":       req.ExistingFile,
		"referred":            req.Referred,
		"hospital_name":       nilIfEmpty(req.HospitalName),
		"discharge_condition": req.DischargeCondition,
		"discharge_time":      req.DischargeTime,
	}
	if t, err := time.Parse("2006-01-02", req.Date); err == nil {
		updates["date"] = t.Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", req.ConsentDate); err == nil {
		updates["consent_date"] = t.Format("2006-01-02")
	}

	res := ec.DB.Model(&model.EmergencyReportModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		log.Println("[ERROR] updating emergency report:", res.Error)
		return helper.JsonDBError(c, "Failed to update emergency report", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Emergency report not found")
	}

	return c.JSON(fiber.Map{"message": "Emergency report updated successfully!"})
}

// Delete removes an incident record permanently.
func (ec *EmergencyController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	res := ec.DB.Delete(&model.EmergencyReportModel{}, id)
	if res.Error != nil {
		log.Println("[ERROR] deleting emergency report:", res.Error)
		return helper.JsonDBError(c, "Failed to delete emergency report", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Emergency report not found")
	}

	return c.JSON(fiber.Map{"message": "Emergency report deleted successfully!"})
}

// TableStructure describes emergency_onboarding's live columns, the debug
// view the incident form maintainers use.
func (ec *EmergencyController) TableStructure(c *fiber.Ctx) error {
	cols, err := ec.DB.Migrator().ColumnTypes(&model.EmergencyReportModel{})
	if err != nil {
		return helper.JsonDBError(c, "Failed to describe emergency_onboarding", err)
	}

	type columnInfo struct {
		Field    string `json:"Field"`
		Type     string `json:"Type"`
		Nullable bool   `json:"Nullable"`
	}
	out := make([]columnInfo, 0, len(cols))
	for _, col := range cols {
		typeName, _ := col.ColumnType()
		nullable, _ := col.Nullable()
		out = append(out, columnInfo{Field: col.Name(), Type: typeName, Nullable: nullable})
	}
	return c.JSON(fiber.Map{"structure": out})
}

// CreateTable is the dev bootstrap hook.
func (ec *EmergencyController) CreateTable(c *fiber.Ctx) error {
	m := ec.DB.Migrator()
	if m.HasTable(&model.EmergencyReportModel{}) {
		return c.JSON(fiber.Map{"message": "Emergency onboarding table created successfully or already exists"})
	}
	if err := m.CreateTable(&model.EmergencyReportModel{}); err != nil {
		return helper.JsonDBError(c, "Failed to create emergency_onboarding table", err)
	}
	return c.JSON(fiber.Map{"message": "Emergency onboarding table created successfully or already exists"})
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
