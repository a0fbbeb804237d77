package testutil

import (
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	appointmentModel "chwc_backend/internals/features/appointments/model"
	emergencyModel "chwc_backend/internals/features/emergencies/model"
	porModel "chwc_backend/internals/features/por/model"
	authHelper "chwc_backend/internals/features/users/auth/helper"
	authModel "chwc_backend/internals/features/users/auth/model"
)

func SeedRoles(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	roles := []authModel.RoleModel{
		{ID: 1, RoleName: "student"},
		{ID: 2, RoleName: "staff"},
		{ID: 3, RoleName: "admin"},
	}
	if err := db.Create(&roles).Error; err != nil {
		tb.Fatalf("seed roles: %v", err)
	}
}

func SeedStudent(tb testing.TB, db *gorm.DB, studentNumber, password string) *authModel.StudentModel {
	tb.Helper()
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	s := &authModel.StudentModel{
		Username:      studentNumber,
		Email:         studentNumber + "@students.example.ac.za",
		Password:      hash,
		StudentNumber: studentNumber,
		FullName:      "Test Student",
		RoleID:        1,
		IsActive:      true,
	}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedStaff(tb testing.TB, db *gorm.DB, staffNumber, password string) *authModel.UserModel {
	tb.Helper()
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	u := &authModel.UserModel{
		Username:    staffNumber,
		Email:       staffNumber + "@clinic.example.ac.za",
		Password:    hash,
		StaffNumber: staffNumber,
		FullName:    "Test Sister",
		RoleID:      2,
		IsActive:    true,
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed staff: %v", err)
	}
	return u
}

func SeedAppointment(tb testing.TB, db *gorm.DB, studentNumber, date string) *appointmentModel.AppointmentModel {
	tb.Helper()
	a := &appointmentModel.AppointmentModel{
		ReferenceNumber: "REF-" + studentNumber,
		StudentNumber:   studentNumber,
		AppointmentType: "consultation",
		AppointmentFor:  "General checkup",
		AppointmentTime: "09:00",
		Status:          appointmentModel.StatusScheduled,
	}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			tb.Fatalf("seed appointment date: %v", err)
		}
		d := datatypes.Date(t)
		a.AppointmentDate = &d
	}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed appointment: %v", err)
	}
	return a
}

func SeedPORUpload(tb testing.TB, db *gorm.DB, studentNumber, status string) *porModel.PORUploadModel {
	tb.Helper()
	path := "/tmp/" + studentNumber + ".pdf"
	size := int64(1024)
	mime := "application/pdf"
	p := &porModel.PORUploadModel{
		StudentNumber:  studentNumber,
		FileName:       studentNumber + ".pdf",
		FilePath:       &path,
		FileSize:       &size,
		Mimetype:       &mime,
		UploadedAt:     time.Now(),
		ApprovalStatus: status,
	}
	if status == porModel.StatusApproved {
		now := time.Now()
		p.ApprovedAt = &now
	}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed por upload: %v", err)
	}
	return p
}

// SeedEmergency inserts a minimal valid incident dated as given.
func SeedEmergency(tb testing.TB, db *gorm.DB, date string) *emergencyModel.EmergencyReportModel {
	tb.Helper()
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		tb.Fatalf("seed emergency date: %v", err)
	}
	e := &emergencyModel.EmergencyReportModel{
		Date:              datatypes.Date(t),
		TimeOfCall:        "10:15",
		PersonResponsible: "Sr. Dlamini",
		CallerName:        "Security",
		Department:        "Protection Services",
		ContactNumber:     "0111234567",
		ProblemNature:     "Collapsed in lecture hall",

		StaffInformed:    "Sr. Dlamini",
		NotificationTime: "10:16",
		TeamResponding:   "Clinic team A",
		TimeLeftClinic:   "10:20",
		ArrivalTime:      "10:28",

		StudentNumber:  "2441001",
		PatientName:    "Thandi",
		PatientSurname: "Mokoena",

		PrimaryAssessment: "Responsive, low blood pressure",
		Intervention:      "Vitals monitored, glucose given",

		MedicalConsent:   emergencyModel.ConsentGive,
		TransportConsent: emergencyModel.TransportConsent,
		Signature:        "T. Mokoena",
		ConsentDate:      datatypes.Date(t),

		PatientTransportedTo: "Campus clinic",
		DepartureTime:        "10:40",

		ChwcArrivalTime:    "10:55",
		ExistingFile:       "yes",
		Referred:           "no",
		DischargeCondition: "Stable, escorted home",
		DischargeTime:      "12:30",
	}
	if err := db.Create(e).Error; err != nil {
		tb.Fatalf("seed emergency: %v", err)
	}
	return e
}
