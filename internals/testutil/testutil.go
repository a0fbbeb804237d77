package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	appointmentModel "chwc_backend/internals/features/appointments/model"
	emergencyModel "chwc_backend/internals/features/emergencies/model"
	onboardingModel "chwc_backend/internals/features/onboarding/model"
	porModel "chwc_backend/internals/features/por/model"
	scheduleModel "chwc_backend/internals/features/schedules/model"
	authModel "chwc_backend/internals/features/users/auth/model"
)

// DB opens a fresh in-memory sqlite store with every table migrated. One
// connection only: a second connection would see a different :memory: DB.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&authModel.RoleModel{},
		&authModel.UserModel{},
		&authModel.StudentModel{},
		&onboardingModel.OnboardingStudentModel{},
		&porModel.PORUploadModel{},
		&appointmentModel.AppointmentModel{},
		&scheduleModel.StaffScheduleModel{},
		&emergencyModel.EmergencyReportModel{},
	); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}

	return db
}
