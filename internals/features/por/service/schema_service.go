package service

import (
	"log"

	"gorm.io/gorm"

	"chwc_backend/internals/features/por/model"
)

// EnsureTable creates por_uploads when absent. Idempotent; failures are
// logged and surface later as query errors, never as a startup abort.
func EnsureTable(db *gorm.DB) {
	m := db.Migrator()
	if m.HasTable(&model.PORUploadModel{}) {
		return
	}
	if err := m.CreateTable(&model.PORUploadModel{}); err != nil {
		log.Println("[ERROR] ensure por_uploads table:", err)
	}
}

// EnsureApprovalColumns adds approval_status / approved_at when an older
// deployment created por_uploads without them. Alterations run sequentially;
// parallel DDL against the same table conflicts on MySQL.
func EnsureApprovalColumns(db *gorm.DB) {
	m := db.Migrator()
	if !m.HasTable(&model.PORUploadModel{}) {
		return
	}
	for _, col := range []string{"ApprovalStatus", "ApprovedAt"} {
		if m.HasColumn(&model.PORUploadModel{}, col) {
			continue
		}
		if err := m.AddColumn(&model.PORUploadModel{}, col); err != nil {
			log.Println("[ERROR] ensure por approval column:", col, err)
		}
	}
}

// EnsureSchema is the startup hook: table first, then the approval columns.
func EnsureSchema(db *gorm.DB) {
	EnsureTable(db)
	EnsureApprovalColumns(db)
}
