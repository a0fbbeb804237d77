package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chwc_backend/internals/features/users/auth/model"
)

// SeedDefaultRoles inserts the role rows the login join depends on. Existing
// rows are left untouched, so this is safe to run on every startup.
func SeedDefaultRoles(db *gorm.DB) {
	m := db.Migrator()
	if !m.HasTable(&model.RoleModel{}) {
		if err := m.CreateTable(&model.RoleModel{}); err != nil {
			log.Println("[ERROR] creating roles table:", err)
			return
		}
	}

	roles := []model.RoleModel{
		{ID: 1, RoleName: "student"},
		{ID: 2, RoleName: "staff"},
		{ID: 3, RoleName: "admin"},
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
	if err != nil {
		log.Println("[ERROR] seeding roles:", err)
	}
}
