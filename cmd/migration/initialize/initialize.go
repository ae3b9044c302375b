package initialize

import (
	"clubmanager/config"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var roles = []string{
	"Administrator",
	"Assistant Coach",
	"Captain",
	"Coach",
	"Deputy Manager",
	"General Manager",
	"Secretary",
	"Treasurer",
	"Other",
}

var hobbies = []string{
	"Golf",
	"Hockey",
	"Ping Pong",
	"Soccer",
	"Swimming",
	"Tennis",
	"Volleyball",
}

// InitializeTables inserts the reference data every environment needs.
// Rows that already exist are left alone.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data", "environment", config.Environment)

	for _, name := range roles {
		role := Role{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return log.Err("failed to insert role", err, "role", name)
		}
	}

	for _, name := range hobbies {
		hobby := Hobby{Name: name}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&hobby).Error; err != nil {
			return log.Err("failed to insert hobby", err, "hobby", name)
		}
	}

	log.Info("Table initialization complete", "roles", len(roles), "hobbies", len(hobbies))
	return nil
}
