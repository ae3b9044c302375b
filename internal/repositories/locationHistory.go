package repositories

import (
	. "clubmanager/internal/models"

	"gorm.io/gorm"
)

type historyTable struct {
	table       string
	ownerColumn string
}

var (
	personnelHistory = historyTable{table: "personnel_location_history", ownerColumn: "personnel_id"}
	memberHistory    = historyTable{table: "club_member_location_history", ownerColumn: "member_id"}
)

// moveLocation closes the owner's open stint and opens a new one at
// locationID. A nil locationID only closes the open stint.
func (h historyTable) moveLocation(db *gorm.DB, ownerID int, locationID *int, on Date) error {
	err := db.Table(h.table).
		Where(h.ownerColumn+" = ? AND end_date IS NULL", ownerID).
		Update("end_date", on).Error
	if err != nil {
		return err
	}

	if locationID == nil {
		return nil
	}

	return db.Table(h.table).Create(map[string]any{
		h.ownerColumn:  ownerID,
		"location_id": *locationID,
		"start_date":  on,
	}).Error
}

func (h historyTable) list(db *gorm.DB, ownerID int) ([]LocationHistory, error) {
	var history []LocationHistory
	err := db.Table(h.table+" AS h").
		Select("h.id, h.location_id, locations.name AS location_name, h.start_date, h.end_date").
		Joins("JOIN locations ON locations.id = h.location_id").
		Where("h."+h.ownerColumn+" = ?", ownerID).
		Order("h.start_date DESC, h.id DESC").
		Scan(&history).Error
	return history, err
}
