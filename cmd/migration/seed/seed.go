package seed

import (
	"time"

	"clubmanager/config"
	"clubmanager/internal/logger"
	. "clubmanager/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads a small club for local development. It does nothing when a
// head office already exists.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	var existing Location
	if err := db.First(&existing, "type = ?", LocationHead).Error; err == nil {
		log.Info("Head office already exists, skipping seed", "location", existing.Name)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		head := Location{Type: LocationHead, Name: "Montreal Head Office", City: "Montreal", Province: "QC", Capacity: IntPtr(200)}
		branch := Location{Type: LocationBranch, Name: "Laval Branch", City: "Laval", Province: "QC", Capacity: IntPtr(80)}
		for _, location := range []*Location{&head, &branch} {
			if err := tx.Create(location).Error; err != nil {
				return log.Err("failed to create location", err, "location", location.Name)
			}
		}

		var coachRole Role
		if err := tx.First(&coachRole, "name = ?", "Coach").Error; err != nil {
			log.Warn("Coach role missing, personnel seeded without a role")
		}

		coach := Personnel{
			FirstName:  "Carla",
			LastName:   "Coach",
			Identity:   Identity{SSN: "SEED-P-001", MedicareCard: "SEED-PM-001"},
			Contact:    Contact{Email: "carla.coach@example.com", City: "Montreal"},
			Mandate:    MandateSalaried,
			LocationID: &head.ID,
		}
		if coachRole.ID != 0 {
			coach.RoleID = &coachRole.ID
		}
		if err := tx.Create(&coach).Error; err != nil {
			return log.Err("failed to create personnel", err)
		}

		today := DateOf(time.Now())
		members := []ClubMember{
			{
				FirstName: "Ana", LastName: "Lima", DOB: NewDate(1998, time.April, 12),
				Height:   decimal.NewNullDecimal(decimal.RequireFromString("172.5")),
				Identity: Identity{SSN: "SEED-M-001", MedicareCard: "SEED-MM-001"},
				Contact:  Contact{Email: "ana.lima@example.com"},
				Gender:   GenderFemale, Status: StatusActive, JoinDate: today, LocationID: &head.ID,
			},
			{
				FirstName: "Bea", LastName: "Roy", DOB: NewDate(2010, time.September, 3),
				Identity: Identity{SSN: "SEED-M-002", MedicareCard: "SEED-MM-002"},
				Contact:  Contact{Email: "bea.roy@example.com"},
				Gender:   GenderFemale, Status: StatusActive, JoinDate: today, LocationID: &head.ID,
			},
			{
				FirstName: "Cole", LastName: "Tran", DOB: NewDate(2001, time.January, 20),
				Identity: Identity{SSN: "SEED-M-003", MedicareCard: "SEED-MM-003"},
				Contact:  Contact{Email: "cole.tran@example.com"},
				Gender:   GenderMale, Status: StatusActive, JoinDate: today, LocationID: &branch.ID,
			},
		}
		for i := range members {
			if err := tx.Create(&members[i]).Error; err != nil {
				return log.Err("failed to create member", err, "member", members[i].FullName())
			}
		}

		team := TeamFormation{
			TeamName:    "Head Office Women",
			HeadCoachID: &coach.ID,
			LocationID:  &head.ID,
			StartDate:   today,
			Gender:      GenderFemale,
		}
		if err := tx.Create(&team).Error; err != nil {
			return log.Err("failed to create team", err)
		}

		roster := []TeamMember{
			{TeamID: team.ID, MemberID: members[0].ID, Role: RoleSetter},
			{TeamID: team.ID, MemberID: members[1].ID, Role: RoleLibero},
		}
		if err := tx.Create(&roster).Error; err != nil {
			return log.Err("failed to create roster", err)
		}

		log.Info("Seed complete", "environment", config.Environment, "members", len(members))
		return nil
	})
}
