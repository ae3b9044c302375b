package models

import (
	"time"
)

type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updatedAt"`
}

func (b BaseModel) GetID() int {
	return b.ID
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type MemberStatus string

const (
	StatusActive   MemberStatus = "Active"
	StatusInactive MemberStatus = "Inactive"
)

type Mandate string

const (
	MandateSalaried  Mandate = "Salaried"
	MandateVolunteer Mandate = "Volunteer"
)

type LocationType string

const (
	LocationHead   LocationType = "Head"
	LocationBranch LocationType = "Branch"
)

type Relationship string

const (
	RelationshipFather      Relationship = "Father"
	RelationshipMother      Relationship = "Mother"
	RelationshipGrandfather Relationship = "Grandfather"
	RelationshipGrandmother Relationship = "Grandmother"
	RelationshipTutor       Relationship = "Tutor"
	RelationshipPartner     Relationship = "Partner"
	RelationshipFriend      Relationship = "Friend"
	RelationshipOther       Relationship = "Other"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCredit PaymentMethod = "Credit"
	PaymentDebit  PaymentMethod = "Debit"
)

type SessionType string

const (
	SessionTraining SessionType = "Training"
	SessionGame     SessionType = "Game"
)

type PlayerRole string

const (
	RoleSetter              PlayerRole = "Setter"
	RoleOutsideHitter       PlayerRole = "Outside_Hitter"
	RoleOppositeHitter      PlayerRole = "Opposite_Hitter"
	RoleMiddleBlocker       PlayerRole = "Middle_Blocker"
	RoleDefensiveSpecialist PlayerRole = "Defensive_Specialist"
	RoleLibero              PlayerRole = "Libero"
)

// AgeCategory decides the yearly membership fee.
type AgeCategory string

const (
	CategoryMinor AgeCategory = "Minor"
	CategoryMajor AgeCategory = "Major"
)

func IntPtr(i int) *int {
	return &i
}

func StringPtr(s string) *string {
	return &s
}
