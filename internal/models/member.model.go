package models

import "github.com/shopspring/decimal"

type ClubMember struct {
	BaseModel
	FirstName string              `gorm:"type:varchar(50)"            json:"firstName"`
	LastName  string              `gorm:"type:varchar(50)"            json:"lastName"`
	DOB       Date                `gorm:"column:dob;type:date;not null" json:"dob"`
	Height    decimal.NullDecimal `gorm:"type:numeric(5,2)"           json:"height"`
	Weight    decimal.NullDecimal `gorm:"type:numeric(5,2)"           json:"weight"`
	Identity
	Contact
	Gender     Gender       `gorm:"type:varchar(10);not null"                json:"gender"`
	Status     MemberStatus `gorm:"type:varchar(10);not null;default:Active" json:"status"`
	JoinDate   Date         `gorm:"type:date"                                json:"joinDate"`
	LocationID *int         `gorm:"type:int"                                 json:"locationId"`
}

func (ClubMember) TableName() string { return "club_members" }

func (m ClubMember) FullName() string {
	return m.FirstName + " " + m.LastName
}

type MemberRequest struct {
	FirstName string              `json:"firstName" validate:"required,max=50"`
	LastName  string              `json:"lastName"  validate:"required,max=50"`
	DOB       Date                `json:"dob"       validate:"required"`
	Height    decimal.NullDecimal `json:"height"`
	Weight    decimal.NullDecimal `json:"weight"`
	IdentityRequest
	ContactRequest
	Gender     Gender       `json:"gender"     validate:"required,oneof=Male Female"`
	Status     MemberStatus `json:"status"     validate:"omitempty,oneof=Active Inactive"`
	JoinDate   Date         `json:"joinDate"`
	LocationID *int         `json:"locationId" validate:"omitempty,gt=0"`
	HobbyIDs   []int        `json:"hobbyIds"   validate:"omitempty,dive,gt=0"`
}

func NewMemberRequest(m ClubMember) MemberRequest {
	return MemberRequest{
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		DOB:             m.DOB,
		Height:          m.Height,
		Weight:          m.Weight,
		IdentityRequest: IdentityRequest{SSN: m.SSN, MedicareCard: m.MedicareCard},
		ContactRequest:  contactRequest(m.Contact),
		Gender:          m.Gender,
		Status:          m.Status,
		JoinDate:        m.JoinDate,
		LocationID:      m.LocationID,
	}
}

// Apply copies the request onto m. Status and join date keep their
// defaults when the request leaves them empty.
func (r MemberRequest) Apply(m *ClubMember) {
	m.FirstName = r.FirstName
	m.LastName = r.LastName
	m.DOB = r.DOB
	m.Height = r.Height
	m.Weight = r.Weight
	m.Identity = r.Identity()
	m.Contact = r.Contact()
	m.Gender = r.Gender
	m.LocationID = r.LocationID

	if r.Status != "" {
		m.Status = r.Status
	} else if m.Status == "" {
		m.Status = StatusActive
	}

	if !r.JoinDate.IsZero() {
		m.JoinDate = r.JoinDate
	}
}

type MemberView struct {
	ClubMember
	LocationName *string     `json:"locationName"`
	Age          int         `gorm:"-" json:"age"`
	Category     AgeCategory `gorm:"-" json:"category"`
	Hobbies      []Hobby     `gorm:"-" json:"hobbies"`
}

type MemberHobby struct {
	MemberID int `gorm:"primaryKey;autoIncrement:false" json:"memberId"`
	HobbyID  int `gorm:"primaryKey;autoIncrement:false" json:"hobbyId"`
}

func (MemberHobby) TableName() string { return "member_hobbies" }

// Availability answers whether a member is free for a session slot.
type Availability struct {
	MemberID  int       `json:"memberId"`
	Date      Date      `json:"date"`
	StartTime ClockTime `json:"startTime"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
}
