package models

// Identity holds the government identifiers that must be unique per
// entity kind (club members, personnel, family members).
type Identity struct {
	SSN          string `gorm:"column:ssn;type:varchar(20);not null;uniqueIndex"           json:"ssn"`
	MedicareCard string `gorm:"column:medicare_card;type:varchar(20);not null;uniqueIndex" json:"medicareCard"`
}

func (i Identity) GetSSN() string          { return i.SSN }
func (i Identity) GetMedicareCard() string { return i.MedicareCard }

type Contact struct {
	Phone      string `gorm:"type:varchar(20)"  json:"phone"`
	Address    string `gorm:"type:varchar(255)" json:"address"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	Province   string `gorm:"type:varchar(50)"  json:"province"`
	PostalCode string `gorm:"type:varchar(20)"  json:"postalCode"`
	Email      string `gorm:"type:varchar(100)" json:"email"`
}

type IdentityRequest struct {
	SSN          string `json:"ssn"          validate:"required,max=20"`
	MedicareCard string `json:"medicareCard" validate:"required,max=20"`
}

func (r IdentityRequest) Identity() Identity {
	return Identity{SSN: r.SSN, MedicareCard: r.MedicareCard}
}

type ContactRequest struct {
	Phone      string `json:"phone"      validate:"omitempty,max=20"`
	Address    string `json:"address"    validate:"omitempty,max=255"`
	City       string `json:"city"       validate:"omitempty,max=100"`
	Province   string `json:"province"   validate:"omitempty,max=50"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=20"`
	Email      string `json:"email"      validate:"omitempty,email,max=100"`
}

func (r ContactRequest) Contact() Contact {
	return Contact(r)
}

func contactRequest(c Contact) ContactRequest {
	return ContactRequest(c)
}

// LocationHistory is one stint of a person at a location.
type LocationHistory struct {
	ID           int    `json:"id"`
	LocationID   int    `json:"locationId"`
	LocationName string `json:"locationName"`
	StartDate    Date   `json:"startDate"`
	EndDate      *Date  `json:"endDate"`
}
