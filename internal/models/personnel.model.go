package models

type Personnel struct {
	BaseModel
	FirstName string `gorm:"type:varchar(50)"           json:"firstName"`
	LastName  string `gorm:"type:varchar(50)"           json:"lastName"`
	DOB       *Date  `gorm:"column:dob;type:date"       json:"dob"`
	Identity
	Contact
	RoleID     *int    `gorm:"type:int"                  json:"roleId"`
	Mandate    Mandate `gorm:"type:varchar(10);not null" json:"mandate"`
	LocationID *int    `gorm:"type:int"                  json:"locationId"`
}

func (Personnel) TableName() string { return "personnel" }

func (p Personnel) FullName() string {
	return p.FirstName + " " + p.LastName
}

type PersonnelRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName"  validate:"required,max=50"`
	DOB       *Date  `json:"dob"`
	IdentityRequest
	ContactRequest
	RoleID     *int    `json:"roleId"     validate:"omitempty,gt=0"`
	Mandate    Mandate `json:"mandate"    validate:"required,oneof=Salaried Volunteer"`
	LocationID *int    `json:"locationId" validate:"omitempty,gt=0"`
}

func NewPersonnelRequest(p Personnel) PersonnelRequest {
	return PersonnelRequest{
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		DOB:             p.DOB,
		IdentityRequest: IdentityRequest{SSN: p.SSN, MedicareCard: p.MedicareCard},
		ContactRequest:  contactRequest(p.Contact),
		RoleID:          p.RoleID,
		Mandate:         p.Mandate,
		LocationID:      p.LocationID,
	}
}

func (r PersonnelRequest) Apply(p *Personnel) {
	p.FirstName = r.FirstName
	p.LastName = r.LastName
	p.DOB = r.DOB
	if p.DOB != nil && p.DOB.IsZero() {
		p.DOB = nil
	}
	p.Identity = r.Identity()
	p.Contact = r.Contact()
	p.RoleID = r.RoleID
	p.Mandate = r.Mandate
	p.LocationID = r.LocationID
}

type PersonnelView struct {
	Personnel
	RoleName     *string `json:"roleName"`
	LocationName *string `json:"locationName"`
}
