package models

// FamilyMember is a primary family contact, usually a parent or guardian
// of one or more club members.
type FamilyMember struct {
	BaseModel
	FirstName string `gorm:"type:varchar(50)"     json:"firstName"`
	LastName  string `gorm:"type:varchar(50)"     json:"lastName"`
	DOB       *Date  `gorm:"column:dob;type:date" json:"dob"`
	Identity
	Contact
	LocationID *int `gorm:"type:int" json:"locationId"`
}

func (FamilyMember) TableName() string { return "family_members" }

type FamilyMemberRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName"  validate:"required,max=50"`
	DOB       *Date  `json:"dob"`
	IdentityRequest
	ContactRequest
	LocationID *int `json:"locationId" validate:"omitempty,gt=0"`
}

func NewFamilyMemberRequest(f FamilyMember) FamilyMemberRequest {
	return FamilyMemberRequest{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		DOB:             f.DOB,
		IdentityRequest: IdentityRequest{SSN: f.SSN, MedicareCard: f.MedicareCard},
		ContactRequest:  contactRequest(f.Contact),
		LocationID:      f.LocationID,
	}
}

func (r FamilyMemberRequest) Apply(f *FamilyMember) {
	f.FirstName = r.FirstName
	f.LastName = r.LastName
	f.DOB = r.DOB
	if f.DOB != nil && f.DOB.IsZero() {
		f.DOB = nil
	}
	f.Identity = r.Identity()
	f.Contact = r.Contact()
	f.LocationID = r.LocationID
}

type SecondaryFamilyMember struct {
	BaseModel
	PrimaryFamilyID int          `gorm:"type:int;not null"         json:"primaryFamilyId"`
	FirstName       string       `gorm:"type:varchar(50)"          json:"firstName"`
	LastName        string       `gorm:"type:varchar(50)"          json:"lastName"`
	Phone           string       `gorm:"type:varchar(20)"          json:"phone"`
	Relationship    Relationship `gorm:"type:varchar(20);not null" json:"relationship"`
}

func (SecondaryFamilyMember) TableName() string { return "secondary_family_members" }

type SecondaryFamilyMemberRequest struct {
	FirstName    string       `json:"firstName"    validate:"required,max=50"`
	LastName     string       `json:"lastName"     validate:"required,max=50"`
	Phone        string       `json:"phone"        validate:"omitempty,max=20"`
	Relationship Relationship `json:"relationship" validate:"required,relationship"`
}

func NewSecondaryFamilyMemberRequest(s SecondaryFamilyMember) SecondaryFamilyMemberRequest {
	return SecondaryFamilyMemberRequest{
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Phone:        s.Phone,
		Relationship: s.Relationship,
	}
}

func (r SecondaryFamilyMemberRequest) Apply(s *SecondaryFamilyMember) {
	s.FirstName = r.FirstName
	s.LastName = r.LastName
	s.Phone = r.Phone
	s.Relationship = r.Relationship
}

// FamilyMemberChild links a family member to a club member they are
// responsible for.
type FamilyMemberChild struct {
	FamilyID     int          `gorm:"primaryKey;autoIncrement:false" json:"familyId"`
	MemberID     int          `gorm:"primaryKey;autoIncrement:false" json:"memberId"`
	Relationship Relationship `gorm:"type:varchar(20);not null"      json:"relationship"`
}

func (FamilyMemberChild) TableName() string { return "family_member_children" }

type FamilyChildRequest struct {
	MemberID     int          `json:"memberId"     validate:"required,gt=0"`
	Relationship Relationship `json:"relationship" validate:"required,relationship"`
}

type FamilyChildView struct {
	MemberID     int          `json:"memberId"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Relationship Relationship `json:"relationship"`
}

type FamilyView struct {
	FamilyMember
	LocationName *string                 `json:"locationName"`
	Children     []FamilyChildView       `gorm:"-" json:"children"`
	Secondary    []SecondaryFamilyMember `gorm:"-" json:"secondary"`
}
