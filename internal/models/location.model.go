package models

import "time"

type Location struct {
	BaseModel
	Type       LocationType `gorm:"type:varchar(10);not null"  json:"type"`
	Name       string       `gorm:"type:varchar(100);not null" json:"name"`
	Address    string       `gorm:"type:varchar(255)"          json:"address"`
	City       string       `gorm:"type:varchar(100)"          json:"city"`
	Province   string       `gorm:"type:varchar(50)"           json:"province"`
	PostalCode string       `gorm:"type:varchar(20)"           json:"postalCode"`
	Phone      string       `gorm:"type:varchar(20)"           json:"phone"`
	WebAddress string       `gorm:"type:varchar(100)"          json:"webAddress"`
	Capacity   *int         `gorm:"type:int"                   json:"capacity"`
}

func (Location) TableName() string { return "locations" }

type LocationRequest struct {
	Type       LocationType `json:"type"       validate:"required,oneof=Head Branch"`
	Name       string       `json:"name"       validate:"required,max=100"`
	Address    string       `json:"address"    validate:"omitempty,max=255"`
	City       string       `json:"city"       validate:"omitempty,max=100"`
	Province   string       `json:"province"   validate:"omitempty,max=50"`
	PostalCode string       `json:"postalCode" validate:"omitempty,max=20"`
	Phone      string       `json:"phone"      validate:"omitempty,max=20"`
	WebAddress string       `json:"webAddress" validate:"omitempty,max=100"`
	Capacity   *int         `json:"capacity"   validate:"omitempty,min=0"`
}

func NewLocationRequest(l Location) LocationRequest {
	return LocationRequest{
		Type:       l.Type,
		Name:       l.Name,
		Address:    l.Address,
		City:       l.City,
		Province:   l.Province,
		PostalCode: l.PostalCode,
		Phone:      l.Phone,
		WebAddress: l.WebAddress,
		Capacity:   l.Capacity,
	}
}

func (r LocationRequest) Apply(l *Location) {
	l.Type = r.Type
	l.Name = r.Name
	l.Address = r.Address
	l.City = r.City
	l.Province = r.Province
	l.PostalCode = r.PostalCode
	l.Phone = r.Phone
	l.WebAddress = r.WebAddress
	l.Capacity = r.Capacity
}

type Role struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
}

func (Role) TableName() string { return "roles" }

type Hobby struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

func (Hobby) TableName() string { return "hobbies" }

type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type EmailLog struct {
	BaseModel
	EmailDate        time.Time `gorm:"not null"          json:"emailDate"`
	SenderLocationID *int      `gorm:"type:int"          json:"senderLocationId"`
	ReceiverEmail    string    `gorm:"type:varchar(100)" json:"receiverEmail"`
	Subject          string    `gorm:"type:varchar(255)" json:"subject"`
	BodySnippet      string    `gorm:"type:varchar(100)" json:"bodySnippet"`
}

func (EmailLog) TableName() string { return "email_logs" }

type EmailLogView struct {
	EmailLog
	SenderLocationName *string       `json:"senderLocationName"`
	SenderLocationType *LocationType `json:"senderLocationType"`
}
