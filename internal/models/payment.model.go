package models

import "github.com/shopspring/decimal"

type Payment struct {
	BaseModel
	MemberID       int             `gorm:"type:int;not null"           json:"memberId"`
	PaymentDate    Date            `gorm:"type:date;not null"          json:"paymentDate"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method         PaymentMethod   `gorm:"type:varchar(10);not null"   json:"method"`
	MembershipYear int             `gorm:"type:int;not null"           json:"membershipYear"`
	IsDonation     bool            `gorm:"not null;default:false"      json:"isDonation"`
}

func (Payment) TableName() string { return "payments" }

type PaymentRequest struct {
	MemberID       int             `json:"memberId"       validate:"required,gt=0"`
	PaymentDate    Date            `json:"paymentDate"    validate:"required"`
	Amount         decimal.Decimal `json:"amount"         validate:"required,gt=0"`
	Method         PaymentMethod   `json:"method"         validate:"required,oneof=Cash Credit Debit"`
	MembershipYear int             `json:"membershipYear" validate:"required,gte=1900,lte=2200"`
	IsDonation     bool            `json:"isDonation"`
}

// PaymentReceipt is what a payment request turned into: at most one
// installment and at most one donation.
type PaymentReceipt struct {
	Payments    []Payment       `json:"payments"`
	Installment *Payment        `json:"installment"`
	Donation    *Payment        `json:"donation"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type PaymentView struct {
	Payment
	MemberFirstName string `json:"memberFirstName"`
	MemberLastName  string `json:"memberLastName"`
}

// FeeSummary is the state of a member's membership fee for one year.
type FeeSummary struct {
	MemberID         int             `json:"memberId"`
	MembershipYear   int             `json:"membershipYear"`
	Category         AgeCategory     `json:"category"`
	RequiredFee      decimal.Decimal `json:"requiredFee"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	Recommended      decimal.Decimal `json:"recommended"`
	Donations        decimal.Decimal `json:"donations"`
	Installments     int             `json:"installments"`
	InstallmentsLeft int             `json:"installmentsLeft"`
}
