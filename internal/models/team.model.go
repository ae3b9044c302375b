package models

import "time"

type TeamFormation struct {
	BaseModel
	TeamName    string `gorm:"type:varchar(100);not null" json:"teamName"`
	HeadCoachID *int   `gorm:"type:int"                   json:"headCoachId"`
	LocationID  *int   `gorm:"type:int"                   json:"locationId"`
	StartDate   Date   `gorm:"type:date;not null"         json:"startDate"`
	EndDate     *Date  `gorm:"type:date"                  json:"endDate"`
	Gender      Gender `gorm:"type:varchar(10);not null"  json:"gender"`
}

func (TeamFormation) TableName() string { return "team_formations" }

// Active reports whether the team is still running on the given day.
func (t TeamFormation) Active(on Date) bool {
	if t.StartDate.After(on) {
		return false
	}
	return t.EndDate == nil || t.EndDate.IsZero() || !t.EndDate.Before(on)
}

type TeamRequest struct {
	TeamName    string `json:"teamName"    validate:"required,max=100"`
	HeadCoachID *int   `json:"headCoachId" validate:"omitempty,gt=0"`
	LocationID  *int   `json:"locationId"  validate:"omitempty,gt=0"`
	StartDate   Date   `json:"startDate"   validate:"required"`
	EndDate     *Date  `json:"endDate"`
	Gender      Gender `json:"gender"      validate:"required,oneof=Male Female"`
}

func NewTeamRequest(t TeamFormation) TeamRequest {
	return TeamRequest{
		TeamName:    t.TeamName,
		HeadCoachID: t.HeadCoachID,
		LocationID:  t.LocationID,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Gender:      t.Gender,
	}
}

func (r TeamRequest) Apply(t *TeamFormation) {
	t.TeamName = r.TeamName
	t.HeadCoachID = r.HeadCoachID
	t.LocationID = r.LocationID
	t.StartDate = r.StartDate
	t.EndDate = r.EndDate
	if t.EndDate != nil && t.EndDate.IsZero() {
		t.EndDate = nil
	}
	t.Gender = r.Gender
}

type TeamMember struct {
	TeamID    int        `gorm:"primaryKey;autoIncrement:false" json:"teamId"`
	MemberID  int        `gorm:"primaryKey;autoIncrement:false" json:"memberId"`
	Role      PlayerRole `gorm:"type:varchar(30);not null"      json:"role"`
	CreatedAt time.Time  `gorm:"autoCreateTime"                 json:"createdAt"`
}

func (TeamMember) TableName() string { return "team_members" }

type TeamMemberRequest struct {
	MemberID int        `json:"memberId" validate:"required,gt=0"`
	Role     PlayerRole `json:"role"     validate:"required,oneof=Setter Outside_Hitter Opposite_Hitter Middle_Blocker Defensive_Specialist Libero"`
}

type RosterEntry struct {
	MemberID  int        `json:"memberId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Gender    Gender     `json:"gender"`
	Email     string     `json:"email"`
	Role      PlayerRole `json:"role"`
}

type TeamView struct {
	TeamFormation
	HeadCoachName *string       `json:"headCoachName"`
	LocationName  *string       `json:"locationName"`
	Members       []RosterEntry `gorm:"-" json:"members"`
}
