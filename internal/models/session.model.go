package models

type Session struct {
	BaseModel
	Team1ID     int         `gorm:"column:team1_id;type:int;not null"    json:"team1Id"`
	Team2ID     *int        `gorm:"column:team2_id;type:int"             json:"team2Id"`
	LocationID  *int        `gorm:"type:int"                             json:"locationId"`
	SessionDate Date        `gorm:"type:date;not null"                   json:"sessionDate"`
	StartTime   ClockTime   `gorm:"type:time;not null"                   json:"startTime"`
	SessionType SessionType `gorm:"type:varchar(10);not null"            json:"sessionType"`
	Address     string      `gorm:"type:varchar(255)"                    json:"address"`
	ScoreTeam1  *int        `gorm:"column:score_team1;type:int"          json:"scoreTeam1"`
	ScoreTeam2  *int        `gorm:"column:score_team2;type:int"          json:"scoreTeam2"`
}

func (Session) TableName() string { return "sessions" }

// TeamIDs lists the distinct teams taking part, team1 first.
func (s Session) TeamIDs() []int {
	ids := []int{s.Team1ID}
	if s.Team2ID != nil && *s.Team2ID != s.Team1ID {
		ids = append(ids, *s.Team2ID)
	}
	return ids
}

type SessionRequest struct {
	Team1ID     int         `json:"team1Id"     validate:"required,gt=0"`
	Team2ID     *int        `json:"team2Id"     validate:"omitempty,gt=0"`
	LocationID  *int        `json:"locationId"  validate:"omitempty,gt=0"`
	SessionDate Date        `json:"sessionDate" validate:"required"`
	StartTime   ClockTime   `json:"startTime"   validate:"required"`
	SessionType SessionType `json:"sessionType" validate:"required,oneof=Training Game"`
	Address     string      `json:"address"     validate:"omitempty,max=255"`
	ScoreTeam1  *int        `json:"scoreTeam1"  validate:"omitempty,min=0"`
	ScoreTeam2  *int        `json:"scoreTeam2"  validate:"omitempty,min=0"`
}

func NewSessionRequest(s Session) SessionRequest {
	return SessionRequest{
		Team1ID:     s.Team1ID,
		Team2ID:     s.Team2ID,
		LocationID:  s.LocationID,
		SessionDate: s.SessionDate,
		StartTime:   s.StartTime,
		SessionType: s.SessionType,
		Address:     s.Address,
		ScoreTeam1:  s.ScoreTeam1,
		ScoreTeam2:  s.ScoreTeam2,
	}
}

func (r SessionRequest) Apply(s *Session) {
	s.Team1ID = r.Team1ID
	s.Team2ID = r.Team2ID
	s.LocationID = r.LocationID
	s.SessionDate = r.SessionDate
	s.StartTime = r.StartTime
	s.SessionType = r.SessionType
	s.Address = r.Address
	s.ScoreTeam1 = r.ScoreTeam1
	s.ScoreTeam2 = r.ScoreTeam2
}

type SessionView struct {
	Session
	Team1Name    *string `json:"team1Name"`
	Team2Name    *string `json:"team2Name"`
	LocationName *string `json:"locationName"`
}
