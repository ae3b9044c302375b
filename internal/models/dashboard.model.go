package models

import "time"

type DashboardStats struct {
	TotalLocations   int64 `json:"totalLocations"`
	ActiveMembers    int64 `json:"activeMembers"`
	ActiveTeams      int64 `json:"activeTeams"`
	UpcomingSessions int64 `json:"upcomingSessions"`
}

// Activity is a recent registration shown on the dashboard.
type Activity struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	JoinDate     Date      `json:"joinDate"`
	LocationName *string   `json:"locationName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ActivityEvent is broadcast to live clients after a committed write.
type ActivityEvent struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	EntityID   int       `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Entity names used for cache keys and activity events.
const (
	EntityLocation  = "location"
	EntityRole      = "role"
	EntityHobby     = "hobby"
	EntityPersonnel = "personnel"
	EntityMember    = "member"
	EntityFamily    = "family"
	EntitySecondary = "secondary"
	EntityTeam      = "team"
	EntitySession   = "session"
	EntityPayment   = "payment"
)
