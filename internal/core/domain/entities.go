package domain

import "time"

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserRole is one currently effective club role of a user, flattened across
// the administrator, event crew and club family record kinds.
type UserRole struct {
	RoleKind    string    `json:"role_kind"` // ADMINISTRATOR | EVENT_CREW | CLUB_FAMILY
	Role        string    `json:"role"`
	YearSession string    `json:"year_session"`
	EventID     uint      `json:"event_id,omitempty"`
	EventName   string    `json:"event_name,omitempty"`
	ClubFamily  string    `json:"club_family,omitempty"`
	AssignedAt  time.Time `json:"assigned_at"`
}

// Role kinds for UserRole
const (
	RoleKindAdministrator = "ADMINISTRATOR"
	RoleKindEventCrew     = "EVENT_CREW"
	RoleKindClubFamily    = "CLUB_FAMILY"
)
