package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// System-wide coarse roles carried in the JWT
const (
	SystemRoleUser  = "USER"
	SystemRoleAdmin = "ADMIN"
)

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"size:50;not null" json:"first_name"`
	LastName  string         `gorm:"size:50" json:"last_name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'USER'" json:"role"`
	ImageURL  string         `gorm:"size:255" json:"image_url"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		ImageURL:  u.ImageURL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Event Tables
// ============================================================

// Event statuses
const (
	EventStatusOpen      = "OPEN"
	EventStatusPostponed = "POSTPONED"
	EventStatusCancelled = "CANCELLED"
	EventStatusClosed    = "CLOSED"
)

// Event represents events table
type Event struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"size:100;not null" json:"name"`
	Description       string         `gorm:"type:text" json:"description"`
	Remarks           string         `gorm:"type:text" json:"remarks"`
	Venue             string         `gorm:"size:255" json:"venue"`
	StartDate         time.Time      `gorm:"not null;index" json:"start_date"`
	EndDate           time.Time      `gorm:"not null;index" json:"end_date"`
	Fee               float64        `gorm:"type:decimal(15,2);default:0" json:"fee"`
	RequiredTransport bool           `gorm:"default:false" json:"required_transport"`
	Status            string         `gorm:"size:20;default:'OPEN';index" json:"status"`
	ImageURL          string         `gorm:"size:255" json:"image_url"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// IsEnded reports whether the event end date has passed
func (e *Event) IsEnded() bool {
	return e.EndDate.Before(time.Now())
}

// IsCancelled reports whether the event has been cancelled
func (e *Event) IsCancelled() bool {
	return e.Status == EventStatusCancelled
}

// Event crew roles
const (
	EventCrewRoleHead   = "HEAD"
	EventCrewRoleMember = "MEMBER"
)

// EventCrew represents event_crews table. A crew assignment has no stored
// year session; its temporal scope is the session of the event's start date.
type EventCrew struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"index:idx_event_crew_event_user;not null" json:"event_id"`
	UserID    uint      `gorm:"index:idx_event_crew_event_user;not null" json:"user_id"`
	Role      string    `gorm:"size:20;default:'MEMBER'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Event     Event     `gorm:"foreignKey:EventID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (EventCrew) TableName() string {
	return "event_crews"
}

// EventAttendee represents event_attendees table
type EventAttendee struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	EventID          uint      `gorm:"index:idx_event_attendee_event_user;not null" json:"event_id"`
	UserID           uint      `gorm:"index:idx_event_attendee_event_user;not null" json:"user_id"`
	ProvideTransport bool      `gorm:"default:false" json:"provide_transport"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EventAttendee) TableName() string {
	return "event_attendees"
}

// ============================================================
// Club Role Tables
// ============================================================

// Administrator roles
const (
	AdminRoleCCHead     = "CC_HEAD"
	AdminRoleViceCCHead = "VICE_CC_HEAD"
	AdminRoleSecretary  = "SECRETARY"
	AdminRoleTreasurer  = "TREASURER"
)

// Administrator statuses
const (
	AdminStatusActive     = "ACTIVE"
	AdminStatusDeactivate = "DEACTIVATE"
)

// Administrator represents administrators table; an administrator role is
// scoped to exactly one year session.
type Administrator struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Role        string    `gorm:"size:30;not null" json:"role"`
	YearSession string    `gorm:"size:9;not null;index" json:"year_session"`
	Status      string    `gorm:"size:20;default:'ACTIVE'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

func (Administrator) TableName() string {
	return "administrators"
}

// IsActive reports whether the administrator record is active
func (a *Administrator) IsActive() bool {
	return a.Status == AdminStatusActive
}

// ClubFamily represents club_families table
type ClubFamily struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slogan    string    `gorm:"size:255" json:"slogan"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClubFamily) TableName() string {
	return "club_families"
}

// Club family roles
const (
	FamilyRoleFather = "FATHER"
	FamilyRoleMother = "MOTHER"
	FamilyRoleChild  = "CHILD"
)

// UserCCInfo represents user_cc_infos table; one row assigns a user a club
// family role for one year session.
type UserCCInfo struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	ClubFamilyID uint       `gorm:"index" json:"club_family_id"`
	FamilyRole   string     `gorm:"size:20" json:"family_role"`
	YearSession  string     `gorm:"size:9;not null;index" json:"year_session"`
	IntakeSem    string     `gorm:"size:20" json:"intake_sem"`
	FishLevel    string     `gorm:"size:30" json:"fish_level"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ClubFamily   ClubFamily `gorm:"foreignKey:ClubFamilyID" json:"-"`
}

func (UserCCInfo) TableName() string {
	return "user_cc_infos"
}

// ============================================================
// Finance Tables
// ============================================================

// Transaction types (shared by budgets and transactions)
const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"
)

// Transaction statuses
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusInvalid   = "INVALID"
)

// Budget represents budgets table; budget lines carry no settlement status.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"index;not null" json:"event_id"`
	Name      string    `gorm:"size:100" json:"name"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type      string    `gorm:"size:20;not null;index" json:"type"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

// Transaction represents transactions table
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventID     uint      `gorm:"index;not null" json:"event_id"`
	ReceiptID   uint      `gorm:"index" json:"receipt_id"`
	Title       string    `gorm:"size:100" json:"title"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	Status      string    `gorm:"size:20;default:'PENDING';index" json:"status"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Receipt represents receipts table; stores file metadata only, the binary
// lives in external storage.
type Receipt struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"size:100;not null" json:"file_name"`
	FileType     string    `gorm:"size:50" json:"file_type"`
	ReceiptURL   string    `gorm:"size:255" json:"receipt_url"`
	ThumbnailURL string    `gorm:"size:255" json:"thumbnail_url"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Receipt) TableName() string {
	return "receipts"
}

// ============================================================
// Master Tables
// ============================================================

// Faculty represents faculties table (master data)
type Faculty struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;uniqueIndex;not null" json:"name"`
	ShortName string    `gorm:"size:20" json:"short_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Faculty) TableName() string {
	return "faculties"
}

// YearSession represents year_sessions table (master data, selectable sessions)
type YearSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     string    `gorm:"size:9;uniqueIndex;not null" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (YearSession) TableName() string {
	return "year_sessions"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Event{},
		&EventCrew{},
		&EventAttendee{},
		&Administrator{},
		&ClubFamily{},
		&UserCCInfo{},
		&Budget{},
		&Transaction{},
		&Receipt{},
		&Faculty{},
		&YearSession{},
	)
}
