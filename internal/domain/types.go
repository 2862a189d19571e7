package domain

import "time"

type TeamMember struct {
	ID             int64
	Role           string
	Name           string
	Description    string
	Image          string
	PhoneNumber    string
	ContactContext string
	CreatedAt      time.Time
}

// CompanyInfo is a singleton record; LogoKey is empty until a logo is set.
type CompanyInfo struct {
	Phone   string
	Email   string
	LogoKey string
}

type InternalMessage struct {
	ID        int64
	Sender    string
	Text      string
	Timestamp time.Time
}

// Booking is transient form data; it is never written to the database.
type Booking struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"required"`
	ServiceType string `validate:"required,oneof=Photography Videography Both"`
	Location    string `validate:"required"`
	Date        string `validate:"required"`
	TimeSlot    string `validate:"required"`
	Notes       string
}

// Confirmation carries the fields echoed on the booking success screen.
type Confirmation struct {
	Name        string
	ServiceType string
	Location    string
}

type GalleryItem struct {
	ID       int64
	Src      string
	Category string
	Caption  string
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        int64
	Role      ChatRole
	Text      string
	Timestamp time.Time
}

type Review struct {
	ID     int64
	Author string
	Rating int
	Text   string
	Date   string
}
