package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// Trip represents one scheduled departure, mutated by ops staff and by the
// trip-start workflow.
type Trip struct {
	ID               uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BranchID         uuid.UUID        `gorm:"column:branch_id;type:uuid;not null;index"`
	Title            string           `gorm:"column:title;not null"`
	ScheduledDate    time.Time        `gorm:"column:scheduled_date;type:date;not null;index"`
	Status           enums.TripStatus `gorm:"column:status;type:text;not null;default:'scheduled'"`
	DocumentationURL *string          `gorm:"column:documentation_url"`
	TotalPassengers  int              `gorm:"column:total_passengers;not null;default:0"`
	DepartureLat     *float64         `gorm:"column:departure_lat"`
	DepartureLng     *float64         `gorm:"column:departure_lng"`
	DestinationLat   *float64         `gorm:"column:destination_lat"`
	DestinationLng   *float64         `gorm:"column:destination_lng"`
	Bookings         []Booking        `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (Trip) TableName() string { return "trips" }

// HasRoute reports whether both endpoints carry coordinates, which is required
// for distance summaries.
func (t Trip) HasRoute() bool {
	return t.DepartureLat != nil && t.DepartureLng != nil &&
		t.DestinationLat != nil && t.DestinationLng != nil
}

// Booking links paying passengers to a trip. The manifest reconciliation uses
// the sum of guest counts as the authoritative passenger total.
type Booking struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID     uuid.UUID `gorm:"column:trip_id;type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index"`
	GuestCount int       `gorm:"column:guest_count;not null;default:1"`
	Status     string    `gorm:"column:status;type:text;not null;default:'confirmed'"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (Booking) TableName() string { return "bookings" }
