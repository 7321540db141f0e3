package models

import (
	"time"

	"github.com/google/uuid"
)

// ManifestCheck tracks one passenger boarding and returning on a trip. A trip
// manifest is reconciled iff every passenger has a non-null returned timestamp.
type ManifestCheck struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID        uuid.UUID  `gorm:"column:trip_id;type:uuid;not null;index"`
	BookingID     uuid.UUID  `gorm:"column:booking_id;type:uuid;not null;index"`
	PassengerName string     `gorm:"column:passenger_name;not null"`
	BoardedAt     *time.Time `gorm:"column:boarded_at"`
	ReturnedAt    *time.Time `gorm:"column:returned_at"`
	CheckedBy     *uuid.UUID `gorm:"column:checked_by;type:uuid"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (ManifestCheck) TableName() string { return "manifest_checks" }
