package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// GuideAssignment links a guide to a trip. Created at scheduling time and
// mutated on attendance events.
type GuideAssignment struct {
	ID         uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID     uuid.UUID              `gorm:"column:trip_id;type:uuid;not null;index:idx_assignment_trip_guide,priority:1"`
	GuideID    uuid.UUID              `gorm:"column:guide_id;type:uuid;not null;index:idx_assignment_trip_guide,priority:2"`
	Role       enums.AssignmentRole   `gorm:"column:role;type:text;not null;default:'support'"`
	Status     enums.AssignmentStatus `gorm:"column:status;type:text;not null;default:'assigned'"`
	FeeAmount  decimal.Decimal        `gorm:"column:fee_amount;type:numeric(12,2);not null;default:0"`
	CheckInAt  *time.Time             `gorm:"column:check_in_at"`
	CheckOutAt *time.Time             `gorm:"column:check_out_at"`
	Trip       *Trip                  `gorm:"foreignKey:TripID"`
	CreatedAt  time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (GuideAssignment) TableName() string { return "guide_assignments" }

// Worked reports whether the guide both checked in and checked out, which is
// what the trips metric counts.
func (a GuideAssignment) Worked() bool {
	return a.CheckInAt != nil && a.CheckOutAt != nil
}
