package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Attendance records check-in/out for one (trip, guide) pair, including any
// lateness penalty applied by ops.
type Attendance struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID        uuid.UUID       `gorm:"column:trip_id;type:uuid;not null;uniqueIndex:idx_attendance_trip_guide,priority:1"`
	GuideID       uuid.UUID       `gorm:"column:guide_id;type:uuid;not null;uniqueIndex:idx_attendance_trip_guide,priority:2"`
	CheckInAt     *time.Time      `gorm:"column:check_in_at"`
	CheckOutAt    *time.Time      `gorm:"column:check_out_at"`
	Late          bool            `gorm:"column:late;not null;default:false"`
	PenaltyAmount decimal.Decimal `gorm:"column:penalty_amount;type:numeric(12,2);not null;default:0"`
	Notes         *string         `gorm:"column:notes"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (Attendance) TableName() string { return "attendances" }
