package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating attached to a completed trip/guide. Read-only to
// the intelligence engine.
type Review struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID     uuid.UUID `gorm:"column:trip_id;type:uuid;not null;index"`
	GuideID    uuid.UUID `gorm:"column:guide_id;type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"column:customer_id;type:uuid;not null;index"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    *string   `gorm:"column:comment"`
	ReplyText  *string   `gorm:"column:reply_text"`
	RepliedAt  *time.Time `gorm:"column:replied_at"`
	Resolved   *bool     `gorm:"column:resolved"`
	Complaint  bool      `gorm:"column:complaint;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default pluralization.
func (Review) TableName() string { return "reviews" }
