package models

import (
	"time"

	"github.com/google/uuid"
)

// Guide represents a tour guide employed by a branch.
type Guide struct {
	ID                     uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	BranchID               uuid.UUID  `gorm:"column:branch_id;type:uuid;not null;index"`
	FullName               string     `gorm:"column:full_name;not null"`
	Email                  *string    `gorm:"column:email"`
	Phone                  *string    `gorm:"column:phone"`
	HiredAt                *time.Time `gorm:"column:hired_at"`
	CertificationNumber    *string    `gorm:"column:certification_number"`
	CertificationExpiresAt *time.Time `gorm:"column:certification_expires_at"`
	Active                 bool       `gorm:"column:active;not null;default:true"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (Guide) TableName() string { return "guides" }

// CertificationValidAt reports whether the guide holds an unexpired
// certification at the given instant.
func (g Guide) CertificationValidAt(at time.Time) bool {
	if g.CertificationNumber == nil || *g.CertificationNumber == "" {
		return false
	}
	if g.CertificationExpiresAt == nil {
		return false
	}
	return g.CertificationExpiresAt.After(at)
}
