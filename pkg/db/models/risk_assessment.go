package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// RiskAssessment is an immutable pre-trip safety scoring record. Corrections
// create a new row; the newest row per (trip, guide) is authoritative.
type RiskAssessment struct {
	ID                uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TripID            uuid.UUID               `gorm:"column:trip_id;type:uuid;not null;index:idx_assessment_trip_guide,priority:1"`
	GuideID           uuid.UUID               `gorm:"column:guide_id;type:uuid;not null;index:idx_assessment_trip_guide,priority:2"`
	WaveHeightM       *float64                `gorm:"column:wave_height_m"`
	WindSpeedKmh      *float64                `gorm:"column:wind_speed_kmh"`
	Weather           *enums.WeatherCondition `gorm:"column:weather;type:text"`
	CrewReady         bool                    `gorm:"column:crew_ready;not null"`
	EquipmentComplete bool                    `gorm:"column:equipment_complete;not null"`
	Score             int                     `gorm:"column:score;not null"`
	Level             enums.RiskLevel         `gorm:"column:level;type:text;not null"`
	IsSafe            bool                    `gorm:"column:is_safe;not null"`
	SubmittedBy       *uuid.UUID              `gorm:"column:submitted_by;type:uuid"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime;index"`
}

// TableName overrides the default pluralization.
func (RiskAssessment) TableName() string { return "risk_assessments" }
