package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// SalaryPayment is the per-guide payroll record for one billing period.
// Readiness fields are written only by the payroll gatekeeper; downstream
// payment processing owns the transition to paid.
type SalaryPayment struct {
	ID              uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GuideID         uuid.UUID                 `gorm:"column:guide_id;type:uuid;not null;index"`
	PeriodStart     time.Time                 `gorm:"column:period_start;type:date;not null;index"`
	PeriodEnd       time.Time                 `gorm:"column:period_end;type:date;not null;index"`
	Status          enums.SalaryPaymentStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	AllDocsUploaded bool                      `gorm:"column:all_docs_uploaded;not null;default:false"`
	GrossAmount     decimal.Decimal           `gorm:"column:gross_amount;type:numeric(12,2);not null;default:0"`
	PaidAt          *time.Time                `gorm:"column:paid_at"`
	CreatedAt       time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (SalaryPayment) TableName() string { return "salary_payments" }

// PeriodWindow widens the stored inclusive period dates into the half-open
// [start, end) range the trip queries expect, so trips scheduled on the
// period's last day are still covered.
func (s SalaryPayment) PeriodWindow() (time.Time, time.Time) {
	return s.PeriodStart, s.PeriodEnd.AddDate(0, 0, 1)
}
