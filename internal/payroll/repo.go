package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
)

// Repository bundles the payroll reads and the single write the gatekeeper
// performs.
type Repository interface {
	paymentReader
	tripReader
	paymentWriter
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a payroll repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SalaryPaymentsInPeriod(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error) {
	// period_end is an inclusive date, the run window is half-open.
	var payments []models.SalaryPayment
	err := r.db.WithContext(ctx).
		Where("period_start < ? AND period_end >= ?", end, start).
		Order("period_start ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) TripsForGuideInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN guide_assignments ON guide_assignments.trip_id = trips.id").
		Where("guide_assignments.guide_id = ?", guideID).
		Where("trips.scheduled_date >= ? AND trips.scheduled_date < ?", start, end).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *repository) TripPassengerCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	var total *int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("SUM(guest_count)").
		Where("trip_id = ?", tripID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return int(*total), nil
}

func (r *repository) ReturnedManifestCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ManifestCheck{}).
		Where("trip_id = ?", tripID).
		Where("returned_at IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *repository) UpdateSalaryPayment(ctx context.Context, paymentID uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.SalaryPayment{}).
		Where("id = ?", paymentID).
		Updates(updates).Error
}
