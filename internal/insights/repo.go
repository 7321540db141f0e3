package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an insights repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Guide(ctx context.Context, guideID uuid.UUID) (*models.Guide, error) {
	var guide models.Guide
	err := r.db.WithContext(ctx).
		Where("id = ?", guideID).
		First(&guide).Error
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *repository) AssignmentsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.GuideAssignment, error) {
	var assignments []models.GuideAssignment
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Joins("JOIN trips ON trips.id = guide_assignments.trip_id").
		Where("guide_assignments.guide_id = ?", guideID).
		Where("trips.scheduled_date >= ? AND trips.scheduled_date < ?", start, end).
		Order("trips.scheduled_date ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *repository) ReviewsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *repository) WalletTransactionsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.WalletTransaction, error) {
	var transactions []models.WalletTransaction
	err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) AttendanceInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = attendances.trip_id").
		Where("attendances.guide_id = ?", guideID).
		Where("trips.scheduled_date >= ? AND trips.scheduled_date < ?", start, end).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) AssessmentsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.RiskAssessment, error) {
	var assessments []models.RiskAssessment
	err := r.db.WithContext(ctx).
		Where("guide_id = ?", guideID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *repository) BookingsForGuideTrips(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = bookings.trip_id").
		Joins("JOIN guide_assignments ON guide_assignments.trip_id = trips.id").
		Where("guide_assignments.guide_id = ?", guideID).
		Where("trips.scheduled_date >= ? AND trips.scheduled_date < ?", start, end).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

type guideCountRow struct {
	GuideID uuid.UUID `gorm:"column:guide_id"`
	Value   float64   `gorm:"column:value"`
}

func (r *repository) BranchTripCounts(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]int, error) {
	var rows []guideCountRow
	err := r.db.WithContext(ctx).
		Model(&models.GuideAssignment{}).
		Select("guide_assignments.guide_id AS guide_id, COUNT(*) AS value").
		Joins("JOIN trips ON trips.id = guide_assignments.trip_id").
		Where("trips.branch_id = ?", branchID).
		Where("trips.scheduled_date >= ? AND trips.scheduled_date < ?", start, end).
		Where("guide_assignments.check_in_at IS NOT NULL").
		Where("guide_assignments.check_out_at IS NOT NULL").
		Group("guide_assignments.guide_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.GuideID] = int(row.Value)
	}
	return counts, nil
}

func (r *repository) BranchAvgRatings(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]float64, error) {
	var rows []guideCountRow
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("reviews.guide_id AS guide_id, AVG(reviews.rating) AS value").
		Joins("JOIN guides ON guides.id = reviews.guide_id").
		Where("guides.branch_id = ?", branchID).
		Where("reviews.created_at >= ? AND reviews.created_at < ?", start, end).
		Group("reviews.guide_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ratings := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		ratings[row.GuideID] = row.Value
	}
	return ratings, nil
}

func (r *repository) BranchCreditTotals(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []guideCountRow
	err := r.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Select("wallet_transactions.guide_id AS guide_id, COALESCE(SUM(wallet_transactions.amount), 0) AS value").
		Joins("JOIN guides ON guides.id = wallet_transactions.guide_id").
		Where("guides.branch_id = ?", branchID).
		Where("wallet_transactions.type = ?", enums.WalletTransactionTypeCredit).
		Where("wallet_transactions.created_at >= ? AND wallet_transactions.created_at < ?", start, end).
		Group("wallet_transactions.guide_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.GuideID] = decimal.NewFromFloat(row.Value)
	}
	return totals, nil
}
