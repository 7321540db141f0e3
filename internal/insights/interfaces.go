package insights

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
)

// Repository is the read surface of the data gateway used by the report.
// Every method filters by guide (or branch) and the half-open [start, end)
// range, so adjacent periods never count the same record twice.
type Repository interface {
	Guide(ctx context.Context, guideID uuid.UUID) (*models.Guide, error)
	AssignmentsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.GuideAssignment, error)
	ReviewsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Review, error)
	WalletTransactionsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.WalletTransaction, error)
	AttendanceInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Attendance, error)
	AssessmentsInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.RiskAssessment, error)
	BookingsForGuideTrips(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Booking, error)

	// Peer aggregates for the comparative category, keyed by guide.
	BranchTripCounts(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]int, error)
	BranchAvgRatings(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]float64, error)
	BranchCreditTotals(ctx context.Context, branchID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error)
}

// Cache is the key/value layer memoizing computed reports. pkg/redis.Client
// satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ReportKey(scope string) string
}
