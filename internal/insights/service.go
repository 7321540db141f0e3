package insights

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/config"
	pkgerrors "github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/errors"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/logger"
)

// Service computes the unified multi-category performance report for a guide
// over a period.
type Service interface {
	UnifiedMetrics(ctx context.Context, req MetricsRequest) (*UnifiedMetrics, error)
}

type service struct {
	repo       Repository
	cache      Cache
	logg       *logger.Logger
	ttl        time.Duration
	thresholds TrendThresholds
	now        func() time.Time
}

// ServiceParams configure the insights service.
type ServiceParams struct {
	Repo   Repository
	Cache  Cache
	Logger *logger.Logger
	Config config.InsightsConfig
}

// NewService builds the metrics service. The cache is optional; without it
// every request recomputes.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "insights repository required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	ttl := params.Config.ReportTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	thresholds := TrendThresholds{
		RatingDelta:    params.Config.TrendRatingDelta,
		RelativeMargin: params.Config.TrendRelativeMargin,
	}
	if thresholds.RatingDelta <= 0 {
		thresholds.RatingDelta = 0.2
	}
	if thresholds.RelativeMargin <= 0 {
		thresholds.RelativeMargin = 0.10
	}
	return &service{
		repo:       params.Repo,
		cache:      params.Cache,
		logg:       params.Logger,
		ttl:        ttl,
		thresholds: thresholds,
		now:        time.Now,
	}, nil
}

func (s *service) UnifiedMetrics(ctx context.Context, req MetricsRequest) (*UnifiedMetrics, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := newCacheKey(req)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	report := &UnifiedMetrics{
		GuideID:     req.GuideID,
		Period:      req.Period,
		GeneratedAt: s.now().UTC(),
	}

	for _, category := range requestedCategories(req) {
		if err := s.buildCategory(ctx, category, req, report); err != nil {
			if pkgerrors.IsAuthorization(err) {
				return nil, err
			}
			logCtx := s.logg.WithFields(ctx, map[string]any{
				"guide_id": req.GuideID.String(),
				"category": category.String(),
			})
			s.logg.Warn(logCtx, "metric category unavailable: "+err.Error())
		}
	}

	s.storeCache(ctx, key, report)
	return report, nil
}

func validateRequest(req MetricsRequest) error {
	if req.GuideID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "guide id required")
	}
	if req.Period.Start.IsZero() || req.Period.End.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "period start and end are required")
	}
	if !req.Period.End.After(req.Period.Start) {
		return pkgerrors.New(pkgerrors.CodeValidation, "period end must be after start")
	}
	if !req.Period.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid period type")
	}
	if len(req.Include) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one metric category required")
	}
	for _, category := range req.Include {
		if !category.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid metric category").
				WithDetails(map[string]any{"category": string(category)})
		}
	}
	return nil
}

// requestedCategories resolves the closed category set for the request. The
// trends and comparative flags imply their categories.
func requestedCategories(req MetricsRequest) []enums.MetricCategory {
	include := make([]enums.MetricCategory, 0, len(req.Include)+2)
	include = append(include, req.Include...)
	if req.CalculateTrends {
		include = append(include, enums.MetricCategoryTrends)
	}
	if req.CompareWithPeers {
		include = append(include, enums.MetricCategoryComparative)
	}
	return enums.SortMetricCategories(include)
}

func (s *service) buildCategory(ctx context.Context, category enums.MetricCategory, req MetricsRequest, report *UnifiedMetrics) error {
	guideID := req.GuideID
	start, end := req.Period.Start, req.Period.End

	switch category {
	case enums.MetricCategoryTrips:
		assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeTrips(assignments)
		report.Trips = &metrics

	case enums.MetricCategoryEarnings:
		transactions, err := s.repo.WalletTransactionsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeEarnings(transactions)
		report.Earnings = &metrics

	case enums.MetricCategoryRatings:
		reviews, err := s.repo.ReviewsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeRatings(reviews)
		report.Ratings = &metrics

	case enums.MetricCategoryPerformance:
		assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		attendance, err := s.repo.AttendanceInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computePerformance(assignments, attendance)
		report.Performance = &metrics

	case enums.MetricCategoryCustomerSatisfaction:
		reviews, err := s.repo.ReviewsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		bookings, err := s.repo.BookingsForGuideTrips(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeCustomerSatisfaction(reviews, bookings)
		report.CustomerSatisfaction = &metrics

	case enums.MetricCategoryEfficiency:
		assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeEfficiency(assignments, req.Period)
		report.Efficiency = &metrics

	case enums.MetricCategoryFinancial:
		transactions, err := s.repo.WalletTransactionsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		attendance, err := s.repo.AttendanceInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeFinancial(transactions, attendance)
		report.Financial = &metrics

	case enums.MetricCategoryQuality:
		reviews, err := s.repo.ReviewsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeQuality(reviews)
		report.Quality = &metrics

	case enums.MetricCategoryGrowth:
		current, err := s.periodScalars(ctx, guideID, req.Period)
		if err != nil {
			return err
		}
		previous, err := s.periodScalars(ctx, guideID, req.Period.Previous())
		if err != nil {
			return err
		}
		metrics := computeGrowth(current, previous)
		report.Growth = &metrics

	case enums.MetricCategoryComparative:
		metrics, err := s.buildComparative(ctx, req)
		if err != nil {
			return err
		}
		report.Comparative = metrics

	case enums.MetricCategorySustainability:
		assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeSustainability(assignments)
		report.Sustainability = &metrics

	case enums.MetricCategoryOperations:
		assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeOperations(assignments)
		report.Operations = &metrics

	case enums.MetricCategorySafety:
		assessments, err := s.repo.AssessmentsInPeriod(ctx, guideID, start, end)
		if err != nil {
			return err
		}
		metrics := computeSafety(assessments)
		report.Safety = &metrics

	case enums.MetricCategoryDevelopment:
		guide, err := s.repo.Guide(ctx, guideID)
		if err != nil {
			return err
		}
		metrics := computeDevelopment(*guide, s.now().UTC())
		report.Development = &metrics

	case enums.MetricCategoryTrends:
		current, err := s.periodScalars(ctx, guideID, req.Period)
		if err != nil {
			return err
		}
		previous, err := s.periodScalars(ctx, guideID, req.Period.Previous())
		if err != nil {
			return err
		}
		metrics := computeTrends(current, previous, s.thresholds)
		report.Trends = &metrics
	}

	return nil
}

// periodScalars re-runs the scalar aggregation over an arbitrary window.
// Trend, growth, and comparative computations share it. Pure reads only.
func (s *service) periodScalars(ctx context.Context, guideID uuid.UUID, period Period) (periodScalars, error) {
	scalars := periodScalars{}

	assignments, err := s.repo.AssignmentsInPeriod(ctx, guideID, period.Start, period.End)
	if err != nil {
		return scalars, err
	}
	scalars.trips = float64(computeTrips(assignments).Completed)

	reviews, err := s.repo.ReviewsInPeriod(ctx, guideID, period.Start, period.End)
	if err != nil {
		return scalars, err
	}
	scalars.rating = computeRatings(reviews).Average

	transactions, err := s.repo.WalletTransactionsInPeriod(ctx, guideID, period.Start, period.End)
	if err != nil {
		return scalars, err
	}
	scalars.earnings, _ = computeEarnings(transactions).Total.Float64()

	return scalars, nil
}

func (s *service) buildComparative(ctx context.Context, req MetricsRequest) (*ComparativeMetrics, error) {
	guide, err := s.repo.Guide(ctx, req.GuideID)
	if err != nil {
		return nil, err
	}

	scalars, err := s.periodScalars(ctx, req.GuideID, req.Period)
	if err != nil {
		return nil, err
	}

	tripCounts, err := s.repo.BranchTripCounts(ctx, guide.BranchID, req.Period.Start, req.Period.End)
	if err != nil {
		return nil, err
	}
	avgRatings, err := s.repo.BranchAvgRatings(ctx, guide.BranchID, req.Period.Start, req.Period.End)
	if err != nil {
		return nil, err
	}
	creditTotals, err := s.repo.BranchCreditTotals(ctx, guide.BranchID, req.Period.Start, req.Period.End)
	if err != nil {
		return nil, err
	}

	tripPeers := make(map[uuid.UUID]float64, len(tripCounts))
	for id, count := range tripCounts {
		tripPeers[id] = float64(count)
	}
	incomePeers := make(map[uuid.UUID]float64, len(creditTotals))
	for id, total := range creditTotals {
		incomePeers[id], _ = total.Float64()
	}

	return &ComparativeMetrics{
		Trips:  compareAgainstPeers(req.GuideID, scalars.trips, tripPeers),
		Rating: compareAgainstPeers(req.GuideID, scalars.rating, avgRatings),
		Income: compareAgainstPeers(req.GuideID, scalars.earnings, incomePeers),
	}, nil
}

func (s *service) fromCache(ctx context.Context, key cacheKey) *UnifiedMetrics {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.ReportKey(key.Scope()))
	if err != nil {
		return nil
	}
	var report UnifiedMetrics
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil
	}
	return &report
}

func (s *service) storeCache(ctx context.Context, key cacheKey, report *UnifiedMetrics) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.ReportKey(key.Scope()), string(payload), s.ttl); err != nil {
		s.logg.Warn(ctx, "failed to cache metrics report: "+err.Error())
	}
}
