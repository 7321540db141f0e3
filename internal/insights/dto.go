package insights

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// Period is the half-open [Start, End) reporting window of a metrics request.
// A record timestamped exactly at End belongs to the next period.
type Period struct {
	Start time.Time        `json:"start"`
	End   time.Time        `json:"end"`
	Type  enums.PeriodType `json:"type"`
}

// Duration returns the window length.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Previous returns the immediately preceding window of equal length, used for
// trend and growth comparisons.
func (p Period) Previous() Period {
	length := p.Duration()
	return Period{
		Start: p.Start.Add(-length),
		End:   p.Start,
		Type:  p.Type,
	}
}

// MetricsRequest asks for a unified report over one guide and period.
// Include lists the categories to compute; everything else is omitted.
type MetricsRequest struct {
	GuideID          uuid.UUID
	Period           Period
	Include          []enums.MetricCategory
	CalculateTrends  bool
	CompareWithPeers bool
}

// UnifiedMetrics is the multi-category performance report. A nil category was
// not requested; a zero-valued category was requested but had no data.
type UnifiedMetrics struct {
	GuideID     uuid.UUID `json:"guideId"`
	Period      Period    `json:"period"`
	GeneratedAt time.Time `json:"generatedAt"`

	Trips                *TripsMetrics                `json:"trips,omitempty"`
	Earnings             *EarningsMetrics             `json:"earnings,omitempty"`
	Ratings              *RatingsMetrics              `json:"ratings,omitempty"`
	Performance          *PerformanceMetrics          `json:"performance,omitempty"`
	CustomerSatisfaction *CustomerSatisfactionMetrics `json:"customerSatisfaction,omitempty"`
	Efficiency           *EfficiencyMetrics           `json:"efficiency,omitempty"`
	Financial            *FinancialMetrics            `json:"financial,omitempty"`
	Quality              *QualityMetrics              `json:"quality,omitempty"`
	Growth               *GrowthMetrics               `json:"growth,omitempty"`
	Comparative          *ComparativeMetrics          `json:"comparative,omitempty"`
	Sustainability       *SustainabilityMetrics       `json:"sustainability,omitempty"`
	Operations           *OperationsMetrics           `json:"operations,omitempty"`
	Safety               *SafetyMetrics               `json:"safety,omitempty"`
	Development          *DevelopmentMetrics          `json:"development,omitempty"`
	Trends               *TrendsMetrics               `json:"trends,omitempty"`
}

// TripsMetrics counts assignments the guide actually worked (both check-in and
// check-out recorded) plus route distance where coordinates exist.
type TripsMetrics struct {
	Completed       int     `json:"completed"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
}

// EarningsMetrics sums credit-type wallet transactions in-period.
type EarningsMetrics struct {
	Total            decimal.Decimal `json:"total"`
	TransactionCount int             `json:"transactionCount"`
}

// RatingsMetrics is the arithmetic mean of in-period review ratings. Zero mean
// and zero count when no reviews exist.
type RatingsMetrics struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// PerformanceMetrics covers punctuality and assignment completion.
type PerformanceMetrics struct {
	PunctualityRate *float64 `json:"punctualityRate,omitempty"`
	CompletionRate  *float64 `json:"completionRate,omitempty"`
}

// CustomerSatisfactionMetrics holds derived ratios; each is independently nil
// when its inputs are absent.
type CustomerSatisfactionMetrics struct {
	ResponseRate            *float64 `json:"responseRate,omitempty"`
	RepeatCustomerRate      *float64 `json:"repeatCustomerRate,omitempty"`
	ComplaintResolutionRate *float64 `json:"complaintResolutionRate,omitempty"`
	SatisfactionScore       *float64 `json:"satisfactionScore,omitempty"`
}

// EfficiencyMetrics covers trip cadence and duration.
type EfficiencyMetrics struct {
	AvgTripHours *float64 `json:"avgTripHours,omitempty"`
	TripsPerWeek float64  `json:"tripsPerWeek"`
}

// FinancialMetrics nets the earnings ledger against attendance penalties.
type FinancialMetrics struct {
	GrossEarnings decimal.Decimal `json:"grossEarnings"`
	Penalties     decimal.Decimal `json:"penalties"`
	NetEarnings   decimal.Decimal `json:"netEarnings"`
}

// QualityMetrics breaks down the rating distribution.
type QualityMetrics struct {
	FiveStarRate  *float64 `json:"fiveStarRate,omitempty"`
	LowRatingRate *float64 `json:"lowRatingRate,omitempty"`
}

// GrowthMetrics compares key scalars with the previous period of equal length.
type GrowthMetrics struct {
	TripGrowthRate     *float64 `json:"tripGrowthRate,omitempty"`
	EarningsGrowthRate *float64 `json:"earningsGrowthRate,omitempty"`
}

// ComparativeStat positions one scalar against the branch peer group.
// Percentile is 0-100 with inclusive ties.
type ComparativeStat struct {
	Value       float64 `json:"value"`
	PeerAverage float64 `json:"peerAverage"`
	Percentile  float64 `json:"percentile"`
}

// ComparativeMetrics covers the three peer-compared scalars.
type ComparativeMetrics struct {
	Trips  ComparativeStat `json:"trips"`
	Rating ComparativeStat `json:"rating"`
	Income ComparativeStat `json:"income"`
}

// SustainabilityMetrics covers passenger load efficiency.
type SustainabilityMetrics struct {
	AvgPassengerLoad       *float64 `json:"avgPassengerLoad,omitempty"`
	DistancePerPassengerKm *float64 `json:"distancePerPassengerKm,omitempty"`
}

// OperationsMetrics breaks down the assignment book.
type OperationsMetrics struct {
	AssignedTrips      int `json:"assignedTrips"`
	CancelledTrips     int `json:"cancelledTrips"`
	LeadAssignments    int `json:"leadAssignments"`
	SupportAssignments int `json:"supportAssignments"`
}

// SafetyMetrics summarizes in-period risk assessments.
type SafetyMetrics struct {
	AssessmentCount int      `json:"assessmentCount"`
	AvgScore        *float64 `json:"avgScore,omitempty"`
	HighRiskCount   int      `json:"highRiskCount"`
	SafeRate        *float64 `json:"safeRate,omitempty"`
}

// DevelopmentMetrics covers certification standing and tenure.
type DevelopmentMetrics struct {
	CertificationValid  bool     `json:"certificationValid"`
	DaysUntilCertExpiry *int     `json:"daysUntilCertExpiry,omitempty"`
	TenureMonths        *float64 `json:"tenureMonths,omitempty"`
}

// TrendPoint compares one scalar across the current and previous period.
type TrendPoint struct {
	Current   float64              `json:"current"`
	Previous  float64              `json:"previous"`
	Direction enums.TrendDirection `json:"direction"`
}

// TrendsMetrics classifies the movement of the key scalars.
type TrendsMetrics struct {
	Trips    TrendPoint `json:"trips"`
	Rating   TrendPoint `json:"rating"`
	Earnings TrendPoint `json:"earnings"`
}
