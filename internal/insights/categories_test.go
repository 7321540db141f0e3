package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeTripsCountsWorkedOnly(t *testing.T) {
	checkIn := time.Date(2026, time.June, 5, 8, 0, 0, 0, time.UTC)
	assignments := []models.GuideAssignment{
		workedAssignment(nil),
		{CheckInAt: &checkIn}, // never checked out
		{},                    // never boarded
	}

	metrics := computeTrips(assignments)
	if metrics.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", metrics.Completed)
	}
	if metrics.TotalDistanceKm != 0 {
		t.Fatalf("expected no distance without route, got %v", metrics.TotalDistanceKm)
	}
}

func TestComputeTripsAccumulatesRouteDistance(t *testing.T) {
	trip := &models.Trip{
		DepartureLat:   floatPtr(-8.7467),
		DepartureLng:   floatPtr(115.1611),
		DestinationLat: floatPtr(-8.5193),
		DestinationLng: floatPtr(115.2633),
	}
	metrics := computeTrips([]models.GuideAssignment{workedAssignment(trip)})
	if metrics.TotalDistanceKm < 20 || metrics.TotalDistanceKm > 30 {
		t.Fatalf("expected roughly 27km, got %v", metrics.TotalDistanceKm)
	}
}

func TestComputePerformanceRates(t *testing.T) {
	attendance := []models.Attendance{{Late: false}, {Late: false}, {Late: true}, {Late: false}}
	assignments := []models.GuideAssignment{workedAssignment(nil), {}}

	metrics := computePerformance(assignments, attendance)
	if metrics.PunctualityRate == nil || *metrics.PunctualityRate != 0.75 {
		t.Fatalf("expected punctuality 0.75, got %v", metrics.PunctualityRate)
	}
	if metrics.CompletionRate == nil || *metrics.CompletionRate != 0.5 {
		t.Fatalf("expected completion 0.5, got %v", metrics.CompletionRate)
	}

	empty := computePerformance(nil, nil)
	if empty.PunctualityRate != nil || empty.CompletionRate != nil {
		t.Fatalf("expected nil rates without data: %+v", empty)
	}
}

func TestComputeCustomerSatisfaction(t *testing.T) {
	reply := "thanks for sailing with us"
	resolved := true
	reviews := []models.Review{
		{Rating: 5, ReplyText: &reply},
		{Rating: 4},
		{Rating: 1, Complaint: true, Resolved: &resolved},
		{Rating: 2, Complaint: true},
	}
	repeatCustomer := uuid.New()
	bookings := []models.Booking{
		{CustomerID: repeatCustomer},
		{CustomerID: repeatCustomer},
		{CustomerID: uuid.New()},
	}

	metrics := computeCustomerSatisfaction(reviews, bookings)
	if metrics.ResponseRate == nil || *metrics.ResponseRate != 0.25 {
		t.Fatalf("expected response rate 0.25, got %v", metrics.ResponseRate)
	}
	if metrics.ComplaintResolutionRate == nil || *metrics.ComplaintResolutionRate != 0.5 {
		t.Fatalf("expected resolution rate 0.5, got %v", metrics.ComplaintResolutionRate)
	}
	if metrics.SatisfactionScore == nil || *metrics.SatisfactionScore != 3 {
		t.Fatalf("expected satisfaction 3, got %v", metrics.SatisfactionScore)
	}
	if metrics.RepeatCustomerRate == nil || *metrics.RepeatCustomerRate != 0.5 {
		t.Fatalf("expected repeat rate 0.5, got %v", metrics.RepeatCustomerRate)
	}
}

func TestComputeFinancialNetsPenalties(t *testing.T) {
	transactions := []models.WalletTransaction{
		{Type: enums.WalletTransactionTypeCredit, Amount: decimal.NewFromInt(500)},
		{Type: enums.WalletTransactionTypeCredit, Amount: decimal.NewFromInt(300)},
		{Type: enums.WalletTransactionTypeDebit, Amount: decimal.NewFromInt(100)},
	}
	attendance := []models.Attendance{
		{PenaltyAmount: decimal.NewFromInt(50)},
		{PenaltyAmount: decimal.Zero},
	}

	metrics := computeFinancial(transactions, attendance)
	if !metrics.GrossEarnings.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected gross 800, got %s", metrics.GrossEarnings)
	}
	if !metrics.Penalties.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected penalties 50, got %s", metrics.Penalties)
	}
	if !metrics.NetEarnings.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("expected net 750, got %s", metrics.NetEarnings)
	}
}

func TestComputeQualityDistribution(t *testing.T) {
	reviews := []models.Review{{Rating: 5}, {Rating: 5}, {Rating: 3}, {Rating: 1}}

	metrics := computeQuality(reviews)
	if metrics.FiveStarRate == nil || *metrics.FiveStarRate != 0.5 {
		t.Fatalf("expected five star rate 0.5, got %v", metrics.FiveStarRate)
	}
	if metrics.LowRatingRate == nil || *metrics.LowRatingRate != 0.25 {
		t.Fatalf("expected low rating rate 0.25, got %v", metrics.LowRatingRate)
	}
}

func TestComputeOperationsBreakdown(t *testing.T) {
	assignments := []models.GuideAssignment{
		{Role: enums.AssignmentRoleLead, Status: enums.AssignmentStatusCompleted},
		{Role: enums.AssignmentRoleSupport, Status: enums.AssignmentStatusCancelled},
		{Role: enums.AssignmentRoleSupport, Status: enums.AssignmentStatusAssigned},
	}

	metrics := computeOperations(assignments)
	if metrics.AssignedTrips != 3 || metrics.CancelledTrips != 1 {
		t.Fatalf("unexpected counts: %+v", metrics)
	}
	if metrics.LeadAssignments != 1 || metrics.SupportAssignments != 2 {
		t.Fatalf("unexpected role split: %+v", metrics)
	}
}

func TestComputeSafetySummary(t *testing.T) {
	assessments := []models.RiskAssessment{
		{Score: 10, Level: enums.RiskLevelLow, IsSafe: true},
		{Score: 40, Level: enums.RiskLevelMedium, IsSafe: true},
		{Score: 70, Level: enums.RiskLevelHigh, IsSafe: false},
	}

	metrics := computeSafety(assessments)
	if metrics.AssessmentCount != 3 || metrics.HighRiskCount != 1 {
		t.Fatalf("unexpected counts: %+v", metrics)
	}
	if metrics.AvgScore == nil || *metrics.AvgScore != 40 {
		t.Fatalf("expected average 40, got %v", metrics.AvgScore)
	}
	if metrics.SafeRate == nil || *metrics.SafeRate != 2.0/3.0 {
		t.Fatalf("expected safe rate 2/3, got %v", metrics.SafeRate)
	}
}

func TestComputeDevelopmentCertification(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	expires := now.AddDate(0, 0, 30)
	hired := now.AddDate(-1, 0, 0)
	guide := models.Guide{CertificationExpiresAt: &expires, HiredAt: &hired}

	metrics := computeDevelopment(guide, now)
	if !metrics.CertificationValid {
		t.Fatalf("expected valid certification")
	}
	if metrics.DaysUntilCertExpiry == nil || *metrics.DaysUntilCertExpiry != 30 {
		t.Fatalf("expected 30 days to expiry, got %v", metrics.DaysUntilCertExpiry)
	}
	if metrics.TenureMonths == nil || *metrics.TenureMonths < 11 || *metrics.TenureMonths > 13 {
		t.Fatalf("expected ~12 months tenure, got %v", metrics.TenureMonths)
	}
}

func TestComputeGrowthNeedsPreviousActivity(t *testing.T) {
	metrics := computeGrowth(periodScalars{trips: 12, earnings: 900}, periodScalars{trips: 10, earnings: 1000})
	if metrics.TripGrowthRate == nil || *metrics.TripGrowthRate != 0.2 {
		t.Fatalf("expected trip growth 0.2, got %v", metrics.TripGrowthRate)
	}
	if metrics.EarningsGrowthRate == nil || *metrics.EarningsGrowthRate != -0.1 {
		t.Fatalf("expected earnings growth -0.1, got %v", metrics.EarningsGrowthRate)
	}

	empty := computeGrowth(periodScalars{trips: 5}, periodScalars{})
	if empty.TripGrowthRate != nil || empty.EarningsGrowthRate != nil {
		t.Fatalf("expected nil growth rates without previous activity: %+v", empty)
	}
}
