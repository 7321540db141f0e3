package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/geo"
)

// Each category is computed by an independent pure function over rows fetched
// from the repository. No function here mutates its inputs or touches storage.

const (
	fiveStarRating  = 5
	lowRatingCutoff = 2
	hoursPerWeek    = 7 * 24
)

func computeTrips(assignments []models.GuideAssignment) TripsMetrics {
	out := TripsMetrics{}
	for _, assignment := range assignments {
		if !assignment.Worked() {
			continue
		}
		out.Completed++
		if assignment.Trip != nil && assignment.Trip.HasRoute() {
			out.TotalDistanceKm += geo.HaversineKm(
				*assignment.Trip.DepartureLat, *assignment.Trip.DepartureLng,
				*assignment.Trip.DestinationLat, *assignment.Trip.DestinationLng,
			)
		}
	}
	return out
}

func computeEarnings(transactions []models.WalletTransaction) EarningsMetrics {
	out := EarningsMetrics{Total: decimal.Zero}
	for _, transaction := range transactions {
		if transaction.Type != enums.WalletTransactionTypeCredit {
			continue
		}
		out.Total = out.Total.Add(transaction.Amount)
		out.TransactionCount++
	}
	return out
}

func computeRatings(reviews []models.Review) RatingsMetrics {
	out := RatingsMetrics{}
	if len(reviews) == 0 {
		return out
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	out.Count = len(reviews)
	out.Average = float64(sum) / float64(len(reviews))
	return out
}

func computePerformance(assignments []models.GuideAssignment, attendance []models.Attendance) PerformanceMetrics {
	out := PerformanceMetrics{}
	if len(attendance) > 0 {
		onTime := 0
		for _, record := range attendance {
			if !record.Late {
				onTime++
			}
		}
		rate := float64(onTime) / float64(len(attendance))
		out.PunctualityRate = &rate
	}
	if len(assignments) > 0 {
		worked := 0
		for _, assignment := range assignments {
			if assignment.Worked() {
				worked++
			}
		}
		rate := float64(worked) / float64(len(assignments))
		out.CompletionRate = &rate
	}
	return out
}

func computeCustomerSatisfaction(reviews []models.Review, bookings []models.Booking) CustomerSatisfactionMetrics {
	out := CustomerSatisfactionMetrics{}

	if len(reviews) > 0 {
		replied := 0
		ratingSum := 0
		complaints := 0
		resolved := 0
		for _, review := range reviews {
			if review.ReplyText != nil {
				replied++
			}
			ratingSum += review.Rating
			if review.Complaint {
				complaints++
				if review.Resolved != nil && *review.Resolved {
					resolved++
				}
			}
		}
		responseRate := float64(replied) / float64(len(reviews))
		out.ResponseRate = &responseRate
		score := float64(ratingSum) / float64(len(reviews))
		out.SatisfactionScore = &score
		if complaints > 0 {
			resolutionRate := float64(resolved) / float64(complaints)
			out.ComplaintResolutionRate = &resolutionRate
		}
	}

	if len(bookings) > 0 {
		perCustomer := make(map[string]int)
		for _, booking := range bookings {
			perCustomer[booking.CustomerID.String()]++
		}
		repeat := 0
		for _, count := range perCustomer {
			if count > 1 {
				repeat++
			}
		}
		rate := float64(repeat) / float64(len(perCustomer))
		out.RepeatCustomerRate = &rate
	}

	return out
}

func computeEfficiency(assignments []models.GuideAssignment, period Period) EfficiencyMetrics {
	out := EfficiencyMetrics{}
	worked := 0
	var totalHours float64
	for _, assignment := range assignments {
		if !assignment.Worked() {
			continue
		}
		worked++
		totalHours += assignment.CheckOutAt.Sub(*assignment.CheckInAt).Hours()
	}
	if worked > 0 {
		avg := totalHours / float64(worked)
		out.AvgTripHours = &avg
	}
	if weeks := period.Duration().Hours() / hoursPerWeek; weeks > 0 {
		out.TripsPerWeek = float64(worked) / weeks
	}
	return out
}

func computeFinancial(transactions []models.WalletTransaction, attendance []models.Attendance) FinancialMetrics {
	gross := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == enums.WalletTransactionTypeCredit {
			gross = gross.Add(transaction.Amount)
		}
	}
	penalties := decimal.Zero
	for _, record := range attendance {
		penalties = penalties.Add(record.PenaltyAmount)
	}
	return FinancialMetrics{
		GrossEarnings: gross,
		Penalties:     penalties,
		NetEarnings:   gross.Sub(penalties),
	}
}

func computeQuality(reviews []models.Review) QualityMetrics {
	out := QualityMetrics{}
	if len(reviews) == 0 {
		return out
	}
	fiveStars := 0
	low := 0
	for _, review := range reviews {
		if review.Rating >= fiveStarRating {
			fiveStars++
		}
		if review.Rating <= lowRatingCutoff {
			low++
		}
	}
	fiveStarRate := float64(fiveStars) / float64(len(reviews))
	lowRate := float64(low) / float64(len(reviews))
	out.FiveStarRate = &fiveStarRate
	out.LowRatingRate = &lowRate
	return out
}

func computeGrowth(current, previous periodScalars) GrowthMetrics {
	out := GrowthMetrics{}
	if previous.trips > 0 {
		rate := (current.trips - previous.trips) / previous.trips
		out.TripGrowthRate = &rate
	}
	if previous.earnings > 0 {
		rate := (current.earnings - previous.earnings) / previous.earnings
		out.EarningsGrowthRate = &rate
	}
	return out
}

func computeSustainability(assignments []models.GuideAssignment) SustainabilityMetrics {
	out := SustainabilityMetrics{}
	worked := 0
	passengers := 0
	var distance float64
	for _, assignment := range assignments {
		if !assignment.Worked() || assignment.Trip == nil {
			continue
		}
		worked++
		passengers += assignment.Trip.TotalPassengers
		if assignment.Trip.HasRoute() {
			distance += geo.HaversineKm(
				*assignment.Trip.DepartureLat, *assignment.Trip.DepartureLng,
				*assignment.Trip.DestinationLat, *assignment.Trip.DestinationLng,
			)
		}
	}
	if worked > 0 {
		load := float64(passengers) / float64(worked)
		out.AvgPassengerLoad = &load
	}
	if passengers > 0 && distance > 0 {
		perPassenger := distance / float64(passengers)
		out.DistancePerPassengerKm = &perPassenger
	}
	return out
}

func computeOperations(assignments []models.GuideAssignment) OperationsMetrics {
	out := OperationsMetrics{AssignedTrips: len(assignments)}
	for _, assignment := range assignments {
		if assignment.Status == enums.AssignmentStatusCancelled {
			out.CancelledTrips++
		}
		switch assignment.Role {
		case enums.AssignmentRoleLead:
			out.LeadAssignments++
		case enums.AssignmentRoleSupport:
			out.SupportAssignments++
		}
	}
	return out
}

func computeSafety(assessments []models.RiskAssessment) SafetyMetrics {
	out := SafetyMetrics{AssessmentCount: len(assessments)}
	if len(assessments) == 0 {
		return out
	}
	scoreSum := 0
	safe := 0
	for _, assessment := range assessments {
		scoreSum += assessment.Score
		if assessment.Level == enums.RiskLevelHigh {
			out.HighRiskCount++
		}
		if assessment.IsSafe {
			safe++
		}
	}
	avg := float64(scoreSum) / float64(len(assessments))
	out.AvgScore = &avg
	safeRate := float64(safe) / float64(len(assessments))
	out.SafeRate = &safeRate
	return out
}

func computeDevelopment(guide models.Guide, now time.Time) DevelopmentMetrics {
	out := DevelopmentMetrics{CertificationValid: guide.CertificationValidAt(now)}
	if guide.CertificationExpiresAt != nil {
		days := int(guide.CertificationExpiresAt.Sub(now).Hours() / 24)
		out.DaysUntilCertExpiry = &days
	}
	if guide.HiredAt != nil {
		months := now.Sub(*guide.HiredAt).Hours() / 24 / 30
		out.TenureMonths = &months
	}
	return out
}
