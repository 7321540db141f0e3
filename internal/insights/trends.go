package insights

import (
	"math"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

// periodScalars are the scalar metrics re-aggregated over a window for trend,
// growth, and comparative purposes.
type periodScalars struct {
	trips    float64
	rating   float64
	earnings float64
}

// TrendThresholds distinguishes real movement from noise. Rating-like scalars
// use an absolute delta because their scale is fixed (0-5); count- and
// amount-like scalars use a relative margin.
type TrendThresholds struct {
	RatingDelta    float64
	RelativeMargin float64
}

// classifyAbsolute compares scalars on a fixed-scale axis.
func classifyAbsolute(current, previous, delta float64) enums.TrendDirection {
	switch {
	case current-previous > delta:
		return enums.TrendDirectionImproving
	case previous-current > delta:
		return enums.TrendDirectionDeclining
	default:
		return enums.TrendDirectionStable
	}
}

// classifyRelative compares scalars whose magnitude varies per guide. A zero
// previous value falls back to an absolute comparison against the margin so a
// first active period still registers as improving.
func classifyRelative(current, previous, margin float64) enums.TrendDirection {
	if previous == 0 {
		switch {
		case current > 0:
			return enums.TrendDirectionImproving
		default:
			return enums.TrendDirectionStable
		}
	}
	change := (current - previous) / math.Abs(previous)
	switch {
	case change > margin:
		return enums.TrendDirectionImproving
	case change < -margin:
		return enums.TrendDirectionDeclining
	default:
		return enums.TrendDirectionStable
	}
}

func computeTrends(current, previous periodScalars, thresholds TrendThresholds) TrendsMetrics {
	return TrendsMetrics{
		Trips: TrendPoint{
			Current:   current.trips,
			Previous:  previous.trips,
			Direction: classifyRelative(current.trips, previous.trips, thresholds.RelativeMargin),
		},
		Rating: TrendPoint{
			Current:   current.rating,
			Previous:  previous.rating,
			Direction: classifyAbsolute(current.rating, previous.rating, thresholds.RatingDelta),
		},
		Earnings: TrendPoint{
			Current:   current.earnings,
			Previous:  previous.earnings,
			Direction: classifyRelative(current.earnings, previous.earnings, thresholds.RelativeMargin),
		},
	}
}
