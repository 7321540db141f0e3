package insights

import (
	"testing"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

func defaultThresholds() TrendThresholds {
	return TrendThresholds{RatingDelta: 0.2, RelativeMargin: 0.10}
}

func TestClassifyAbsolute(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     enums.TrendDirection
	}{
		{"improving", 4.6, 4.2, enums.TrendDirectionImproving},
		{"declining", 3.8, 4.2, enums.TrendDirectionDeclining},
		{"within noise", 4.3, 4.2, enums.TrendDirectionStable},
		{"both zero", 0, 0, enums.TrendDirectionStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyAbsolute(tc.current, tc.previous, 0.2)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyRelative(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     enums.TrendDirection
	}{
		{"improving", 12, 10, enums.TrendDirectionImproving},
		{"declining", 8, 10, enums.TrendDirectionDeclining},
		{"within margin", 10.5, 10, enums.TrendDirectionStable},
		{"first active period", 3, 0, enums.TrendDirectionImproving},
		{"still inactive", 0, 0, enums.TrendDirectionStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyRelative(tc.current, tc.previous, 0.10)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestComputeTrendsCarriesRawValues(t *testing.T) {
	current := periodScalars{trips: 14, rating: 4.8, earnings: 2000}
	previous := periodScalars{trips: 10, rating: 4.7, earnings: 2500}

	trends := computeTrends(current, previous, defaultThresholds())
	if trends.Trips.Direction != enums.TrendDirectionImproving {
		t.Fatalf("expected trips improving, got %s", trends.Trips.Direction)
	}
	if trends.Rating.Direction != enums.TrendDirectionStable {
		t.Fatalf("expected rating stable, got %s", trends.Rating.Direction)
	}
	if trends.Earnings.Direction != enums.TrendDirectionDeclining {
		t.Fatalf("expected earnings declining, got %s", trends.Earnings.Direction)
	}
	if trends.Trips.Current != 14 || trends.Trips.Previous != 10 {
		t.Fatalf("expected raw trip values preserved: %+v", trends.Trips)
	}
}
