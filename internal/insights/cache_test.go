package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
)

func TestCacheKeyScopeDeterministic(t *testing.T) {
	guideID := uuid.New()
	period := Period{
		Start: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		Type:  enums.PeriodTypeMonthly,
	}

	first := newCacheKey(MetricsRequest{
		GuideID: guideID,
		Period:  period,
		Include: []enums.MetricCategory{enums.MetricCategoryRatings, enums.MetricCategoryTrips},
	})
	reordered := newCacheKey(MetricsRequest{
		GuideID: guideID,
		Period:  period,
		Include: []enums.MetricCategory{enums.MetricCategoryTrips, enums.MetricCategoryRatings},
	})
	if first.Scope() != reordered.Scope() {
		t.Fatalf("expected order-independent scope: %q vs %q", first.Scope(), reordered.Scope())
	}
}

func TestCacheKeyScopeDistinguishesRequests(t *testing.T) {
	guideID := uuid.New()
	period := Period{
		Start: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		Type:  enums.PeriodTypeMonthly,
	}
	base := MetricsRequest{
		GuideID: guideID,
		Period:  period,
		Include: []enums.MetricCategory{enums.MetricCategoryTrips},
	}

	variants := []MetricsRequest{
		{GuideID: uuid.New(), Period: period, Include: base.Include},
		{GuideID: guideID, Period: Period{Start: period.Start.AddDate(0, -1, 0), End: period.Start, Type: enums.PeriodTypeMonthly}, Include: base.Include},
		{GuideID: guideID, Period: period, Include: []enums.MetricCategory{enums.MetricCategoryTrips, enums.MetricCategoryRatings}},
		{GuideID: guideID, Period: period, Include: base.Include, CompareWithPeers: true},
		{GuideID: guideID, Period: period, Include: base.Include, CalculateTrends: true},
	}

	baseScope := newCacheKey(base).Scope()
	for i, variant := range variants {
		if scope := newCacheKey(variant).Scope(); scope == baseScope {
			t.Fatalf("variant %d collides with base scope %q", i, baseScope)
		}
	}
}
