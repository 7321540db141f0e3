package enums

import (
	"fmt"
	"sort"
)

// MetricCategory names one section of the unified guide performance report.
// Callers request a subset; unrequested categories are omitted from the result.
type MetricCategory string

const (
	MetricCategoryTrips                MetricCategory = "trips"
	MetricCategoryEarnings             MetricCategory = "earnings"
	MetricCategoryRatings              MetricCategory = "ratings"
	MetricCategoryPerformance          MetricCategory = "performance"
	MetricCategoryCustomerSatisfaction MetricCategory = "customer_satisfaction"
	MetricCategoryEfficiency           MetricCategory = "efficiency"
	MetricCategoryFinancial            MetricCategory = "financial"
	MetricCategoryQuality              MetricCategory = "quality"
	MetricCategoryGrowth               MetricCategory = "growth"
	MetricCategoryComparative          MetricCategory = "comparative"
	MetricCategorySustainability       MetricCategory = "sustainability"
	MetricCategoryOperations           MetricCategory = "operations"
	MetricCategorySafety               MetricCategory = "safety"
	MetricCategoryDevelopment          MetricCategory = "development"
	MetricCategoryTrends               MetricCategory = "trends"
)

var validMetricCategories = []MetricCategory{
	MetricCategoryTrips,
	MetricCategoryEarnings,
	MetricCategoryRatings,
	MetricCategoryPerformance,
	MetricCategoryCustomerSatisfaction,
	MetricCategoryEfficiency,
	MetricCategoryFinancial,
	MetricCategoryQuality,
	MetricCategoryGrowth,
	MetricCategoryComparative,
	MetricCategorySustainability,
	MetricCategoryOperations,
	MetricCategorySafety,
	MetricCategoryDevelopment,
	MetricCategoryTrends,
}

// String implements fmt.Stringer.
func (m MetricCategory) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MetricCategory.
func (m MetricCategory) IsValid() bool {
	for _, candidate := range validMetricCategories {
		if candidate == m {
			return true
		}
	}
	return false
}

// AllMetricCategories returns every known category.
func AllMetricCategories() []MetricCategory {
	out := make([]MetricCategory, len(validMetricCategories))
	copy(out, validMetricCategories)
	return out
}

// SortMetricCategories returns a sorted, de-duplicated copy of the input.
// Cache keys depend on this ordering being deterministic.
func SortMetricCategories(categories []MetricCategory) []MetricCategory {
	seen := make(map[MetricCategory]struct{}, len(categories))
	out := make([]MetricCategory, 0, len(categories))
	for _, category := range categories {
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseMetricCategory converts raw input into a MetricCategory.
func ParseMetricCategory(value string) (MetricCategory, error) {
	for _, candidate := range validMetricCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid metric category: %q", value)
}
