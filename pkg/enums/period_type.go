package enums

import "fmt"

// PeriodType classifies the reporting window of a metrics request.
type PeriodType string

const (
	PeriodTypeMonthly PeriodType = "monthly"
	PeriodTypeWeekly  PeriodType = "weekly"
	PeriodTypeCustom  PeriodType = "custom"
)

var validPeriodTypes = []PeriodType{
	PeriodTypeMonthly,
	PeriodTypeWeekly,
	PeriodTypeCustom,
}

// String implements fmt.Stringer.
func (p PeriodType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PeriodType.
func (p PeriodType) IsValid() bool {
	for _, candidate := range validPeriodTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePeriodType converts raw input into a PeriodType.
func ParsePeriodType(value string) (PeriodType, error) {
	for _, candidate := range validPeriodTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid period type: %q", value)
}
