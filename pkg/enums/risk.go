package enums

import "fmt"

// WeatherCondition is the forecast category captured on a risk assessment.
type WeatherCondition string

const (
	WeatherConditionClear  WeatherCondition = "clear"
	WeatherConditionCloudy WeatherCondition = "cloudy"
	WeatherConditionRainy  WeatherCondition = "rainy"
	WeatherConditionStormy WeatherCondition = "stormy"
)

var validWeatherConditions = []WeatherCondition{
	WeatherConditionClear,
	WeatherConditionCloudy,
	WeatherConditionRainy,
	WeatherConditionStormy,
}

// String implements fmt.Stringer.
func (w WeatherCondition) String() string {
	return string(w)
}

// IsValid reports whether the value is a known WeatherCondition.
func (w WeatherCondition) IsValid() bool {
	for _, candidate := range validWeatherConditions {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseWeatherCondition converts raw input into a WeatherCondition.
func ParseWeatherCondition(value string) (WeatherCondition, error) {
	for _, candidate := range validWeatherConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid weather condition: %q", value)
}

// RiskLevel is the classification band of a pre-trip risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

var validRiskLevels = []RiskLevel{
	RiskLevelLow,
	RiskLevelMedium,
	RiskLevelHigh,
}

// String implements fmt.Stringer.
func (r RiskLevel) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RiskLevel.
func (r RiskLevel) IsValid() bool {
	for _, candidate := range validRiskLevels {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRiskLevel converts raw input into a RiskLevel.
func ParseRiskLevel(value string) (RiskLevel, error) {
	for _, candidate := range validRiskLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid risk level: %q", value)
}
