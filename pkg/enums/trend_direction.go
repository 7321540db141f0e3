package enums

// TrendDirection classifies the movement of a scalar metric between two
// consecutive periods of equal length.
type TrendDirection string

const (
	TrendDirectionImproving TrendDirection = "improving"
	TrendDirectionStable    TrendDirection = "stable"
	TrendDirectionDeclining TrendDirection = "declining"
)

// String implements fmt.Stringer.
func (t TrendDirection) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TrendDirection.
func (t TrendDirection) IsValid() bool {
	switch t {
	case TrendDirectionImproving, TrendDirectionStable, TrendDirectionDeclining:
		return true
	}
	return false
}
