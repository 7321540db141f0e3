package enums

import "fmt"

// TripStatus tracks the lifecycle of a trip.
type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusPreparing TripStatus = "preparing"
	TripStatusOnTrip    TripStatus = "on_trip"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

var validTripStatuses = []TripStatus{
	TripStatusScheduled,
	TripStatusPreparing,
	TripStatusOnTrip,
	TripStatusCompleted,
	TripStatusCancelled,
}

// String implements fmt.Stringer.
func (t TripStatus) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TripStatus.
func (t TripStatus) IsValid() bool {
	for _, candidate := range validTripStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the trip can no longer change state.
func (t TripStatus) IsTerminal() bool {
	return t == TripStatusCompleted || t == TripStatusCancelled
}

// ParseTripStatus converts raw input into a TripStatus.
func ParseTripStatus(value string) (TripStatus, error) {
	for _, candidate := range validTripStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid trip status: %q", value)
}
