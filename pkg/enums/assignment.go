package enums

import "fmt"

// AssignmentRole distinguishes the lead guide from supporting guides on a trip.
type AssignmentRole string

const (
	AssignmentRoleLead    AssignmentRole = "lead"
	AssignmentRoleSupport AssignmentRole = "support"
)

var validAssignmentRoles = []AssignmentRole{
	AssignmentRoleLead,
	AssignmentRoleSupport,
}

// String implements fmt.Stringer.
func (a AssignmentRole) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AssignmentRole.
func (a AssignmentRole) IsValid() bool {
	for _, candidate := range validAssignmentRoles {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAssignmentRole converts raw input into an AssignmentRole.
func ParseAssignmentRole(value string) (AssignmentRole, error) {
	for _, candidate := range validAssignmentRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid assignment role: %q", value)
}

// AssignmentStatus tracks the lifecycle of a guide assignment.
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

var validAssignmentStatuses = []AssignmentStatus{
	AssignmentStatusAssigned,
	AssignmentStatusConfirmed,
	AssignmentStatusCompleted,
	AssignmentStatusCancelled,
}

// String implements fmt.Stringer.
func (a AssignmentStatus) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AssignmentStatus.
func (a AssignmentStatus) IsValid() bool {
	for _, candidate := range validAssignmentStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAssignmentStatus converts raw input into an AssignmentStatus.
func ParseAssignmentStatus(value string) (AssignmentStatus, error) {
	for _, candidate := range validAssignmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid assignment status: %q", value)
}
