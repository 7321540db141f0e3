package enums

import "fmt"

// SalaryPaymentStatus tracks the lifecycle of a per-period payroll record.
type SalaryPaymentStatus string

const (
	SalaryPaymentStatusPending               SalaryPaymentStatus = "pending"
	SalaryPaymentStatusDocumentationRequired SalaryPaymentStatus = "documentation_required"
	SalaryPaymentStatusReady                 SalaryPaymentStatus = "ready"
	SalaryPaymentStatusPaid                  SalaryPaymentStatus = "paid"
)

var validSalaryPaymentStatuses = []SalaryPaymentStatus{
	SalaryPaymentStatusPending,
	SalaryPaymentStatusDocumentationRequired,
	SalaryPaymentStatusReady,
	SalaryPaymentStatusPaid,
}

// String implements fmt.Stringer.
func (s SalaryPaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SalaryPaymentStatus.
func (s SalaryPaymentStatus) IsValid() bool {
	for _, candidate := range validSalaryPaymentStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanAdvanceToReady reports whether the gatekeeper may move the record to ready.
// Records that already progressed past readiness are never regressed.
func (s SalaryPaymentStatus) CanAdvanceToReady() bool {
	return s == SalaryPaymentStatusPending || s == SalaryPaymentStatusDocumentationRequired
}

// ParseSalaryPaymentStatus converts raw input into a SalaryPaymentStatus.
func ParseSalaryPaymentStatus(value string) (SalaryPaymentStatus, error) {
	for _, candidate := range validSalaryPaymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid salary payment status: %q", value)
}
