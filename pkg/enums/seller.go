package enums

import "fmt"

// SellerStatus gates catalog visibility for everything a seller lists.
type SellerStatus string

const (
	SellerStatusPendingApproval SellerStatus = "pending_approval"
	SellerStatusApproved        SellerStatus = "approved"
	SellerStatusDisabled        SellerStatus = "disabled"
)

var validSellerStatuses = []SellerStatus{
	SellerStatusPendingApproval,
	SellerStatusApproved,
	SellerStatusDisabled,
}

// String implements fmt.Stringer.
func (s SellerStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SellerStatus.
func (s SellerStatus) IsValid() bool {
	for _, candidate := range validSellerStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSellerStatus converts raw input into a SellerStatus.
func ParseSellerStatus(value string) (SellerStatus, error) {
	for _, candidate := range validSellerStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid seller status %q", value)
}
