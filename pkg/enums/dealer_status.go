package enums

import "fmt"

// DealerStatus captures whether a dealer is operating within the network.
type DealerStatus string

const (
	DealerStatusActive    DealerStatus = "active"
	DealerStatusInactive  DealerStatus = "inactive"
	DealerStatusSuspended DealerStatus = "suspended"
)

var validDealerStatuses = []DealerStatus{
	DealerStatusActive,
	DealerStatusInactive,
	DealerStatusSuspended,
}

// String implements fmt.Stringer.
func (s DealerStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known DealerStatus.
func (s DealerStatus) IsValid() bool {
	for _, candidate := range validDealerStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseDealerStatus converts raw input into a DealerStatus.
func ParseDealerStatus(value string) (DealerStatus, error) {
	for _, candidate := range validDealerStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dealer status %q", value)
}
