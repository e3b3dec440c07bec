package enums

import "fmt"

// ChecklistStatus tracks a checklist through its lifecycle.
type ChecklistStatus string

const (
	ChecklistStatusPending    ChecklistStatus = "pending"
	ChecklistStatusInProgress ChecklistStatus = "in_progress"
	ChecklistStatusCompleted  ChecklistStatus = "completed"
)

var validChecklistStatuses = []ChecklistStatus{
	ChecklistStatusPending,
	ChecklistStatusInProgress,
	ChecklistStatusCompleted,
}

// String implements fmt.Stringer.
func (c ChecklistStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ChecklistStatus.
func (c ChecklistStatus) IsValid() bool {
	for _, candidate := range validChecklistStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseChecklistStatus converts raw input into a ChecklistStatus.
func ParseChecklistStatus(value string) (ChecklistStatus, error) {
	for _, candidate := range validChecklistStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checklist status %q", value)
}
