package enums

import "fmt"

// TaskCategory groups tasks for reporting.
type TaskCategory string

const (
	TaskCategoryCalls       TaskCategory = "calls"
	TaskCategorySocialMedia TaskCategory = "social_media"
	TaskCategoryVisits      TaskCategory = "visits"
	TaskCategoryReports     TaskCategory = "reports"
	TaskCategoryMarketing   TaskCategory = "marketing"
	TaskCategorySales       TaskCategory = "sales"
	TaskCategoryOther       TaskCategory = "other"
)

var validTaskCategories = []TaskCategory{
	TaskCategoryCalls,
	TaskCategorySocialMedia,
	TaskCategoryVisits,
	TaskCategoryReports,
	TaskCategoryMarketing,
	TaskCategorySales,
	TaskCategoryOther,
}

// String implements fmt.Stringer.
func (c TaskCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known TaskCategory.
func (c TaskCategory) IsValid() bool {
	for _, candidate := range validTaskCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseTaskCategory converts raw input into a TaskCategory.
func ParseTaskCategory(value string) (TaskCategory, error) {
	for _, candidate := range validTaskCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid task category %q", value)
}
