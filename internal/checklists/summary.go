package checklists

import "github.com/franchiseos/franchiseos-go/pkg/enums"

// Summary is the dealer-side digest of the synced collection: how much of
// the assigned work is done and how it scores.
type Summary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
	AvgKPIScore    float64 `json:"avg_kpi_score"`
}

// Summarize derives the digest from the current collection. Rates are
// fractions in [0, 1]; an empty collection yields all zeroes.
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := Summary{Total: len(s.items)}
	if summary.Total == 0 {
		return summary
	}
	for _, item := range s.items {
		switch item.Status {
		case enums.ChecklistStatusCompleted:
			summary.Completed++
		case enums.ChecklistStatusInProgress:
			summary.InProgress++
		default:
			summary.Pending++
		}
		summary.AvgKPIScore += item.KPIScore
	}
	summary.CompletionRate = float64(summary.Completed) / float64(summary.Total)
	summary.AvgKPIScore /= float64(summary.Total)
	return summary
}

// TaskProgress reports done versus total tasks for the focused checklist.
// Verified tasks count as done.
func (s *Store) TaskProgress() (done, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, 0
	}
	for _, task := range s.current.Tasks {
		total++
		if task.Status == enums.TaskStatusCompleted || task.Status == enums.TaskStatusVerified {
			done++
		}
	}
	return done, total
}
