package checklists

import (
	"context"
	"testing"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/models"
)

func TestSummarizeEmptyCollection(t *testing.T) {
	store := newTestStore(t, &stubAPI{})
	summary := store.Summarize()
	if summary.Total != 0 || summary.CompletionRate != 0 || summary.AvgKPIScore != 0 {
		t.Fatalf("unexpected summary for empty collection %+v", summary)
	}
}

func TestSummarizeCountsAndRates(t *testing.T) {
	done := checklist("1", "Done")
	done.Status = enums.ChecklistStatusCompleted
	done.KPIScore = 100
	active := checklist("2", "Active")
	active.Status = enums.ChecklistStatusInProgress
	active.KPIScore = 40
	idle := checklist("3", "Idle")
	idle.KPIScore = 0

	store := newTestStore(t, &stubAPI{})
	seed(t, store, done, active, idle)

	summary := store.Summarize()
	if summary.Total != 3 || summary.Completed != 1 || summary.InProgress != 1 || summary.Pending != 1 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if want := 1.0 / 3.0; summary.CompletionRate != want {
		t.Fatalf("unexpected completion rate %v, want %v", summary.CompletionRate, want)
	}
	if want := (100.0 + 40.0) / 3.0; summary.AvgKPIScore != want {
		t.Fatalf("unexpected avg kpi %v, want %v", summary.AvgKPIScore, want)
	}
}

func TestTaskProgress(t *testing.T) {
	current := checklist("1", "Daily ops")
	current.Tasks = []models.Task{
		{ID: "t1", Status: enums.TaskStatusCompleted},
		{ID: "t2", Status: enums.TaskStatusVerified},
		{ID: "t3", Status: enums.TaskStatusPending},
	}
	api := &stubAPI{getResp: &current}
	store := newTestStore(t, api)

	if _, err := store.FetchOne(context.Background(), "1"); err != nil {
		t.Fatalf("FetchOne: %v", err)
	}
	done, total := store.TaskProgress()
	if done != 2 || total != 3 {
		t.Fatalf("unexpected progress %d/%d", done, total)
	}
}

func TestTaskProgressWithoutCurrent(t *testing.T) {
	store := newTestStore(t, &stubAPI{})
	if done, total := store.TaskProgress(); done != 0 || total != 0 {
		t.Fatalf("expected 0/0, got %d/%d", done, total)
	}
}
