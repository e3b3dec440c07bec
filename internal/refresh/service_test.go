package refresh

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

type stubJob struct {
	name string
	err  error
	runs int
}

func (j *stubJob) Name() string { return j.name }

func (j *stubJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func TestRegistrySkipsNilJobs(t *testing.T) {
	registry := NewRegistry(nil, &stubJob{name: "a"})
	registry.Register(nil)
	registry.Register(&stubJob{name: "b"})

	jobs := registry.Jobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Name() != "a" || jobs[1].Name() != "b" {
		t.Fatalf("unexpected order %v, %v", jobs[0].Name(), jobs[1].Name())
	}
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	failing := &stubJob{name: "failing", err: errors.New("boom")}
	healthy := &stubJob{name: "healthy"}
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(failing, healthy),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	service.RunOnce(context.Background())
	if failing.runs != 1 || healthy.runs != 1 {
		t.Fatalf("expected both jobs to run, got %d and %d", failing.runs, healthy.runs)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	job := &stubJob{name: "job"}
	service, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(job),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := service.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if job.runs != 1 {
		t.Fatalf("expected the immediate first cycle, got %d runs", job.runs)
	}
}

type stubSession struct {
	tokenPresent bool
	refreshErr   error
	refreshCalls int
}

func (s *stubSession) TokenPresent() bool { return s.tokenPresent }

func (s *stubSession) Refresh(ctx context.Context) error {
	s.refreshCalls++
	return s.refreshErr
}

func TestTokenJobSkipsWithoutToken(t *testing.T) {
	session := &stubSession{}
	job, err := NewTokenJob(session)
	if err != nil {
		t.Fatalf("NewTokenJob: %v", err)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if session.refreshCalls != 0 {
		t.Fatal("token job must not refresh without a token")
	}

	session.tokenPresent = true
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if session.refreshCalls != 1 {
		t.Fatalf("expected one refresh, got %d", session.refreshCalls)
	}
}

type stubChecklistFetcher struct {
	calls int
}

func (s *stubChecklistFetcher) FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Checklist, error) {
	s.calls++
	return nil, nil
}

func TestChecklistsJobGatedOnToken(t *testing.T) {
	fetcher := &stubChecklistFetcher{}
	session := &stubSession{}
	job, err := NewChecklistsJob(fetcher, session)
	if err != nil {
		t.Fatalf("NewChecklistsJob: %v", err)
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatal("must not fetch while logged out")
	}

	session.tokenPresent = true
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one fetch, got %d", fetcher.calls)
	}
}
