package refresh

import (
	"context"
	"fmt"

	"github.com/franchiseos/franchiseos-go/pkg/models"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// tokenSession is the slice of the session store the token job needs.
type tokenSession interface {
	TokenPresent() bool
	Refresh(ctx context.Context) error
}

// TokenJob keeps the session's token pair fresh. It is a no-op until a token
// exists, so the agent can start before anyone has logged in.
type TokenJob struct {
	session tokenSession
}

func NewTokenJob(session tokenSession) (*TokenJob, error) {
	if session == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &TokenJob{session: session}, nil
}

func (j *TokenJob) Name() string { return "token" }

func (j *TokenJob) Run(ctx context.Context) error {
	if !j.session.TokenPresent() {
		return nil
	}
	return j.session.Refresh(ctx)
}

type checklistFetcher interface {
	FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Checklist, error)
}

// ChecklistsJob resyncs the checklist collection.
type ChecklistsJob struct {
	store   checklistFetcher
	session tokenSession
}

func NewChecklistsJob(store checklistFetcher, session tokenSession) (*ChecklistsJob, error) {
	if store == nil {
		return nil, fmt.Errorf("checklist store required")
	}
	if session == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &ChecklistsJob{store: store, session: session}, nil
}

func (j *ChecklistsJob) Name() string { return "checklists" }

func (j *ChecklistsJob) Run(ctx context.Context) error {
	if !j.session.TokenPresent() {
		return nil
	}
	_, err := j.store.FetchAll(ctx, types.ListOptions{})
	return err
}

type dealerFetcher interface {
	FetchAll(ctx context.Context, opts types.ListOptions) ([]models.Dealer, error)
}

// DealersJob resyncs the dealer network so the franchiser's KPI rollup stays
// current.
type DealersJob struct {
	service dealerFetcher
	session tokenSession
}

func NewDealersJob(service dealerFetcher, session tokenSession) (*DealersJob, error) {
	if service == nil {
		return nil, fmt.Errorf("dealer service required")
	}
	if session == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &DealersJob{service: service, session: session}, nil
}

func (j *DealersJob) Name() string { return "dealers" }

func (j *DealersJob) Run(ctx context.Context) error {
	if !j.session.TokenPresent() {
		return nil
	}
	_, err := j.service.FetchAll(ctx, types.ListOptions{})
	return err
}
