package models

import (
	"time"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/shopspring/decimal"
)

// LeadEvent is one entry in a lead's interaction history.
type LeadEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"user_id"`
}

// Lead is the client projection of a sales lead. Read-mostly: the backend
// owns funnel transitions and history.
type Lead struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	Source      enums.LeadSource  `json:"source"`
	Status      enums.LeadStatus  `json:"status"`
	FunnelStage enums.FunnelStage `json:"funnel_stage"`
	Value       *decimal.Decimal  `json:"value,omitempty"`
	Contact     types.ContactInfo `json:"contact"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	History     []LeadEvent       `json:"history,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// LeadCreateRequest carries the fields a client may set on a new lead.
type LeadCreateRequest struct {
	Source      enums.LeadSource  `json:"source" validate:"required"`
	Contact     types.ContactInfo `json:"contact" validate:"required"`
	Value       *decimal.Decimal  `json:"value,omitempty"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	FunnelStage enums.FunnelStage `json:"funnel_stage,omitempty"`
}

// LeadUpdateRequest is a partial update for an existing lead.
type LeadUpdateRequest struct {
	Status      enums.LeadStatus  `json:"status,omitempty"`
	FunnelStage enums.FunnelStage `json:"funnel_stage,omitempty"`
	Value       *decimal.Decimal  `json:"value,omitempty"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
}
