package models

import (
	"time"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// Dealer is the franchiser-facing aggregate for one outlet. Read-only on the
// client; KPI metrics are computed server-side.
type Dealer struct {
	ID           string             `json:"id"`
	TenantID     string             `json:"tenant_id"`
	UserID       string             `json:"user_id"`
	BusinessName string             `json:"business_name"`
	Address      string             `json:"address,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty"`
	ManagerID    string             `json:"manager_id,omitempty"`
	KPIMetrics   types.KPIMetrics   `json:"kpi_metrics"`
	Status       enums.DealerStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DealerCreateRequest carries the fields settable when onboarding a dealer.
type DealerCreateRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	BusinessName string `json:"business_name" validate:"required"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	ManagerID    string `json:"manager_id,omitempty"`
}

// DealerUpdateRequest is a partial update for an existing dealer.
type DealerUpdateRequest struct {
	BusinessName string             `json:"business_name,omitempty"`
	Address      string             `json:"address,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty" validate:"omitempty,email"`
	ManagerID    string             `json:"manager_id,omitempty"`
	Status       enums.DealerStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}
