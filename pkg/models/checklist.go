package models

import (
	"time"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
	"github.com/franchiseos/franchiseos-go/pkg/types"
)

// Task is a single item inside a checklist. Tasks have no identity outside
// their parent checklist.
type Task struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description,omitempty"`
	Category     enums.TaskCategory      `json:"category"`
	Priority     enums.TaskPriority      `json:"priority"`
	Status       enums.TaskStatus        `json:"status"`
	Order        int                     `json:"order"`
	Deadline     *time.Time              `json:"deadline,omitempty"`
	AssignedTo   string                  `json:"assigned_to,omitempty"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	Verification *types.VerificationData `json:"verification_data,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// Checklist is a dated set of tasks one dealer must complete, scored for KPI
// purposes by the server.
type Checklist struct {
	ID          string                `json:"id"`
	TenantID    string                `json:"tenant_id"`
	UserID      string                `json:"user_id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Date        time.Time             `json:"date"`
	Status      enums.ChecklistStatus `json:"status"`
	KPIScore    float64               `json:"kpi_score"`
	Tasks       []Task                `json:"tasks"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ChecklistCreateRequest carries the fields a client may set when creating a
// checklist. Ownership and identity are assigned server-side.
type ChecklistCreateRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Tasks       []Task    `json:"tasks,omitempty"`
}

// ChecklistUpdateRequest is a partial update; zero fields are left untouched
// server-side.
type ChecklistUpdateRequest struct {
	Title       string                `json:"title,omitempty"`
	Description string                `json:"description,omitempty"`
	Status      enums.ChecklistStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Tasks       []Task                `json:"tasks,omitempty"`
}
