package models

import (
	"time"

	"github.com/franchiseos/franchiseos-go/pkg/enums"
)

// User is the client projection of a platform account. The server owns
// identity; the client never assigns IDs.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      enums.Role `json:"role"`
	TenantID  string     `json:"tenant_id"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}
