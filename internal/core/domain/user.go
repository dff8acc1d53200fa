package domain

import (
	"errors"
	"strings"
	"time"
)

// Role identifies the portal an account belongs to. The same email may hold
// one account per role.
type Role string

const (
	RoleClient         Role = "client"
	RoleAgent          Role = "agent"
	RolePartner        Role = "partner"
	RoleAdminSuper     Role = "admin_super"
	RoleAdminBusiness  Role = "admin_business"
	RoleAdminFinancial Role = "admin_financial"
	RoleAdminCommunity Role = "admin_community"
)

var allRoles = map[Role]struct{}{
	RoleClient:         {},
	RoleAgent:          {},
	RolePartner:        {},
	RoleAdminSuper:     {},
	RoleAdminBusiness:  {},
	RoleAdminFinancial: {},
	RoleAdminCommunity: {},
}

// ValidRole reports whether r is one of the known portal roles.
func ValidRole(r Role) bool {
	_, ok := allRoles[r]
	return ok
}

// IsAdmin reports whether r is one of the administrative roles.
func (r Role) IsAdmin() bool {
	switch r {
	case RoleAdminSuper, RoleAdminBusiness, RoleAdminFinancial, RoleAdminCommunity:
		return true
	}
	return false
}

// AccountStatus represents the lifecycle state of a user account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusPending   AccountStatus = "pending"
)

// validAccountTransitions defines the allowed account state machine transitions.
var validAccountTransitions = map[AccountStatus][]AccountStatus{
	StatusPending:   {StatusActive},
	StatusActive:    {StatusSuspended},
	StatusSuspended: {StatusActive},
}

// CanTransitionTo reports whether moving from the current status to next is legal.
func (s AccountStatus) CanTransitionTo(next AccountStatus) bool {
	for _, allowed := range validAccountTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InitialStatus returns the lifecycle status a self-registered account starts
// in. Agents and partners require administrative approval before first login.
func InitialStatus(r Role) AccountStatus {
	if r == RoleAgent || r == RolePartner {
		return StatusPending
	}
	return StatusActive
}

var (
	ErrUserExists         = errors.New("user already exists for this role")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrAccountPending     = errors.New("account pending approval")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("access forbidden")
)

// NormalizeEmail lowercases and trims an email address. Every identity
// comparison in the system uses the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User models an account on one of the portals.
type User struct {
	ID                string        `json:"id"`
	Email             string        `json:"email"`
	FullName          string        `json:"full_name"`
	Role              Role          `json:"role"`
	PasswordHash      string        `json:"-"`
	Status            AccountStatus `json:"status"`
	Country           string        `json:"country,omitempty"`
	City              string        `json:"city,omitempty"`
	Avatar            string        `json:"avatar,omitempty"`
	EnrolledByAgentID string        `json:"enrolled_by_agent_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
