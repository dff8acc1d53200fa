package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// DirectoryService exposes administrative operations over the user directory.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	// ApproveUser moves a pending account to active.
	ApproveUser(ctx context.Context, id string) (*domain.User, error)
	// SetStatus applies an explicit status change, enforcing the account
	// state machine.
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.User, error)
	// ToggleActiveSuspended flips an account between active and suspended.
	// Toggling a pending account is an illegal transition.
	ToggleActiveSuspended(ctx context.Context, id string) (*domain.User, error)
	ChangePassword(ctx context.Context, id, newPassword string) error
	// DeleteUser removes the account permanently. Deleting an unknown id is a no-op.
	DeleteUser(ctx context.Context, id string) error
	ListClientsOfAgent(ctx context.Context, agentID string) ([]*domain.User, error)
}
