package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
//
// Implementations must treat the (normalized email, role) pair as unique and
// return domain.ErrUserExists from Insert on a duplicate. Lookups that match
// nothing return domain.ErrUserNotFound; Delete is idempotent and succeeds
// on an unknown id.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmailAndRole matches on the normalized email and exact role.
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// ListByEnrollingAgent returns the client accounts enrolled by the given agent.
	ListByEnrollingAgent(ctx context.Context, agentID string) ([]*domain.User, error)
	UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	Delete(ctx context.Context, id string) error
}
