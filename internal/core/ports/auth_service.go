package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// RegisterInput carries the data for a self-registration on any portal.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Role     domain.Role
	Country  string
	City     string
	Avatar   string
}

// EnrollClientInput carries the data an agent provides when registering a
// client on the client's behalf. The account starts pending with a
// temporary password.
type EnrollClientInput struct {
	Email        string
	FullName     string
	TempPassword string
	Country      string
	City         string
}

// AuthService implements registration, agent enrollment, and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	EnrollClient(ctx context.Context, agentID string, in EnrollClientInput) (*domain.User, error)
	// Login authenticates against the (email, role) pair and returns a signed
	// session token plus the profile. Suspended and pending accounts are
	// rejected with their own sentinel errors so the caller can present
	// distinct messages.
	Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error)
}
