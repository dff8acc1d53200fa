package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eadmin-africa/portal-api/internal/api/metrics"
	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// AuthService implements registration, agent enrollment, and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register creates a self-registered account. Agents and partners start
// pending; every other role starts active.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.newUser(email, in.FullName, in.Password, in.Role, domain.InitialStatus(in.Role))
	if err != nil {
		return nil, err
	}
	user.Country = in.Country
	user.City = in.City
	user.Avatar = in.Avatar

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(in.Role)).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Str("status", string(user.Status)).Msg("user registered")
	return user, nil
}

// EnrollClient registers a client on behalf of an agent. The account is
// linked back to the agent and starts pending regardless of role defaults.
func (s *AuthService) EnrollClient(ctx context.Context, agentID string, in ports.EnrollClientInput) (*domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.FullName == "" || in.TempPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	agent, err := s.repo.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.Role != domain.RoleAgent {
		return nil, domain.ErrForbidden
	}

	user, err := s.newUser(email, in.FullName, in.TempPassword, domain.RoleClient, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	user.EnrolledByAgentID = agent.ID
	user.Country = in.Country
	if user.Country == "" {
		user.Country = agent.Country
	}
	user.City = in.City
	if user.City == "" {
		user.City = agent.City
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	metrics.ClientsEnrolledTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Str("agent_id", agent.ID).Msg("client enrolled by agent")
	return user, nil
}

// Login authenticates against the (email, role) pair. Suspended and pending
// accounts are rejected with their own sentinel errors so callers can show
// distinct messages.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	switch user.Status {
	case domain.StatusSuspended:
		metrics.LoginsTotal.WithLabelValues("suspended").Inc()
		return "", nil, domain.ErrAccountSuspended
	case domain.StatusPending:
		metrics.LoginsTotal.WithLabelValues("pending").Inc()
		return "", nil, domain.ErrAccountPending
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

func (s *AuthService) newUser(email, fullName, password string, role domain.Role, status domain.AccountStatus) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hash),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
