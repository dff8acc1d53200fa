package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// DirectoryService implements administrative operations over the user
// directory, enforcing the account state machine.
type DirectoryService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: log}
}

func (s *DirectoryService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *DirectoryService) FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	return s.repo.FindByEmailAndRole(ctx, email, role)
}

// ApproveUser moves a pending account to active.
func (s *DirectoryService) ApproveUser(ctx context.Context, id string) (*domain.User, error) {
	return s.SetStatus(ctx, id, domain.StatusActive)
}

// SetStatus applies an explicit status change. Transitions outside the
// account state machine are rejected.
func (s *DirectoryService) SetStatus(ctx context.Context, id string, status domain.AccountStatus) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status == status {
		return user, nil
	}
	if !user.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, user.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("from", string(user.Status)).Str("to", string(status)).Msg("account status changed")
	user.Status = status
	return user, nil
}

// ToggleActiveSuspended flips an account between active and suspended.
// Toggling a pending account is an illegal transition, not a silent
// reinterpretation.
func (s *DirectoryService) ToggleActiveSuspended(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var next domain.AccountStatus
	switch user.Status {
	case domain.StatusActive:
		next = domain.StatusSuspended
	case domain.StatusSuspended:
		next = domain.StatusActive
	default:
		return nil, fmt.Errorf("%w (cannot toggle a %s account)", domain.ErrInvalidTransition, user.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("from", string(user.Status)).Str("to", string(next)).Msg("account toggled")
	user.Status = next
	return user, nil
}

func (s *DirectoryService) ChangePassword(ctx context.Context, id, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, id, string(hash))
}

// DeleteUser removes the account permanently. Deleting an unknown id is a no-op.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *DirectoryService) ListClientsOfAgent(ctx context.Context, agentID string) ([]*domain.User, error) {
	return s.repo.ListByEnrollingAgent(ctx, agentID)
}
