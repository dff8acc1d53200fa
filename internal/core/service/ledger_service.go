package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/api/metrics"
	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// LedgerService owns creation and retrieval of service requests, including
// the agent-visibility join over the user directory.
type LedgerService struct {
	requests ports.RequestRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewLedgerService(requests ports.RequestRepository, users ports.UserRepository, log zerolog.Logger) *LedgerService {
	return &LedgerService{requests: requests, users: users, log: log}
}

// Submit files a new request. The case id and normalized requester email are
// assigned here, and the status always starts pending.
func (s *LedgerService) Submit(ctx context.Context, in ports.SubmitRequestInput) (*domain.ServiceRequest, error) {
	req := &domain.ServiceRequest{
		ID:             generateCaseID(),
		ServiceType:    in.ServiceType,
		SubType:        in.SubType,
		ServiceOption:  in.ServiceOption,
		Country:        in.Country,
		City:           in.City,
		Status:         domain.RequestPending,
		ClientName:     in.ClientName,
		ClientEmail:    domain.NormalizeEmail(in.ClientEmail),
		AdditionalInfo: in.AdditionalInfo,
		AgentID:        in.AgentID,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := s.requests.Insert(ctx, req); err != nil {
		s.log.Error().Err(err).Str("service_type", in.ServiceType).Msg("failed to file request")
		return nil, err
	}

	metrics.RequestsCreatedTotal.WithLabelValues(in.ServiceType).Inc()
	s.log.Info().Str("request_id", req.ID).Str("client_email", req.ClientEmail).Msg("request filed")
	return req, nil
}

func (s *LedgerService) ListAll(ctx context.Context) ([]*domain.ServiceRequest, error) {
	return s.requests.List(ctx)
}

func (s *LedgerService) ListByRequester(ctx context.Context, email string) ([]*domain.ServiceRequest, error) {
	return s.requests.ListByClientEmail(ctx, domain.NormalizeEmail(email))
}

// ListByAgent resolves the normalized emails of the clients the agent
// enrolled, then filters requests by that set.
func (s *LedgerService) ListByAgent(ctx context.Context, agentID string) ([]*domain.ServiceRequest, error) {
	clients, err := s.users.ListByEnrollingAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	emails := make(map[string]struct{}, len(clients))
	for _, c := range clients {
		emails[domain.NormalizeEmail(c.Email)] = struct{}{}
	}
	if len(emails) == 0 {
		return []*domain.ServiceRequest{}, nil
	}

	all, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.ServiceRequest, 0, len(all))
	for _, r := range all {
		if _, ok := emails[domain.NormalizeEmail(r.ClientEmail)]; ok {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// ListFor dispatches on the viewer's role: admins see everything, clients
// their own requests, agents their enrolled clients' requests.
func (s *LedgerService) ListFor(ctx context.Context, v ports.Viewer) ([]*domain.ServiceRequest, error) {
	switch {
	case v.Role.IsAdmin():
		return s.ListAll(ctx)
	case v.Role == domain.RoleAgent:
		return s.ListByAgent(ctx, v.UserID)
	case v.Role == domain.RoleClient:
		return s.ListByRequester(ctx, v.Email)
	}
	return nil, domain.ErrForbidden
}

// Get retrieves one request, enforcing the viewer's visibility scope.
func (s *LedgerService) Get(ctx context.Context, v ports.Viewer, id string) (*domain.ServiceRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case v.Role.IsAdmin():
		return req, nil
	case v.Role == domain.RoleClient:
		if domain.NormalizeEmail(v.Email) == domain.NormalizeEmail(req.ClientEmail) {
			return req, nil
		}
	case v.Role == domain.RoleAgent:
		visible, err := s.ListByAgent(ctx, v.UserID)
		if err != nil {
			return nil, err
		}
		for _, r := range visible {
			if r.ID == req.ID {
				return req, nil
			}
		}
	}
	return nil, domain.ErrForbidden
}

// AdvanceStatus applies an administrative status change, enforcing the
// request state machine.
func (s *LedgerService) AdvanceStatus(ctx context.Context, id string, next domain.RequestStatus) (*domain.ServiceRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, req.Status, next)
	}
	if err := s.requests.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	metrics.RequestTransitionsTotal.WithLabelValues(string(req.Status), string(next)).Inc()
	s.log.Info().Str("request_id", id).Str("from", string(req.Status)).Str("to", string(next)).Msg("request status advanced")
	req.Status = next
	return req, nil
}

// generateCaseID returns a case id in the format EA-XXXXXXXX.
func generateCaseID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("EA-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("EA-%08X", b)
}
