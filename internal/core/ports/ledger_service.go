package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// SubmitRequestInput carries all data needed to file a new service request.
type SubmitRequestInput struct {
	ServiceType    string
	SubType        string
	ServiceOption  string
	Country        string
	City           string
	ClientName     string
	ClientEmail    string
	AdditionalInfo string
	// AgentID links the request to the agent who enrolled the submitting
	// client, when there is one.
	AgentID string
}

// Viewer identifies the authenticated caller for role-scoped reads.
type Viewer struct {
	UserID string
	Email  string
	Role   domain.Role
}

// LedgerService owns creation and retrieval of service requests, including
// the agent-visibility join.
type LedgerService interface {
	Submit(ctx context.Context, in SubmitRequestInput) (*domain.ServiceRequest, error)
	ListAll(ctx context.Context) ([]*domain.ServiceRequest, error)
	ListByRequester(ctx context.Context, email string) ([]*domain.ServiceRequest, error)
	// ListByAgent returns the requests filed by clients the agent enrolled,
	// matched on normalized email.
	ListByAgent(ctx context.Context, agentID string) ([]*domain.ServiceRequest, error)
	// ListFor dispatches on the viewer's role: admins see everything, clients
	// their own requests, agents their enrolled clients' requests.
	ListFor(ctx context.Context, v Viewer) ([]*domain.ServiceRequest, error)
	// Get retrieves one request, enforcing the same visibility rules.
	Get(ctx context.Context, v Viewer, id string) (*domain.ServiceRequest, error)
	// AdvanceStatus applies an administrative status change, enforcing the
	// request state machine.
	AdvanceStatus(ctx context.Context, id string, next domain.RequestStatus) (*domain.ServiceRequest, error)
}
