package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// RequestRepository defines persistence operations for service requests.
// List and ListByClientEmail return requests most recently submitted first.
type RequestRepository interface {
	Insert(ctx context.Context, req *domain.ServiceRequest) error
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context) ([]*domain.ServiceRequest, error)
	// ListByClientEmail matches on the normalized requester email.
	ListByClientEmail(ctx context.Context, email string) ([]*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
}
