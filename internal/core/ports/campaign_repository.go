package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// CampaignRepository defines persistence operations for ad campaigns.
type CampaignRepository interface {
	Insert(ctx context.Context, c *domain.AdCampaign) error
	FindByID(ctx context.Context, id string) (*domain.AdCampaign, error)
	List(ctx context.Context) ([]*domain.AdCampaign, error)
	ListByPlacement(ctx context.Context, placement domain.Placement) ([]*domain.AdCampaign, error)
	// IncImpressions and IncClicks return domain.ErrCampaignNotFound when id
	// matches nothing; callers decide whether that is worth surfacing.
	IncImpressions(ctx context.Context, id string) error
	IncClicks(ctx context.Context, id string) error
}
