package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// CreateCampaignInput carries the data for registering a new ad campaign.
type CreateCampaignInput struct {
	PartnerName string
	ImageURL    string
	Link        string
	Placement   domain.Placement
	Category    string
	BrandColor  string
}

// AdRotationService owns placement-filtered retrieval, selection, and
// delivery accounting for ad campaigns.
type AdRotationService interface {
	// ListByPlacement returns campaigns for the placement; an empty placement
	// returns every campaign.
	ListByPlacement(ctx context.Context, placement domain.Placement) ([]*domain.AdCampaign, error)
	// PickForPlacement selects a campaign for the placement. When pinnedID
	// names an eligible campaign it always wins; otherwise the pick is
	// uniform among eligible campaigns, recomputed on every call.
	PickForPlacement(ctx context.Context, placement domain.Placement, pinnedID string) (*domain.AdCampaign, error)
	RecordImpression(ctx context.Context, id string) error
	RecordClick(ctx context.Context, id string) error
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.AdCampaign, error)
}
