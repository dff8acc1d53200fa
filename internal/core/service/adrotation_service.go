package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/api/metrics"
	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// AdRotationService implements placement-filtered retrieval, selection, and
// delivery accounting for ad campaigns. Selection is uniform per call with
// no pacing or budget logic.
type AdRotationService struct {
	repo ports.CampaignRepository
	log  zerolog.Logger
}

func NewAdRotationService(repo ports.CampaignRepository, log zerolog.Logger) *AdRotationService {
	return &AdRotationService{repo: repo, log: log}
}

// ListByPlacement returns campaigns for the placement; an empty placement
// returns every campaign.
func (s *AdRotationService) ListByPlacement(ctx context.Context, placement domain.Placement) ([]*domain.AdCampaign, error) {
	if placement == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByPlacement(ctx, placement)
}

// PickForPlacement selects a campaign for the placement. A pinned id that
// matches an eligible campaign always wins; otherwise the pick is uniform
// among eligible campaigns, recomputed on every call.
func (s *AdRotationService) PickForPlacement(ctx context.Context, placement domain.Placement, pinnedID string) (*domain.AdCampaign, error) {
	eligible, err := s.ListByPlacement(ctx, placement)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, domain.ErrCampaignNotFound
	}

	pinned := "false"
	selected := eligible[rand.IntN(len(eligible))]
	if pinnedID != "" {
		for _, c := range eligible {
			if c.ID == pinnedID {
				selected = c
				pinned = "true"
				break
			}
		}
	}

	metrics.AdPicksTotal.WithLabelValues(string(placement), pinned).Inc()
	return selected, nil
}

// RecordImpression increments the impression counter. An unknown campaign is
// silently ignored.
func (s *AdRotationService) RecordImpression(ctx context.Context, id string) error {
	err := s.repo.IncImpressions(ctx, id)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		s.log.Debug().Str("campaign_id", id).Msg("impression for unknown campaign dropped")
		return nil
	}
	if err != nil {
		return err
	}
	metrics.AdImpressionsTotal.Inc()
	return nil
}

// RecordClick increments the click counter. An unknown campaign is silently ignored.
func (s *AdRotationService) RecordClick(ctx context.Context, id string) error {
	err := s.repo.IncClicks(ctx, id)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		s.log.Debug().Str("campaign_id", id).Msg("click for unknown campaign dropped")
		return nil
	}
	if err != nil {
		return err
	}
	metrics.AdClicksTotal.Inc()
	return nil
}

// CreateCampaign registers a new campaign with zeroed counters.
func (s *AdRotationService) CreateCampaign(ctx context.Context, in ports.CreateCampaignInput) (*domain.AdCampaign, error) {
	if !domain.ValidPlacement(in.Placement) {
		return nil, fmt.Errorf("invalid placement %q", in.Placement)
	}

	c := &domain.AdCampaign{
		ID:          generateCampaignID(),
		PartnerName: in.PartnerName,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		Placement:   in.Placement,
		Category:    in.Category,
		BrandColor:  in.BrandColor,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Str("campaign_id", c.ID).Str("placement", string(c.Placement)).Msg("campaign created")
	return c, nil
}

// generateCampaignID returns a campaign id in the format ad-XXXXXXXX.
func generateCampaignID() string {
	b := make([]byte, 4)
	if _, err := crand.Read(b); err != nil {
		return fmt.Sprintf("ad-%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ad-%08x", b)
}
