package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// SnapshotService exports, imports, and reseeds the full store.
type SnapshotService struct {
	users     ports.UserRepository
	requests  ports.RequestRepository
	campaigns ports.CampaignRepository
	store     ports.StoreAdmin
	log       zerolog.Logger
}

func NewSnapshotService(
	users ports.UserRepository,
	requests ports.RequestRepository,
	campaigns ports.CampaignRepository,
	store ports.StoreAdmin,
	log zerolog.Logger,
) *SnapshotService {
	return &SnapshotService{
		users:     users,
		requests:  requests,
		campaigns: campaigns,
		store:     store,
		log:       log,
	}
}

// Export returns the full three-collection state.
func (s *SnapshotService) Export(ctx context.Context) (*ports.Snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export requests: %w", err)
	}
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export campaigns: %w", err)
	}
	return &ports.Snapshot{Users: users, Requests: requests, Campaigns: campaigns}, nil
}

// Import replaces the store with the decoded payload. Decoding is lenient:
// a missing or malformed collection becomes empty, except campaigns which
// fall back to the built-in default set.
func (s *SnapshotService) Import(ctx context.Context, raw []byte) (*ports.Snapshot, error) {
	snap := DecodeSnapshot(raw)
	if err := s.store.ReplaceAll(ctx, snap); err != nil {
		return nil, fmt.Errorf("import snapshot: %w", err)
	}

	s.log.Info().
		Int("users", len(snap.Users)).
		Int("requests", len(snap.Requests)).
		Int("campaigns", len(snap.Campaigns)).
		Msg("snapshot imported")
	return snap, nil
}

// ResetToDefaults overwrites the store with the fixed seed dataset.
func (s *SnapshotService) ResetToDefaults(ctx context.Context) error {
	snap, err := DefaultSnapshot()
	if err != nil {
		return err
	}
	if err := s.store.ReplaceAll(ctx, snap); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	s.log.Info().Msg("store reset to defaults")
	return nil
}

// DecodeSnapshot parses a snapshot payload without ever failing: each
// collection is decoded independently and substituted on error. Campaigns
// substitute the default set so ad placements stay populated.
func DecodeSnapshot(raw []byte) *ports.Snapshot {
	var envelope struct {
		Users     json.RawMessage `json:"users"`
		Requests  json.RawMessage `json:"requests"`
		Campaigns json.RawMessage `json:"ads"`
	}
	_ = json.Unmarshal(raw, &envelope)

	snap := &ports.Snapshot{
		Users:     []*domain.User{},
		Requests:  []*domain.ServiceRequest{},
		Campaigns: DefaultCampaigns(),
	}

	var users []*domain.User
	if err := json.Unmarshal(envelope.Users, &users); err == nil && users != nil {
		snap.Users = users
	}
	var requests []*domain.ServiceRequest
	if err := json.Unmarshal(envelope.Requests, &requests); err == nil && requests != nil {
		snap.Requests = requests
	}
	var campaigns []*domain.AdCampaign
	if err := json.Unmarshal(envelope.Campaigns, &campaigns); err == nil && campaigns != nil {
		snap.Campaigns = campaigns
	}

	for _, u := range snap.Users {
		u.Email = domain.NormalizeEmail(u.Email)
	}
	for _, r := range snap.Requests {
		r.ClientEmail = domain.NormalizeEmail(r.ClientEmail)
	}
	return snap
}
