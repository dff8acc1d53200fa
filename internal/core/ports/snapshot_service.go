package ports

import (
	"context"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

// Snapshot is the full logical state of the store: the three collections.
type Snapshot struct {
	Users     []*domain.User           `json:"users"`
	Requests  []*domain.ServiceRequest `json:"requests"`
	Campaigns []*domain.AdCampaign     `json:"ads"`
}

// SnapshotService exports, imports, and reseeds the full store. Import is
// lenient: a missing or malformed collection in the payload is replaced by
// an empty one, except campaigns which fall back to the built-in default
// set, so a corrupted snapshot never makes the store unusable.
type SnapshotService interface {
	Export(ctx context.Context) (*Snapshot, error)
	Import(ctx context.Context, raw []byte) (*Snapshot, error)
	ResetToDefaults(ctx context.Context) error
}
