package ports

import "context"

// StoreAdmin replaces the whole store content in one administrative
// operation. Used by snapshot import and reseeding; regular traffic goes
// through the per-collection repositories.
type StoreAdmin interface {
	ReplaceAll(ctx context.Context, snap *Snapshot) error
}
