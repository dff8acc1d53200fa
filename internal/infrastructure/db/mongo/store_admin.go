package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// StoreAdmin implements whole-store replacement over the three collections.
// Each collection is cleared and reinserted; callers accept that a crash
// mid-import leaves a partially replaced store and re-import to recover.
type StoreAdmin struct {
	db *mongo.Database
}

func NewStoreAdmin(db *mongo.Database) *StoreAdmin {
	return &StoreAdmin{db: db}
}

func (a *StoreAdmin) ReplaceAll(ctx context.Context, snap *ports.Snapshot) error {
	users := make([]interface{}, 0, len(snap.Users))
	for _, u := range snap.Users {
		users = append(users, toUserDoc(u))
	}
	requests := make([]interface{}, 0, len(snap.Requests))
	for _, r := range snap.Requests {
		requests = append(requests, r)
	}
	campaigns := make([]interface{}, 0, len(snap.Campaigns))
	for _, c := range snap.Campaigns {
		campaigns = append(campaigns, c)
	}

	if err := a.replace(ctx, usersCollection, users); err != nil {
		return err
	}
	if err := a.replace(ctx, requestsCollection, requests); err != nil {
		return err
	}
	return a.replace(ctx, campaignsCollection, campaigns)
}

func (a *StoreAdmin) replace(ctx context.Context, collection string, docs []interface{}) error {
	coll := a.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("fill %s: %w", collection, err)
	}
	return nil
}

// Empty reports whether the users collection holds no documents. Used at
// startup to decide whether the seed dataset should be applied.
func (a *StoreAdmin) Empty(ctx context.Context) (bool, error) {
	n, err := a.db.Collection(usersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n == 0, nil
}
