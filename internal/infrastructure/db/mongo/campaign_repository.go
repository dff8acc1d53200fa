package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
)

const campaignsCollection = "campaigns"

// CampaignRepository persists ad campaigns in MongoDB. Counter updates use
// $inc so concurrent impressions never lose increments.
type CampaignRepository struct {
	coll *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{coll: db.Collection(campaignsCollection)}
}

func (r *CampaignRepository) Insert(ctx context.Context, c *domain.AdCampaign) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*domain.AdCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.AdCampaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return &c, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]*domain.AdCampaign, error) {
	return r.find(ctx, bson.M{})
}

func (r *CampaignRepository) ListByPlacement(ctx context.Context, placement domain.Placement) ([]*domain.AdCampaign, error) {
	return r.find(ctx, bson.M{"placement": string(placement)})
}

func (r *CampaignRepository) find(ctx context.Context, filter bson.M) ([]*domain.AdCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cur.Close(ctx)

	campaigns := []*domain.AdCampaign{}
	for cur.Next(ctx) {
		var c domain.AdCampaign
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode campaign: %w", err)
		}
		campaigns = append(campaigns, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) IncImpressions(ctx context.Context, id string) error {
	return r.inc(ctx, id, "stats.impressions")
}

func (r *CampaignRepository) IncClicks(ctx context.Context, id string) error {
	return r.inc(ctx, id, "stats.clicks")
}

func (r *CampaignRepository) inc(ctx context.Context, id, field string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return fmt.Errorf("increment %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// EnsureIndexes creates the placement lookup index.
func (r *CampaignRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "placement", Value: 1}},
	})
	return err
}
