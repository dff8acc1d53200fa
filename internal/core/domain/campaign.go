package domain

import "errors"

// Placement is the visual slot classification an ad campaign targets.
type Placement string

const (
	PlacementBanner  Placement = "banner"
	PlacementSidebar Placement = "sidebar"
	PlacementInline  Placement = "inline"
)

// ValidPlacement reports whether p is one of the known placements.
func ValidPlacement(p Placement) bool {
	switch p {
	case PlacementBanner, PlacementSidebar, PlacementInline:
		return true
	}
	return false
}

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignStats holds delivery counters for a campaign.
type CampaignStats struct {
	Impressions int64 `json:"impressions" bson:"impressions"`
	Clicks      int64 `json:"clicks" bson:"clicks"`
}

// AdCampaign is a sponsored-content record rotated in designated placements.
type AdCampaign struct {
	ID          string        `json:"id" bson:"_id"`
	PartnerName string        `json:"partner_name" bson:"partner_name"`
	ImageURL    string        `json:"image_url" bson:"image_url"`
	Link        string        `json:"link" bson:"link"`
	Placement   Placement     `json:"placement" bson:"placement"`
	Category    string        `json:"category" bson:"category"`
	BrandColor  string        `json:"brand_color" bson:"brand_color"`
	Stats       CampaignStats `json:"stats" bson:"stats"`
}
