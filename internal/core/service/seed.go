package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// Seed credentials for the demo accounts. Only the bcrypt hash is ever
// stored.
const (
	seedClientPassword = "password123"
	seedAdminPassword  = "super_secret_99"
)

// DefaultCampaigns returns the built-in campaign set used when the store is
// empty or a snapshot carries no usable campaigns.
func DefaultCampaigns() []*domain.AdCampaign {
	return []*domain.AdCampaign{
		{
			ID:          "ad-mtn",
			PartnerName: "MTN Mobile Money",
			ImageURL:    "https://images.unsplash.com/photo-1563013544-824ae1b704d3?q=80&w=1000",
			Link:        "https://www.mtn.cm",
			Placement:   domain.PlacementBanner,
			Category:    "finance",
			BrandColor:  "#FFCC00",
		},
		{
			ID:          "ad-orange",
			PartnerName: "Orange Money",
			ImageURL:    "https://images.unsplash.com/photo-1512428559083-a401c33c2b55?q=80&w=1000",
			Link:        "https://www.orange.ci",
			Placement:   domain.PlacementInline,
			Category:    "finance",
			BrandColor:  "#FF7900",
		},
	}
}

// DefaultSnapshot builds the fixed seed dataset: one client, one super
// admin, one in-progress request, and the default campaigns.
func DefaultSnapshot() (*ports.Snapshot, error) {
	clientHash, err := bcrypt.GenerateFromPassword([]byte(seedClientPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &ports.Snapshot{
		Users: []*domain.User{
			{
				ID:           "u1",
				Email:        "jean@dupont.com",
				FullName:     "Jean Dupont",
				Role:         domain.RoleClient,
				PasswordHash: string(clientHash),
				Status:       domain.StatusActive,
				Avatar:       "https://i.pravatar.cc/150?u=u1",
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			{
				ID:           "admin1",
				Email:        "admin@eadmin.africa",
				FullName:     "Super Admin",
				Role:         domain.RoleAdminSuper,
				PasswordHash: string(adminHash),
				Status:       domain.StatusActive,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		},
		Requests: []*domain.ServiceRequest{
			{
				ID:          "EA-2025-001",
				ServiceType: "Légalisation de diplôme",
				Country:     "Cameroun",
				City:        "Yaoundé",
				Status:      domain.RequestInProgress,
				ClientName:  "Jean Dupont",
				ClientEmail: "jean@dupont.com",
				SubmittedAt: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		Campaigns: DefaultCampaigns(),
	}, nil
}
