package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

type stubStoreAdmin struct {
	last *ports.Snapshot
}

func (s *stubStoreAdmin) ReplaceAll(_ context.Context, snap *ports.Snapshot) error {
	s.last = snap
	return nil
}

func newTestSnapshotService() (*SnapshotService, *stubUserRepo, *stubRequestRepo, *stubCampaignRepo, *stubStoreAdmin) {
	users := newStubUserRepo()
	requests := &stubRequestRepo{}
	campaigns := &stubCampaignRepo{}
	store := &stubStoreAdmin{}
	svc := NewSnapshotService(users, requests, campaigns, store, zerolog.Nop())
	return svc, users, requests, campaigns, store
}

func TestSnapshotService_Export(t *testing.T) {
	svc, users, requests, campaigns, _ := newTestSnapshotService()
	users.users["u1"] = &domain.User{ID: "u1", Email: "jean@dupont.com", Role: domain.RoleClient}
	requests.requests = []*domain.ServiceRequest{{ID: "EA-1", ClientEmail: "jean@dupont.com"}}
	campaigns.campaigns = []*domain.AdCampaign{{ID: "ad-a", Placement: domain.PlacementBanner}}

	snap, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(snap.Users) != 1 || len(snap.Requests) != 1 || len(snap.Campaigns) != 1 {
		t.Fatalf("unexpected snapshot sizes: %d/%d/%d", len(snap.Users), len(snap.Requests), len(snap.Campaigns))
	}
}

func TestSnapshotService_Import(t *testing.T) {
	svc, _, _, _, store := newTestSnapshotService()

	payload := []byte(`{
		"users":[{"id":"u1","email":"Jean@Dupont.com","full_name":"Jean Dupont","role":"client","status":"active"}],
		"requests":[{"id":"EA-1","client_email":"JEAN@dupont.com","status":"pending"}],
		"ads":[{"id":"ad-x","partner_name":"X","placement":"banner"}]
	}`)

	snap, err := svc.Import(context.Background(), payload)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if store.last != snap {
		t.Fatalf("store not replaced with decoded snapshot")
	}
	if snap.Users[0].Email != "jean@dupont.com" {
		t.Fatalf("imported email not normalized: %q", snap.Users[0].Email)
	}
	if snap.Requests[0].ClientEmail != "jean@dupont.com" {
		t.Fatalf("imported requester email not normalized: %q", snap.Requests[0].ClientEmail)
	}
	if len(snap.Campaigns) != 1 || snap.Campaigns[0].ID != "ad-x" {
		t.Fatalf("unexpected campaigns: %+v", snap.Campaigns)
	}
}

func TestSnapshotService_ResetToDefaults(t *testing.T) {
	svc, _, _, _, store := newTestSnapshotService()

	if err := svc.ResetToDefaults(context.Background()); err != nil {
		t.Fatalf("ResetToDefaults returned error: %v", err)
	}
	if store.last == nil {
		t.Fatalf("store not reseeded")
	}

	emails := map[string]bool{}
	for _, u := range store.last.Users {
		emails[u.Email] = true
		if u.PasswordHash == "" {
			t.Fatalf("seed account %s has no password hash", u.Email)
		}
		if u.PasswordHash == "password123" || u.PasswordHash == "super_secret_99" {
			t.Fatalf("seed password stored in plaintext")
		}
	}
	if !emails["jean@dupont.com"] || !emails["admin@eadmin.africa"] {
		t.Fatalf("expected seed accounts, got %v", emails)
	}
	if len(store.last.Campaigns) != 2 {
		t.Fatalf("expected default campaign set, got %d", len(store.last.Campaigns))
	}
}

func TestDecodeSnapshot_CorruptedCampaigns(t *testing.T) {
	payload := []byte(`{
		"users":[{"id":"u1","email":"jean@dupont.com","role":"client","status":"active"}],
		"requests":[],
		"ads":"not-an-array"
	}`)

	snap := DecodeSnapshot(payload)
	if len(snap.Users) != 1 {
		t.Fatalf("valid collections must survive a corrupted sibling: %+v", snap.Users)
	}
	if len(snap.Campaigns) != len(DefaultCampaigns()) {
		t.Fatalf("corrupted campaigns must fall back to the default set, got %d", len(snap.Campaigns))
	}
	if snap.Campaigns[0].ID != "ad-mtn" {
		t.Fatalf("unexpected default campaign: %+v", snap.Campaigns[0])
	}
}

func TestDecodeSnapshot_Garbage(t *testing.T) {
	snap := DecodeSnapshot([]byte(`{{{`))
	if snap.Users == nil || snap.Requests == nil || snap.Campaigns == nil {
		t.Fatalf("decode must never return nil collections")
	}
	if len(snap.Users) != 0 || len(snap.Requests) != 0 {
		t.Fatalf("garbage payload must decode to empty collections")
	}
	if len(snap.Campaigns) != len(DefaultCampaigns()) {
		t.Fatalf("garbage payload must keep the default campaign set")
	}
}

func TestDecodeSnapshot_NeverExposesCredentials(t *testing.T) {
	// password_hash is not part of the wire format, so a crafted payload
	// cannot smuggle one in through the public JSON shape
	payload := []byte(`{"users":[{"id":"u1","email":"x@example.com","role":"client","password_hash":"sneaky"}]}`)
	snap := DecodeSnapshot(payload)
	if len(snap.Users) != 1 {
		t.Fatalf("expected one user, got %d", len(snap.Users))
	}
	if snap.Users[0].PasswordHash != "" {
		t.Fatalf("credential must not round-trip through snapshots")
	}
}
