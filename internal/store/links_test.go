package store

import (
	"encoding/json"
	"testing"

	"github.com/linknest/linknest/backend/internal/models"
)

// memoryPersister keeps blobs in a map for tests.
type memoryPersister struct {
	blobs map[string][]byte
}

func newMemoryPersister() *memoryPersister {
	return &memoryPersister{blobs: map[string][]byte{}}
}

func (m *memoryPersister) Load(name string) ([]byte, error) {
	return m.blobs[name], nil
}

func (m *memoryPersister) Save(name string, data []byte) error {
	m.blobs[name] = data
	return nil
}

func TestAddLinkAssignsDenseOrder(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())

	a := s.AddLink("A", "http://a")
	b := s.AddLink("B", "http://b")

	if a.Order != 0 || b.Order != 1 {
		t.Errorf("Expected orders 0 and 1, got %d and %d", a.Order, b.Order)
	}
	if a.Clicks != 0 || !a.IsActive {
		t.Errorf("New link should start active with zero clicks")
	}

	links := s.Links()
	if len(links) != 2 || links[0].Title != "A" || links[1].Title != "B" {
		t.Errorf("Expected [A, B] sorted by order, got %+v", links)
	}
}

func TestReorderLinksRenumbersAll(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())
	a := s.AddLink("A", "http://a")
	b := s.AddLink("B", "http://b")

	s.ReorderLinks([]string{b.ID, a.ID})

	links := s.Links()
	if links[0].ID != b.ID || links[0].Order != 0 {
		t.Errorf("Expected B first with order 0, got %+v", links[0])
	}
	if links[1].ID != a.ID || links[1].Order != 1 {
		t.Errorf("Expected A second with order 1, got %+v", links[1])
	}
}

func TestDeleteLinkKeepsOrderGap(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())
	a := s.AddLink("A", "http://a")
	b := s.AddLink("B", "http://b")
	c := s.AddLink("C", "http://c")

	s.DeleteLink(b.ID)

	links := s.Links()
	if len(links) != 2 {
		t.Fatalf("Expected 2 links after delete, got %d", len(links))
	}
	// Remaining entries are not renumbered; relative order still holds.
	if links[0].ID != a.ID || links[0].Order != 0 {
		t.Errorf("Expected A to keep order 0, got %+v", links[0])
	}
	if links[1].ID != c.ID || links[1].Order != 2 {
		t.Errorf("Expected C to keep order 2, got %+v", links[1])
	}
}

func TestIncrementClicksDoesNotRestamp(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())
	link := s.AddLink("A", "http://a")
	before := link.UpdatedAt

	s.IncrementLinkClicks(link.ID)
	s.IncrementLinkClicks(link.ID)

	got := s.Links()[0]
	if got.Clicks != 2 {
		t.Errorf("Expected 2 clicks, got %d", got.Clicks)
	}
	if !got.UpdatedAt.Equal(before) {
		t.Errorf("Click-through must not restamp updatedAt")
	}
}

func TestUpdateLinkMissingIDIsNoop(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())
	s.AddLink("A", "http://a")

	title := "changed"
	s.UpdateLink("no-such-id", models.UpdateLinkRequest{Title: &title})
	s.DeleteLink("no-such-id")
	s.ToggleLinkActive("no-such-id")
	s.IncrementLinkClicks("no-such-id")

	links := s.Links()
	if len(links) != 1 || links[0].Title != "A" {
		t.Errorf("Operations on a missing id must leave state unchanged, got %+v", links)
	}
}

func TestToggleLinkActive(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())
	link := s.AddLink("A", "http://a")

	s.ToggleLinkActive(link.ID)
	if s.Links()[0].IsActive {
		t.Error("Expected link to be inactive after toggle")
	}
	s.ToggleLinkActive(link.ID)
	if !s.Links()[0].IsActive {
		t.Error("Expected link to be active after second toggle")
	}
}

func TestUpdateProfileDefaultsLegacySnapshot(t *testing.T) {
	persister := newMemoryPersister()
	// A profile persisted before socialLinks/templateStyle existed.
	legacy := map[string]any{
		"links": []any{},
		"profile": map[string]any{
			"username":    "olduser",
			"displayName": "Old Name",
		},
	}
	data, _ := json.Marshal(legacy)
	persister.blobs[linkStoreName] = data

	s := NewLinkStore(persister)

	bio := "hi"
	profile := s.UpdateProfile(models.UpdateProfileRequest{Bio: &bio})

	if profile.Bio != "hi" {
		t.Errorf("Expected bio to be updated, got %q", profile.Bio)
	}
	if profile.Username != "olduser" {
		t.Errorf("Prior fields must be preserved, got username %q", profile.Username)
	}
	if profile.SocialLinks == nil || len(profile.SocialLinks) != 0 {
		t.Errorf("socialLinks must default to empty, got %v", profile.SocialLinks)
	}
	if profile.TemplateStyle != models.TemplateClassic {
		t.Errorf("templateStyle must default to classic, got %q", profile.TemplateStyle)
	}
}

func TestSocialLinkLifecycle(t *testing.T) {
	s := NewLinkStore(newMemoryPersister())

	social := s.AddSocialLink(models.PlatformGitHub, "https://github.com/me")
	if !social.IsActive {
		t.Error("New social link should start active")
	}

	url := "https://github.com/other"
	s.UpdateSocialLink(social.ID, models.UpdateSocialLinkRequest{URL: &url})
	if got := s.Profile().SocialLinks[0].URL; got != url {
		t.Errorf("Expected updated URL, got %s", got)
	}

	s.ToggleSocialActive(social.ID)
	if s.Profile().SocialLinks[0].IsActive {
		t.Error("Expected social link to be inactive after toggle")
	}

	s.DeleteSocialLink(social.ID)
	if len(s.Profile().SocialLinks) != 0 {
		t.Error("Expected social link to be removed")
	}
}

func TestLinkStoreRoundTrip(t *testing.T) {
	persister := newMemoryPersister()
	s := NewLinkStore(persister)
	s.AddLink("A", "http://a")
	s.AddLink("B", "http://b")
	s.AddSocialLink(models.PlatformTwitter, "https://twitter.com/me")
	name := "Rehydrated"
	s.UpdateProfile(models.UpdateProfileRequest{DisplayName: &name})

	reloaded := NewLinkStore(persister)

	want, _ := json.Marshal(linkSnapshot{Links: s.Links(), Profile: s.Profile()})
	got, _ := json.Marshal(linkSnapshot{Links: reloaded.Links(), Profile: reloaded.Profile()})
	if string(want) != string(got) {
		t.Errorf("Round-trip mismatch:\nwant %s\ngot  %s", want, got)
	}
}

func TestMalformedSnapshotStartsFresh(t *testing.T) {
	persister := newMemoryPersister()
	persister.blobs[linkStoreName] = []byte("{not json")

	s := NewLinkStore(persister)
	if len(s.Links()) != 0 {
		t.Error("Malformed snapshot should yield an empty store")
	}
	if s.Profile().Username != "mylinks" {
		t.Error("Malformed snapshot should yield the default profile")
	}
}
