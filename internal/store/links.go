package store

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linknest/linknest/backend/internal/metrics"
	"github.com/linknest/linknest/backend/internal/models"
)

// linkStoreName is the blob key the serialized state lives under.
const linkStoreName = "linknest-storage"

// linkSnapshot is the persisted shape of the link page store.
type linkSnapshot struct {
	Links   []models.Link      `json:"links"`
	Profile models.UserProfile `json:"profile"`
}

// LinkStore owns the link page state: the ordered link collection and
// the singleton user profile with its embedded social links. Mutations
// on a missing id are silent no-ops. Every mutation serializes the full
// snapshot; a failed write is logged and counted, never surfaced.
type LinkStore struct {
	mu        sync.Mutex
	persister Persister
	links     []models.Link
	profile   models.UserProfile
}

// NewLinkStore rehydrates the store from its persisted snapshot, or
// starts fresh with the default profile. Profiles persisted before the
// socialLinks/templateStyle fields existed are defaulted here once.
func NewLinkStore(persister Persister) *LinkStore {
	s := &LinkStore{
		persister: persister,
		links:     []models.Link{},
		profile:   models.DefaultProfile(),
	}

	data, err := persister.Load(linkStoreName)
	if err != nil {
		log.Printf("Failed to load link store snapshot, starting fresh: %v", err)
		return s
	}
	if data == nil {
		return s
	}

	var snapshot linkSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Malformed link store snapshot, starting fresh: %v", err)
		return s
	}

	if snapshot.Links != nil {
		s.links = snapshot.Links
	}
	s.profile = normalizeProfile(snapshot.Profile)
	metrics.LinksTotal.Set(float64(len(s.links)))
	return s
}

// normalizeProfile defaults fields a legacy snapshot may lack.
func normalizeProfile(profile models.UserProfile) models.UserProfile {
	if profile.SocialLinks == nil {
		profile.SocialLinks = []models.SocialLink{}
	}
	if profile.TemplateStyle == "" {
		profile.TemplateStyle = models.TemplateClassic
	}
	return profile
}

// persist serializes the full snapshot. Called with the lock held.
func (s *LinkStore) persist() {
	metrics.StoreWritesTotal.WithLabelValues(linkStoreName).Inc()
	metrics.LinksTotal.Set(float64(len(s.links)))

	data, err := json.Marshal(linkSnapshot{Links: s.links, Profile: s.profile})
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues(linkStoreName).Inc()
		log.Printf("Failed to serialize link store snapshot: %v", err)
		return
	}
	if err := s.persister.Save(linkStoreName, data); err != nil {
		metrics.StoreWriteErrors.WithLabelValues(linkStoreName).Inc()
		log.Printf("Failed to persist link store snapshot: %v", err)
	}
}

// Links returns the links sorted by order value. A gap left by a delete
// is harmless: relative order is what defines the display sequence.
func (s *LinkStore) Links() []models.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make([]models.Link, len(s.links))
	copy(links, s.links)
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Order < links[j].Order
	})
	return links
}

// AddLink appends a new link at the end of the display sequence.
// Duplicate titles and URLs are allowed.
func (s *LinkStore) AddLink(title, url string) models.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	link := models.Link{
		ID:        uuid.NewString(),
		Title:     title,
		URL:       url,
		Order:     len(s.links),
		IsActive:  true,
		Clicks:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.links = append(s.links, link)
	s.persist()
	return link
}

// UpdateLink merges the provided fields into the matching link and
// restamps its update time. No-op if id is absent.
func (s *LinkStore) UpdateLink(id string, req models.UpdateLinkRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.links[i].Title = *req.Title
		}
		if req.URL != nil {
			s.links[i].URL = *req.URL
		}
		if req.IsActive != nil {
			s.links[i].IsActive = *req.IsActive
		}
		s.links[i].UpdatedAt = time.Now()
		s.persist()
		return
	}
}

// DeleteLink removes the matching link. Remaining order values are not
// renumbered; the gap is closed by the next ReorderLinks call.
func (s *LinkStore) DeleteLink(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID == id {
			s.links = append(s.links[:i], s.links[i+1:]...)
			s.persist()
			return
		}
	}
}

// ReorderLinks renumbers every listed link to its index in ids and
// restamps all of them, restoring a contiguous 0..N-1 order.
func (s *LinkStore) ReorderLinks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	changed := false
	for index, id := range ids {
		for i := range s.links {
			if s.links[i].ID == id {
				s.links[i].Order = index
				s.links[i].UpdatedAt = now
				changed = true
				break
			}
		}
	}
	if changed {
		s.persist()
	}
}

// ToggleLinkActive flips the active flag and restamps the update time.
func (s *LinkStore) ToggleLinkActive(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID == id {
			s.links[i].IsActive = !s.links[i].IsActive
			s.links[i].UpdatedAt = time.Now()
			s.persist()
			return
		}
	}
}

// IncrementLinkClicks bumps the click counter. A click-through is not a
// content edit, so the update time is left alone.
func (s *LinkStore) IncrementLinkClicks(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID == id {
			s.links[i].Clicks++
			s.persist()
			return
		}
	}
}

// Profile returns the current user profile.
func (s *LinkStore) Profile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile shallow-merges the provided fields into the profile.
// Missing socialLinks and templateStyle are re-defaulted before the
// merge, guarding against profiles created before those fields existed.
func (s *LinkStore) UpdateProfile(req models.UpdateProfileRequest) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = normalizeProfile(s.profile)

	if req.Username != nil {
		s.profile.Username = *req.Username
	}
	if req.DisplayName != nil {
		s.profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		s.profile.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		s.profile.AvatarURL = *req.AvatarURL
	}
	if req.Theme != nil {
		s.profile.Theme = *req.Theme
	}
	if req.PrimaryColor != nil {
		s.profile.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		s.profile.SecondaryColor = *req.SecondaryColor
	}
	if req.FontFamily != nil {
		s.profile.FontFamily = *req.FontFamily
	}
	if req.TemplateStyle != nil {
		s.profile.TemplateStyle = *req.TemplateStyle
	}

	s.persist()
	return s.profile
}

// AddSocialLink appends a social entry to the profile.
func (s *LinkStore) AddSocialLink(platform models.Platform, url string) models.SocialLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = normalizeProfile(s.profile)
	social := models.SocialLink{
		ID:       uuid.NewString(),
		Platform: platform,
		URL:      url,
		IsActive: true,
	}
	s.profile.SocialLinks = append(s.profile.SocialLinks, social)
	s.persist()
	return social
}

// UpdateSocialLink merges the provided fields into the matching social
// entry. No-op if id is absent.
func (s *LinkStore) UpdateSocialLink(id string, req models.UpdateSocialLinkRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profile.SocialLinks {
		if s.profile.SocialLinks[i].ID != id {
			continue
		}
		if req.Platform != nil {
			s.profile.SocialLinks[i].Platform = *req.Platform
		}
		if req.URL != nil {
			s.profile.SocialLinks[i].URL = *req.URL
		}
		if req.IsActive != nil {
			s.profile.SocialLinks[i].IsActive = *req.IsActive
		}
		s.persist()
		return
	}
}

// DeleteSocialLink removes the matching social entry.
func (s *LinkStore) DeleteSocialLink(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profile.SocialLinks {
		if s.profile.SocialLinks[i].ID == id {
			s.profile.SocialLinks = append(s.profile.SocialLinks[:i], s.profile.SocialLinks[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleSocialActive flips the active flag on the matching social entry.
func (s *LinkStore) ToggleSocialActive(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profile.SocialLinks {
		if s.profile.SocialLinks[i].ID == id {
			s.profile.SocialLinks[i].IsActive = !s.profile.SocialLinks[i].IsActive
			s.persist()
			return
		}
	}
}
