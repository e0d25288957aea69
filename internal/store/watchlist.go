package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/linknest/linknest/backend/internal/metrics"
	"github.com/linknest/linknest/backend/internal/models"
)

// watchlistStoreName is the blob key the serialized state lives under.
const watchlistStoreName = "watchlist-storage"

type watchlistSnapshot struct {
	Watchlist []models.WatchlistItem `json:"watchlist"`
}

// WatchlistStore owns the set of flagged assets. The item id equals the
// asset id, so adds are idempotent: at most one entry per asset exists.
type WatchlistStore struct {
	mu        sync.Mutex
	persister Persister
	items     []models.WatchlistItem
}

// NewWatchlistStore rehydrates the store from its persisted snapshot,
// or starts empty.
func NewWatchlistStore(persister Persister) *WatchlistStore {
	s := &WatchlistStore{
		persister: persister,
		items:     []models.WatchlistItem{},
	}

	data, err := persister.Load(watchlistStoreName)
	if err != nil {
		log.Printf("Failed to load watchlist snapshot, starting fresh: %v", err)
		return s
	}
	if data == nil {
		return s
	}

	var snapshot watchlistSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("Malformed watchlist snapshot, starting fresh: %v", err)
		return s
	}
	if snapshot.Watchlist != nil {
		s.items = snapshot.Watchlist
	}
	metrics.WatchlistSize.Set(float64(len(s.items)))
	return s
}

// persist serializes the full snapshot. Called with the lock held.
func (s *WatchlistStore) persist() {
	metrics.StoreWritesTotal.WithLabelValues(watchlistStoreName).Inc()
	metrics.WatchlistSize.Set(float64(len(s.items)))

	data, err := json.Marshal(watchlistSnapshot{Watchlist: s.items})
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues(watchlistStoreName).Inc()
		log.Printf("Failed to serialize watchlist snapshot: %v", err)
		return
	}
	if err := s.persister.Save(watchlistStoreName, data); err != nil {
		metrics.StoreWriteErrors.WithLabelValues(watchlistStoreName).Inc()
		log.Printf("Failed to persist watchlist snapshot: %v", err)
	}
}

// Items returns a copy of the watchlist in insertion order.
func (s *WatchlistStore) Items() []models.WatchlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.WatchlistItem, len(s.items))
	copy(items, s.items)
	return items
}

// Add appends a new entry carrying the given snapshot. No-op if the
// asset is already on the watchlist.
func (s *WatchlistStore) Add(crypto models.Cryptocurrency) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == crypto.ID {
			return
		}
	}
	s.items = append(s.items, models.WatchlistItem{
		ID:             crypto.ID,
		Cryptocurrency: crypto,
		AddedAt:        time.Now(),
	})
	s.persist()
}

// Remove deletes the matching entry. No-op if absent.
func (s *WatchlistStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Contains reports whether the asset is on the watchlist.
func (s *WatchlistStore) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// UpdateAlertPrice sets the alert price on the matching entry. No-op if
// absent.
func (s *WatchlistStore) UpdateAlertPrice(id string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].AlertPrice = &price
			s.persist()
			return
		}
	}
}

// RefreshSnapshots replaces the embedded market snapshot of every entry
// that appears in coins, keeping addedAt and alertPrice. Returns the
// number of entries updated; persists once if anything changed.
func (s *WatchlistStore) RefreshSnapshots(coins []models.Cryptocurrency) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]models.Cryptocurrency, len(coins))
	for _, coin := range coins {
		byID[coin.ID] = coin
	}

	updated := 0
	for i := range s.items {
		if coin, ok := byID[s.items[i].ID]; ok {
			s.items[i].Cryptocurrency = coin
			updated++
		}
	}
	if updated > 0 {
		s.persist()
	}
	return updated
}
