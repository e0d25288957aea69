package store

import (
	"encoding/json"
	"testing"

	"github.com/linknest/linknest/backend/internal/models"
)

func testCoin(id string, price float64) models.Cryptocurrency {
	return models.Cryptocurrency{
		ID:           id,
		Symbol:       id[:3],
		Name:         id,
		CurrentPrice: price,
	}
}

func TestAddToWatchlistIsIdempotent(t *testing.T) {
	s := NewWatchlistStore(newMemoryPersister())

	s.Add(testCoin("bitcoin", 65000))
	s.Add(testCoin("bitcoin", 66000))

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 entry after duplicate add, got %d", len(items))
	}
	// The first snapshot wins; a duplicate add is a full no-op.
	if items[0].Cryptocurrency.CurrentPrice != 65000 {
		t.Errorf("Duplicate add must not replace the snapshot, got %v", items[0].Cryptocurrency.CurrentPrice)
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	s := NewWatchlistStore(newMemoryPersister())
	s.Add(testCoin("bitcoin", 65000))
	s.Add(testCoin("ethereum", 3450))

	s.Remove("bitcoin")
	if len(s.Items()) != 1 || s.Items()[0].ID != "ethereum" {
		t.Errorf("Expected only ethereum to remain, got %+v", s.Items())
	}

	// Removing a missing id is a no-op.
	s.Remove("bitcoin")
	if len(s.Items()) != 1 {
		t.Error("Removing a missing id must leave state unchanged")
	}
}

func TestContains(t *testing.T) {
	s := NewWatchlistStore(newMemoryPersister())
	s.Add(testCoin("solana", 145))

	if !s.Contains("solana") {
		t.Error("Expected solana to be on the watchlist")
	}
	if s.Contains("bitcoin") {
		t.Error("Did not expect bitcoin on the watchlist")
	}
}

func TestUpdateAlertPrice(t *testing.T) {
	s := NewWatchlistStore(newMemoryPersister())
	s.Add(testCoin("bitcoin", 65000))

	s.UpdateAlertPrice("bitcoin", 70000)
	items := s.Items()
	if items[0].AlertPrice == nil || *items[0].AlertPrice != 70000 {
		t.Errorf("Expected alert price 70000, got %v", items[0].AlertPrice)
	}

	s.UpdateAlertPrice("no-such-id", 1)
	if len(s.Items()) != 1 {
		t.Error("Alert update on a missing id must leave state unchanged")
	}
}

func TestRefreshSnapshots(t *testing.T) {
	s := NewWatchlistStore(newMemoryPersister())
	s.Add(testCoin("bitcoin", 65000))
	s.Add(testCoin("ethereum", 3450))
	s.UpdateAlertPrice("bitcoin", 70000)
	addedAt := s.Items()[0].AddedAt

	updated := s.RefreshSnapshots([]models.Cryptocurrency{
		testCoin("bitcoin", 68000),
		testCoin("cardano", 0.5), // not on the watchlist
	})

	if updated != 1 {
		t.Fatalf("Expected 1 entry refreshed, got %d", updated)
	}
	items := s.Items()
	if items[0].Cryptocurrency.CurrentPrice != 68000 {
		t.Errorf("Expected refreshed price 68000, got %v", items[0].Cryptocurrency.CurrentPrice)
	}
	if !items[0].AddedAt.Equal(addedAt) {
		t.Error("Refresh must preserve addedAt")
	}
	if items[0].AlertPrice == nil || *items[0].AlertPrice != 70000 {
		t.Error("Refresh must preserve alertPrice")
	}
	if items[1].Cryptocurrency.CurrentPrice != 3450 {
		t.Error("Entries absent from the refresh list must keep their snapshot")
	}
}

func TestWatchlistRoundTrip(t *testing.T) {
	persister := newMemoryPersister()
	s := NewWatchlistStore(persister)
	s.Add(testCoin("bitcoin", 65000))
	s.UpdateAlertPrice("bitcoin", 70000)

	reloaded := NewWatchlistStore(persister)

	want, _ := json.Marshal(s.Items())
	got, _ := json.Marshal(reloaded.Items())
	if string(want) != string(got) {
		t.Errorf("Round-trip mismatch:\nwant %s\ngot  %s", want, got)
	}
}
