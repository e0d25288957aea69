package services

import (
	"testing"
	"time"

	"github.com/linknest/linknest/backend/internal/models"
	"github.com/linknest/linknest/backend/internal/store"
)

type nopPersister struct{}

func (nopPersister) Load(name string) ([]byte, error)    { return nil, nil }
func (nopPersister) Save(name string, data []byte) error { return nil }

func TestRefreshWorkerUpdatesSnapshots(t *testing.T) {
	src := &stubSource{coins: []models.Cryptocurrency{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 68000},
	}}
	svc := NewMarketService(src, src)

	watchlist := store.NewWatchlistStore(nopPersister{})
	watchlist.Add(models.Cryptocurrency{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 65000})

	worker := NewRefreshWorker(svc, watchlist, time.Minute)
	worker.refresh()

	if got := watchlist.Items()[0].Cryptocurrency.CurrentPrice; got != 68000 {
		t.Errorf("Expected refreshed price 68000, got %v", got)
	}
}

func TestRefreshWorkerSkipsEmptyWatchlist(t *testing.T) {
	src := &stubSource{}
	svc := NewMarketService(src, src)

	worker := NewRefreshWorker(svc, store.NewWatchlistStore(nopPersister{}), time.Minute)
	worker.refresh()

	if src.calls != 0 {
		t.Errorf("Empty watchlist must not trigger an upstream fetch, saw %d calls", src.calls)
	}
}

func TestRefreshWorkerDefaultInterval(t *testing.T) {
	src := &stubSource{}
	svc := NewMarketService(src, src)

	worker := NewRefreshWorker(svc, store.NewWatchlistStore(nopPersister{}), 0)
	if worker.interval != defaultRefreshInterval {
		t.Errorf("Expected default interval, got %s", worker.interval)
	}
}
