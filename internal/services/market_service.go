package services

import (
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/linknest/linknest/backend/internal/metrics"
	"github.com/linknest/linknest/backend/internal/models"
)

const (
	// marketCacheTTL is the revalidation window: a successful upstream
	// response is reused for this long before the call is re-issued.
	marketCacheTTL = 5 * time.Minute

	marketCacheSize = 256

	// maxPerPage caps the page size forwarded upstream.
	maxPerPage = 250
)

// MarketDataSource is the upstream market-data provider surface.
type MarketDataSource interface {
	ListMarkets(page, perPage int, order string) ([]models.Cryptocurrency, error)
	GetCoin(id string) (*models.Cryptocurrency, error)
	GetMarketChart(id, days string) ([]models.ChartPoint, error)
	GetGlobalStats() (*models.MarketStats, error)
	GetTrending() ([]models.TrendingCoin, error)
	Search(query string) ([]models.SearchResult, error)
}

// NewsSource is the upstream news provider surface.
type NewsSource interface {
	GetNews() ([]models.NewsItem, error)
}

// MarketService is the gateway facade over the upstream providers.
// Every operation always returns data: upstream failures of any kind
// (non-2xx, transport error, malformed payload) are logged and replaced
// with static fallback data. A single failed attempt falls back
// immediately; there is no retry. Successful responses are cached for
// the revalidation window; fallback responses are not, so the next call
// retries upstream.
type MarketService struct {
	market MarketDataSource
	news   NewsSource
	cache  *expirable.LRU[string, any]
}

// NewMarketService creates the facade over the given providers.
func NewMarketService(market MarketDataSource, news NewsSource) *MarketService {
	return &MarketService{
		market: market,
		news:   news,
		cache:  expirable.NewLRU[string, any](marketCacheSize, nil, marketCacheTTL),
	}
}

func cacheLookup[T any](s *MarketService, key string) (T, bool) {
	var zero T
	cached, ok := s.cache.Get(key)
	if !ok {
		metrics.CacheMisses.Inc()
		return zero, false
	}
	value, ok := cached.(T)
	if !ok {
		return zero, false
	}
	metrics.CacheHits.Inc()
	return value, true
}

func (s *MarketService) fallback(resource string, err error) {
	log.Printf("Upstream %s failed, serving fallback data: %v", resource, err)
	metrics.UpstreamFallbacksTotal.WithLabelValues(resource).Inc()
}

// ListAssets returns one page of market rows, or the full fallback list
// (unpaginated) when upstream fails.
func (s *MarketService) ListAssets(page, perPage int, order string) []models.Cryptocurrency {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if order == "" {
		order = "market_cap_desc"
	}

	key := fmt.Sprintf("list:%d:%d:%s", page, perPage, order)
	if cached, ok := cacheLookup[[]models.Cryptocurrency](s, key); ok {
		return cached
	}

	coins, err := s.market.ListMarkets(page, perPage, order)
	if err != nil {
		s.fallback("list", err)
		return FallbackAssets()
	}

	s.cache.Add(key, coins)
	return coins
}

// GetAssetDetail returns the extended record for one asset, or the
// matching fallback entry (first entry when no id matches) on failure.
func (s *MarketService) GetAssetDetail(id string) models.Cryptocurrency {
	key := "coin:" + id
	if cached, ok := cacheLookup[models.Cryptocurrency](s, key); ok {
		return cached
	}

	coin, err := s.market.GetCoin(id)
	if err != nil {
		s.fallback("detail", err)
		return FallbackAsset(id)
	}

	s.cache.Add(key, *coin)
	return *coin
}

// GetChart returns the historical price series for an asset, ascending
// by timestamp. On failure it synthesizes a random-walk series spanning
// the requested window, strictly for visual continuity.
func (s *MarketService) GetChart(id, days string) []models.ChartPoint {
	if days == "" {
		days = "7"
	}

	key := "chart:" + id + ":" + days
	if cached, ok := cacheLookup[[]models.ChartPoint](s, key); ok {
		return cached
	}

	points, err := s.market.GetMarketChart(id, days)
	if err != nil {
		s.fallback("chart", err)
		return GenerateChartData(days)
	}

	s.cache.Add(key, points)
	return points
}

// GetGlobalStats returns the global market snapshot, or a fixed static
// snapshot on failure.
func (s *MarketService) GetGlobalStats() models.MarketStats {
	if cached, ok := cacheLookup[models.MarketStats](s, "global"); ok {
		return cached
	}

	stats, err := s.market.GetGlobalStats()
	if err != nil {
		s.fallback("global", err)
		return *FallbackGlobalStats()
	}

	s.cache.Add("global", *stats)
	return *stats
}

// GetTrending returns the trending list in provider order, or a
// 4-element substitute derived from the fallback assets on failure.
func (s *MarketService) GetTrending() []models.TrendingCoin {
	if cached, ok := cacheLookup[[]models.TrendingCoin](s, "trending"); ok {
		return cached
	}

	coins, err := s.market.GetTrending()
	if err != nil {
		s.fallback("trending", err)
		return FallbackTrending()
	}

	s.cache.Add("trending", coins)
	return coins
}

// Search returns lightweight match records for query. An empty query
// returns an empty list without touching cache or upstream. On failure
// the fallback list is matched case-insensitively by name and symbol.
func (s *MarketService) Search(query string) []models.SearchResult {
	if query == "" {
		return []models.SearchResult{}
	}

	key := "search:" + query
	if cached, ok := cacheLookup[[]models.SearchResult](s, key); ok {
		return cached
	}

	results, err := s.market.Search(query)
	if err != nil {
		s.fallback("search", err)
		return FallbackSearch(query)
	}

	s.cache.Add(key, results)
	return results
}

// GetNews returns the news feed, newest first as provided upstream,
// with investing.com-sourced items filtered out. On failure or a
// malformed payload the fixed 6-item set is returned.
func (s *MarketService) GetNews() []models.NewsItem {
	if cached, ok := cacheLookup[[]models.NewsItem](s, "news"); ok {
		return cached
	}

	items, err := s.news.GetNews()
	if err != nil {
		s.fallback("news", err)
		return FallbackNews()
	}

	s.cache.Add("news", items)
	return items
}
