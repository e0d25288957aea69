package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/linknest/linknest/backend/internal/models"
)

const (
	coinGeckoBaseURL        = "https://api.coingecko.com/api/v3"
	coinGeckoDefaultTimeout = 10 * time.Second
)

// CoinGeckoClient handles API calls to CoinGecko for market data.
// The free tier enforces a request-rate ceiling, so every call waits on
// a client-side limiter before going out.
type CoinGeckoClient struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewCoinGeckoClient creates a CoinGecko client. An empty baseURL uses
// the public API.
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = coinGeckoBaseURL
	}
	return &CoinGeckoClient{
		client: &http.Client{
			Timeout: coinGeckoDefaultTimeout,
		},
		baseURL: baseURL,
		// Free tier allows roughly 30 calls/minute.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
	}
}

// coinDetailResponse is the provider's nested coin detail schema. The
// flat market-row schema from /coins/markets matches models.Cryptocurrency
// directly and is decoded without a DTO.
type coinDetailResponse struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	Image         *coinDetailImage  `json:"image"`
	MarketCapRank int               `json:"market_cap_rank"`
	MarketData    *coinMarketData   `json:"market_data"`
	Description   map[string]string `json:"description"`
	Links         *models.CoinLinks `json:"links"`
	LastUpdated   string            `json:"last_updated"`
}

type coinDetailImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

type coinMarketData struct {
	CurrentPrice             map[string]float64 `json:"current_price"`
	MarketCap                map[string]float64 `json:"market_cap"`
	FullyDilutedValuation    map[string]float64 `json:"fully_diluted_valuation"`
	TotalVolume              map[string]float64 `json:"total_volume"`
	High24h                  map[string]float64 `json:"high_24h"`
	Low24h                   map[string]float64 `json:"low_24h"`
	PriceChange24h           float64            `json:"price_change_24h"`
	PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
	PriceChangePercentage1h  map[string]float64 `json:"price_change_percentage_1h_in_currency"`
	PriceChangePercentage7d  *float64           `json:"price_change_percentage_7d"`
	PriceChangePercentage30d *float64           `json:"price_change_percentage_30d"`
	PriceChangePercentage1y  *float64           `json:"price_change_percentage_1y"`
	MarketCapChange24h       float64            `json:"market_cap_change_24h"`
	MarketCapChangePct24h    float64            `json:"market_cap_change_percentage_24h"`
	CirculatingSupply        float64            `json:"circulating_supply"`
	TotalSupply              *float64           `json:"total_supply"`
	MaxSupply                *float64           `json:"max_supply"`
	ATH                      map[string]float64 `json:"ath"`
	ATHChangePercentage      map[string]float64 `json:"ath_change_percentage"`
	ATHDate                  map[string]string  `json:"ath_date"`
	ATL                      map[string]float64 `json:"atl"`
	ATLChangePercentage      map[string]float64 `json:"atl_change_percentage"`
	ATLDate                  map[string]string  `json:"atl_date"`
	Sparkline7d              *models.Sparkline  `json:"sparkline_7d"`
}

type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

type globalResponse struct {
	Data struct {
		TotalMarketCap                 map[string]float64 `json:"total_market_cap"`
		TotalVolume                    map[string]float64 `json:"total_volume"`
		MarketCapPercentage            map[string]float64 `json:"market_cap_percentage"`
		MarketCapChangePercentage24USD float64            `json:"market_cap_change_percentage_24h_usd"`
	} `json:"data"`
}

type trendingResponse struct {
	Coins []struct {
		Item models.TrendingCoin `json:"item"`
	} `json:"coins"`
}

type searchResponse struct {
	Coins []models.SearchResult `json:"coins"`
}

func (s *CoinGeckoClient) get(reqURL string, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), coinGeckoDefaultTimeout)
	defer cancel()

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach coingecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode coingecko response: %w", err)
	}
	return nil
}

// ListMarkets fetches one page of market rows ordered by the given sort
// key, with the 7-day sparkline included.
func (s *CoinGeckoClient) ListMarkets(page, perPage int, order string) ([]models.Cryptocurrency, error) {
	reqURL := fmt.Sprintf(
		"%s/coins/markets?vs_currency=usd&order=%s&per_page=%d&page=%d&sparkline=true&price_change_percentage=7d",
		s.baseURL, url.QueryEscape(order), perPage, page,
	)

	var coins []models.Cryptocurrency
	if err := s.get(reqURL, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

// GetCoin fetches the detailed record for one asset and flattens the
// provider's nested schema into the internal one. Every nested field is
// optional; absent fields become zero values or nil.
func (s *CoinGeckoClient) GetCoin(id string) (*models.Cryptocurrency, error) {
	reqURL := fmt.Sprintf(
		"%s/coins/%s?localization=false&tickers=false&community_data=false&developer_data=false&sparkline=true",
		s.baseURL, url.PathEscape(id),
	)

	var detail coinDetailResponse
	if err := s.get(reqURL, &detail); err != nil {
		return nil, err
	}

	coin := s.convertDetail(detail)
	return &coin, nil
}

func (s *CoinGeckoClient) convertDetail(detail coinDetailResponse) models.Cryptocurrency {
	coin := models.Cryptocurrency{
		ID:            detail.ID,
		Symbol:        detail.Symbol,
		Name:          detail.Name,
		MarketCapRank: detail.MarketCapRank,
		LastUpdated:   detail.LastUpdated,
		Links:         detail.Links,
	}

	if detail.Image != nil {
		coin.Image = detail.Image.Large
		if coin.Image == "" {
			coin.Image = detail.Image.Small
		}
	}
	if detail.Description != nil {
		coin.Description = detail.Description["en"]
	}

	md := detail.MarketData
	if md == nil {
		return coin
	}

	coin.CurrentPrice = md.CurrentPrice["usd"]
	coin.MarketCap = md.MarketCap["usd"]
	coin.TotalVolume = md.TotalVolume["usd"]
	coin.High24h = md.High24h["usd"]
	coin.Low24h = md.Low24h["usd"]
	coin.PriceChange24h = md.PriceChange24h
	coin.PriceChangePercentage24h = md.PriceChangePercentage24h
	coin.MarketCapChange24h = md.MarketCapChange24h
	coin.MarketCapChangePercentage24h = md.MarketCapChangePct24h
	coin.CirculatingSupply = md.CirculatingSupply
	coin.TotalSupply = md.TotalSupply
	coin.MaxSupply = md.MaxSupply
	coin.ATH = md.ATH["usd"]
	coin.ATHChangePercentage = md.ATHChangePercentage["usd"]
	coin.ATHDate = md.ATHDate["usd"]
	coin.ATL = md.ATL["usd"]
	coin.ATLChangePercentage = md.ATLChangePercentage["usd"]
	coin.ATLDate = md.ATLDate["usd"]
	coin.Sparkline7d = md.Sparkline7d
	coin.PriceChangePercentage7d = md.PriceChangePercentage7d
	coin.PriceChangePercentage30d = md.PriceChangePercentage30d
	coin.PriceChangePercentage1y = md.PriceChangePercentage1y

	if fdv, ok := md.FullyDilutedValuation["usd"]; ok {
		coin.FullyDilutedValuation = &fdv
	}
	if pct1h, ok := md.PriceChangePercentage1h["usd"]; ok {
		coin.PriceChangePercentage1h = &pct1h
	}

	return coin
}

// GetMarketChart fetches the historical price series for an asset.
// days is a day count or the literal "max". Points come back ascending
// by timestamp.
func (s *CoinGeckoClient) GetMarketChart(id, days string) ([]models.ChartPoint, error) {
	reqURL := fmt.Sprintf(
		"%s/coins/%s/market_chart?vs_currency=usd&days=%s",
		s.baseURL, url.PathEscape(id), url.QueryEscape(days),
	)

	var chart marketChartResponse
	if err := s.get(reqURL, &chart); err != nil {
		return nil, err
	}

	points := make([]models.ChartPoint, len(chart.Prices))
	for i, pair := range chart.Prices {
		points[i] = models.ChartPoint{
			Timestamp: int64(pair[0]),
			Price:     pair[1],
		}
	}
	return points, nil
}

// GetGlobalStats fetches the global market snapshot, extracting USD
// values from the provider's per-currency maps.
func (s *CoinGeckoClient) GetGlobalStats() (*models.MarketStats, error) {
	var global globalResponse
	if err := s.get(s.baseURL+"/global", &global); err != nil {
		return nil, err
	}

	stats := models.MarketStats{
		TotalMarketCap:                 global.Data.TotalMarketCap["usd"],
		TotalVolume:                    global.Data.TotalVolume["usd"],
		MarketCapPercentage:            global.Data.MarketCapPercentage,
		MarketCapChangePercentage24USD: global.Data.MarketCapChangePercentage24USD,
	}
	if stats.MarketCapPercentage == nil {
		stats.MarketCapPercentage = map[string]float64{}
	}
	return &stats, nil
}

// GetTrending fetches the provider's trending list, unwrapping the
// item envelopes. Provider order is preserved and treated as rank.
func (s *CoinGeckoClient) GetTrending() ([]models.TrendingCoin, error) {
	var trending trendingResponse
	if err := s.get(s.baseURL+"/search/trending", &trending); err != nil {
		return nil, err
	}

	coins := make([]models.TrendingCoin, len(trending.Coins))
	for i, entry := range trending.Coins {
		coins[i] = entry.Item
	}
	return coins, nil
}

// Search fetches lightweight match records for a query string.
func (s *CoinGeckoClient) Search(query string) ([]models.SearchResult, error) {
	reqURL := fmt.Sprintf("%s/search?query=%s", s.baseURL, url.QueryEscape(query))

	var result searchResponse
	if err := s.get(reqURL, &result); err != nil {
		return nil, err
	}
	if result.Coins == nil {
		return []models.SearchResult{}, nil
	}
	return result.Coins, nil
}
