package services

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/linknest/linknest/backend/internal/models"
)

// Static substitute data served whenever the upstream provider fails.
// Callers cannot tell fallback data from live data; nothing downstream
// branches on the difference.

func floatPtr(v float64) *float64 { return &v }

func mockSparkline(base, spread float64) *models.Sparkline {
	prices := make([]float64, 168)
	for i := range prices {
		prices[i] = base + rand.Float64()*spread
	}
	return &models.Sparkline{Price: prices}
}

// FallbackAssets returns the static asset list. Sparklines and the
// last-updated stamp are regenerated per call so the data looks current.
func FallbackAssets() []models.Cryptocurrency {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.Cryptocurrency{
		{
			ID: "bitcoin", Symbol: "btc", Name: "Bitcoin",
			Image:                        "https://assets.coingecko.com/coins/images/1/large/bitcoin.png",
			CurrentPrice:                 65432,
			MarketCap:                    1200000000000,
			MarketCapRank:                1,
			FullyDilutedValuation:        floatPtr(1300000000000),
			TotalVolume:                  35000000000,
			High24h:                      66000,
			Low24h:                       64000,
			PriceChange24h:               1200,
			PriceChangePercentage24h:     1.8,
			MarketCapChange24h:           20000000000,
			MarketCapChangePercentage24h: 1.6,
			CirculatingSupply:            19500000,
			TotalSupply:                  floatPtr(21000000),
			MaxSupply:                    floatPtr(21000000),
			ATH:                          73700,
			ATHChangePercentage:          -11.2,
			ATHDate:                      "2024-03-14T00:00:00.000Z",
			ATL:                          67.81,
			ATLChangePercentage:          95000,
			ATLDate:                      "2013-07-06T00:00:00.000Z",
			LastUpdated:                  now,
			Sparkline7d:                  mockSparkline(64000, 2000),
			PriceChangePercentage7d:      floatPtr(4.5),
		},
		{
			ID: "ethereum", Symbol: "eth", Name: "Ethereum",
			Image:                        "https://assets.coingecko.com/coins/images/279/large/ethereum.png",
			CurrentPrice:                 3450,
			MarketCap:                    400000000000,
			MarketCapRank:                2,
			TotalVolume:                  15000000000,
			High24h:                      3500,
			Low24h:                       3350,
			PriceChange24h:               80,
			PriceChangePercentage24h:     2.3,
			MarketCapChange24h:           8000000000,
			MarketCapChangePercentage24h: 2.1,
			CirculatingSupply:            120000000,
			TotalSupply:                  floatPtr(120000000),
			ATH:                          4878,
			ATHChangePercentage:          -29.2,
			ATHDate:                      "2021-11-10T00:00:00.000Z",
			ATL:                          0.43,
			ATLChangePercentage:          800000,
			ATLDate:                      "2015-10-20T00:00:00.000Z",
			LastUpdated:                  now,
			Sparkline7d:                  mockSparkline(3300, 300),
			PriceChangePercentage7d:      floatPtr(8.2),
		},
		{
			ID: "solana", Symbol: "sol", Name: "Solana",
			Image:                        "https://assets.coingecko.com/coins/images/4128/large/solana.png",
			CurrentPrice:                 145,
			MarketCap:                    65000000000,
			MarketCapRank:                5,
			FullyDilutedValuation:        floatPtr(75000000000),
			TotalVolume:                  3000000000,
			High24h:                      148,
			Low24h:                       140,
			PriceChange24h:               3.5,
			PriceChangePercentage24h:     2.4,
			MarketCapChange24h:           1500000000,
			MarketCapChangePercentage24h: 2.3,
			CirculatingSupply:            443000000,
			TotalSupply:                  floatPtr(572000000),
			ATH:                          259,
			ATHChangePercentage:          -44,
			ATHDate:                      "2021-11-06T00:00:00.000Z",
			ATL:                          0.5,
			ATLChangePercentage:          28000,
			ATLDate:                      "2020-05-11T00:00:00.000Z",
			LastUpdated:                  now,
			Sparkline7d:                  mockSparkline(140, 10),
			PriceChangePercentage7d:      floatPtr(12.5),
		},
		{
			ID: "ripple", Symbol: "xrp", Name: "XRP",
			Image:                        "https://assets.coingecko.com/coins/images/44/large/xrp-symbol-white-128.png",
			CurrentPrice:                 0.62,
			MarketCap:                    34000000000,
			MarketCapRank:                6,
			FullyDilutedValuation:        floatPtr(62000000000),
			TotalVolume:                  1200000000,
			High24h:                      0.63,
			Low24h:                       0.60,
			PriceChange24h:               0.01,
			PriceChangePercentage24h:     1.6,
			MarketCapChange24h:           500000000,
			MarketCapChangePercentage24h: 1.5,
			CirculatingSupply:            55000000000,
			TotalSupply:                  floatPtr(100000000000),
			MaxSupply:                    floatPtr(100000000000),
			ATH:                          3.40,
			ATHChangePercentage:          -81,
			ATHDate:                      "2018-01-07T00:00:00.000Z",
			ATL:                          0.002,
			ATLChangePercentage:          26000,
			ATLDate:                      "2014-05-22T00:00:00.000Z",
			LastUpdated:                  now,
			Sparkline7d:                  mockSparkline(0.60, 0.05),
			PriceChangePercentage7d:      floatPtr(-2.1),
		},
		{
			ID: "dogecoin", Symbol: "doge", Name: "Dogecoin",
			Image:                        "https://assets.coingecko.com/coins/images/5/large/dogecoin.png",
			CurrentPrice:                 0.16,
			MarketCap:                    23000000000,
			MarketCapRank:                8,
			TotalVolume:                  1800000000,
			High24h:                      0.17,
			Low24h:                       0.15,
			PriceChange24h:               0.008,
			PriceChangePercentage24h:     5.2,
			MarketCapChange24h:           1200000000,
			MarketCapChangePercentage24h: 5.1,
			CirculatingSupply:            143000000000,
			TotalSupply:                  floatPtr(143000000000),
			ATH:                          0.73,
			ATHChangePercentage:          -78,
			ATHDate:                      "2021-05-08T00:00:00.000Z",
			ATL:                          0.00008,
			ATLChangePercentage:          180000,
			ATLDate:                      "2015-05-06T00:00:00.000Z",
			LastUpdated:                  now,
			Sparkline7d:                  mockSparkline(0.15, 0.03),
			PriceChangePercentage7d:      floatPtr(8.4),
		},
	}
}

// FallbackAsset returns the fallback entry matching id, or the first
// entry when no id matches.
func FallbackAsset(id string) models.Cryptocurrency {
	assets := FallbackAssets()
	for _, asset := range assets {
		if asset.ID == id {
			return asset
		}
	}
	return assets[0]
}

// FallbackGlobalStats returns the fixed global market snapshot.
func FallbackGlobalStats() *models.MarketStats {
	return &models.MarketStats{
		TotalMarketCap:                 2500000000000,
		TotalVolume:                    80000000000,
		MarketCapPercentage:            map[string]float64{"btc": 52.5, "eth": 16.8},
		MarketCapChangePercentage24USD: 1.25,
	}
}

// FallbackTrending derives a 4-element trending list from the first
// four fallback assets, reusing their market fields.
func FallbackTrending() []models.TrendingCoin {
	assets := FallbackAssets()
	if len(assets) > 4 {
		assets = assets[:4]
	}

	trending := make([]models.TrendingCoin, len(assets))
	for i, asset := range assets {
		trending[i] = models.TrendingCoin{
			ID:            asset.ID,
			Name:          asset.Name,
			Symbol:        asset.Symbol,
			MarketCapRank: asset.MarketCapRank,
			Thumb:         asset.Image,
			Small:         asset.Image,
			Large:         asset.Image,
			Slug:          asset.ID,
			PriceBTC:      0.0001,
			Score:         0,
			Data: &models.TrendingData{
				Price:                    asset.CurrentPrice,
				PriceChangePercentage24h: map[string]float64{"usd": asset.PriceChangePercentage24h},
				MarketCap:                asset.MarketCap,
				TotalVolume:              asset.TotalVolume,
			},
		}
	}
	return trending
}

// FallbackSearch matches query case-insensitively against fallback
// asset names and symbols.
func FallbackSearch(query string) []models.SearchResult {
	lower := strings.ToLower(query)
	results := []models.SearchResult{}
	for _, asset := range FallbackAssets() {
		if strings.Contains(strings.ToLower(asset.Name), lower) ||
			strings.Contains(strings.ToLower(asset.Symbol), lower) {
			results = append(results, models.SearchResult{
				ID:            asset.ID,
				Name:          asset.Name,
				Symbol:        asset.Symbol,
				MarketCapRank: asset.MarketCapRank,
				Thumb:         asset.Image,
				Large:         asset.Image,
			})
		}
	}
	return results
}

// chartPointCount is the fixed sample count of a synthesized series.
const chartPointCount = 100

// GenerateChartData synthesizes a random-walk price series spanning the
// requested window. The values are visual filler, not meaningful data.
func GenerateChartData(days string) []models.ChartPoint {
	d, err := strconv.ParseFloat(days, 64)
	if days == "max" {
		d = 365
	} else if err != nil || d <= 0 {
		d = 7
	}

	now := time.Now().UnixMilli()
	window := int64(d * 24 * 60 * 60 * 1000)
	price := 50000 + rand.Float64()*10000

	points := make([]models.ChartPoint, 0, chartPointCount+1)
	for i := chartPointCount; i >= 0; i-- {
		ts := now - int64(i)*window/chartPointCount
		price += (rand.Float64() - 0.5) * 1000
		if price < 0 {
			price = 0
		}
		points = append(points, models.ChartPoint{Timestamp: ts, Price: price})
	}
	return points
}

// FallbackNews returns the fixed 6-item news set with recent relative
// timestamps. None of the entries is sourced from investing.com.
func FallbackNews() []models.NewsItem {
	ago := func(hours int) string {
		return time.Now().Add(-time.Duration(hours) * time.Hour).UTC().Format(time.RFC3339)
	}
	return []models.NewsItem{
		{
			ID:          "1",
			Title:       "Bitcoin Surges Past $45k as Institutional Adoption Grows",
			Description: "The world's largest cryptocurrency has seen a significant rally this week, driven by renewed interest from major financial institutions and the approval of new ETFs.",
			URL:         "https://coindesk.com",
			Source:      "CoinDesk",
			PublishedAt: ago(2),
			ImageURL:    "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?q=80&w=2069&auto=format&fit=crop",
			Categories:  []string{"Bitcoin", "Market"},
		},
		{
			ID:          "2",
			Title:       "Ethereum Layer 2 Solutions Reach Record Total Value Locked",
			Description: "Scaling solutions for Ethereum are seeing unprecedented growth as users seek lower fees and faster transaction times.",
			URL:         "https://cointelegraph.com",
			Source:      "CoinTelegraph",
			PublishedAt: ago(5),
			ImageURL:    "https://images.unsplash.com/photo-1622790698141-94e30457ef12?q=80&w=2072&auto=format&fit=crop",
			Categories:  []string{"Ethereum", "DeFi"},
		},
		{
			ID:          "3",
			Title:       "Regulatory Framework for Stablecoins Proposed by Central Bank",
			Description: "New guidelines aim to provide clarity and consumer protection in the rapidly evolving stablecoin market.",
			URL:         "https://bloomberg.com",
			Source:      "Bloomberg Crypto",
			PublishedAt: ago(12),
			ImageURL:    "https://images.unsplash.com/photo-1605792657660-596af9009e82?q=80&w=2002&auto=format&fit=crop",
			Categories:  []string{"Regulation", "Stablecoins"},
		},
		{
			ID:          "4",
			Title:       "Web3 Gaming Sector Shows Resilience Despite Market Volatility",
			Description: "Blockchain-based games continue to attract users and investment, signaling a long-term shift in the gaming industry.",
			URL:         "https://decrypt.co",
			Source:      "Decrypt",
			PublishedAt: ago(24),
			ImageURL:    "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?q=80&w=1974&auto=format&fit=crop",
			Categories:  []string{"Gaming", "Web3"},
		},
		{
			ID:          "5",
			Title:       "New DeFi Protocol Promises Higher Yields with Lower Risk",
			Description: "A novel algorithmic approach to yield farming claims to solve the issue of impermanent loss for liquidity providers.",
			URL:         "https://theblock.co",
			Source:      "The Block",
			PublishedAt: ago(28),
			ImageURL:    "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?q=80&w=2032&auto=format&fit=crop",
			Categories:  []string{"DeFi", "Technology"},
		},
		{
			ID:          "6",
			Title:       "NFT Market Volume Rebounds in Q1",
			Description: "After a quiet period, digital collectibles are seeing a resurgence in trading volume, led by blue-chip collections and utility-based NFTs.",
			URL:         "https://nftnow.com",
			Source:      "NFT Now",
			PublishedAt: ago(36),
			ImageURL:    "https://images.unsplash.com/photo-1620321023374-d1a68fddadb3?q=80&w=2048&auto=format&fit=crop",
			Categories:  []string{"NFT", "Market"},
		},
	}
}
