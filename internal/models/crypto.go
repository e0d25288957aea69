package models

// Cryptocurrency is a read-only market snapshot of one asset, shaped to
// match the CoinGecko /coins/markets row. Fields the provider may omit
// are pointers so null round-trips through JSON.
type Cryptocurrency struct {
	ID                           string     `json:"id"`
	Symbol                       string     `json:"symbol"`
	Name                         string     `json:"name"`
	Image                        string     `json:"image"`
	CurrentPrice                 float64    `json:"current_price"`
	MarketCap                    float64    `json:"market_cap"`
	MarketCapRank                int        `json:"market_cap_rank"`
	FullyDilutedValuation        *float64   `json:"fully_diluted_valuation"`
	TotalVolume                  float64    `json:"total_volume"`
	High24h                      float64    `json:"high_24h"`
	Low24h                       float64    `json:"low_24h"`
	PriceChange24h               float64    `json:"price_change_24h"`
	PriceChangePercentage24h     float64    `json:"price_change_percentage_24h"`
	MarketCapChange24h           float64    `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h float64    `json:"market_cap_change_percentage_24h"`
	CirculatingSupply            float64    `json:"circulating_supply"`
	TotalSupply                  *float64   `json:"total_supply"`
	MaxSupply                    *float64   `json:"max_supply"`
	ATH                          float64    `json:"ath"`
	ATHChangePercentage          float64    `json:"ath_change_percentage"`
	ATHDate                      string     `json:"ath_date"`
	ATL                          float64    `json:"atl"`
	ATLChangePercentage          float64    `json:"atl_change_percentage"`
	ATLDate                      string     `json:"atl_date"`
	LastUpdated                  string     `json:"last_updated"`
	Sparkline7d                  *Sparkline `json:"sparkline_in_7d,omitempty"`
	PriceChangePercentage7d      *float64   `json:"price_change_percentage_7d_in_currency,omitempty"`

	// Detail-only fields, populated by the coin detail endpoint.
	PriceChangePercentage1h  *float64   `json:"price_change_percentage_1h_in_currency,omitempty"`
	PriceChangePercentage30d *float64   `json:"price_change_percentage_30d_in_currency,omitempty"`
	PriceChangePercentage1y  *float64   `json:"price_change_percentage_1y_in_currency,omitempty"`
	Description              string     `json:"description,omitempty"`
	Links                    *CoinLinks `json:"links,omitempty"`
}

// Sparkline holds the 7-day price series attached to a market row.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// CoinLinks carries the external links block from the coin detail endpoint.
type CoinLinks struct {
	Homepage                 []string   `json:"homepage,omitempty"`
	BlockchainSite           []string   `json:"blockchain_site,omitempty"`
	OfficialForumURL         []string   `json:"official_forum_url,omitempty"`
	ChatURL                  []string   `json:"chat_url,omitempty"`
	AnnouncementURL          []string   `json:"announcement_url,omitempty"`
	TwitterScreenName        string     `json:"twitter_screen_name,omitempty"`
	FacebookUsername         string     `json:"facebook_username,omitempty"`
	TelegramChannelIdentifer string     `json:"telegram_channel_identifier,omitempty"`
	SubredditURL             string     `json:"subreddit_url,omitempty"`
	ReposURL                 *ReposURL  `json:"repos_url,omitempty"`
}

// ReposURL holds source repository links for a coin.
type ReposURL struct {
	Github []string `json:"github,omitempty"`
}

// ChartPoint is one sample of a historical price series.
type ChartPoint struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Price     float64 `json:"price"`
}

// MarketStats is an ephemeral snapshot of global market data. It is
// replaced wholesale on each fetch, never merged.
type MarketStats struct {
	TotalMarketCap                 float64            `json:"total_market_cap"`
	TotalVolume                    float64            `json:"total_volume"`
	MarketCapPercentage            map[string]float64 `json:"market_cap_percentage"`
	MarketCapChangePercentage24USD float64            `json:"market_cap_change_percentage_24h_usd"`
}

// TrendingCoin is one entry of the provider's trending list, in
// provider-defined order (treated as rank).
type TrendingCoin struct {
	ID            string        `json:"id"`
	CoinID        int           `json:"coin_id"`
	Name          string        `json:"name"`
	Symbol        string        `json:"symbol"`
	MarketCapRank int           `json:"market_cap_rank"`
	Thumb         string        `json:"thumb"`
	Small         string        `json:"small"`
	Large         string        `json:"large"`
	Slug          string        `json:"slug"`
	PriceBTC      float64       `json:"price_btc"`
	Score         int           `json:"score"`
	Data          *TrendingData `json:"data,omitempty"`
}

// TrendingData is the optional market payload nested in a trending entry.
type TrendingData struct {
	Price                    float64            `json:"price"`
	PriceChangePercentage24h map[string]float64 `json:"price_change_percentage_24h,omitempty"`
	MarketCap                float64            `json:"market_cap"`
	TotalVolume              float64            `json:"total_volume"`
}

// SearchResult is the lightweight match record returned by coin search.
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
	Large         string `json:"large"`
}

// NewsItem is a single article from the news provider.
type NewsItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	PublishedAt string   `json:"published_at"`
	ImageURL    string   `json:"image_url,omitempty"`
	Categories  []string `json:"categories"`
}
