package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/linknest/linknest/backend/internal/models"
)

const (
	cryptoCompareNewsURL        = "https://min-api.cryptocompare.com/data/v2/news/?lang=EN"
	cryptoCompareDefaultTimeout = 10 * time.Second
)

// CryptoCompareClient fetches the public news feed from CryptoCompare.
type CryptoCompareClient struct {
	client  *http.Client
	newsURL string
}

// NewCryptoCompareClient creates a news client. An empty newsURL uses
// the public endpoint.
func NewCryptoCompareClient(newsURL string) *CryptoCompareClient {
	if newsURL == "" {
		newsURL = cryptoCompareNewsURL
	}
	return &CryptoCompareClient{
		client: &http.Client{
			Timeout: cryptoCompareDefaultTimeout,
		},
		newsURL: newsURL,
	}
}

type cryptoCompareNewsResponse struct {
	Data []cryptoCompareArticle `json:"Data"`
}

type cryptoCompareArticle struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Body        string                 `json:"body"`
	URL         string                 `json:"url"`
	Source      string                 `json:"source"`
	SourceInfo  *cryptoCompareSource   `json:"source_info"`
	PublishedOn int64                  `json:"published_on"`
	ImageURL    string                 `json:"imageurl"`
	Tags        string                 `json:"tags"`
}

type cryptoCompareSource struct {
	Name string `json:"name"`
}

// GetNews fetches the latest articles, newest first as provided
// upstream. Articles sourced from investing.com are dropped. A payload
// without a Data array is treated as malformed and returned as an error.
func (s *CryptoCompareClient) GetNews() ([]models.NewsItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cryptoCompareDefaultTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", s.newsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned status %d", resp.StatusCode)
	}

	var newsResp cryptoCompareNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&newsResp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if newsResp.Data == nil {
		return nil, fmt.Errorf("invalid news response format")
	}

	items := make([]models.NewsItem, 0, len(newsResp.Data))
	for _, article := range newsResp.Data {
		item := convertArticle(article)
		if strings.Contains(strings.ToLower(item.Source), "investing.com") {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func convertArticle(article cryptoCompareArticle) models.NewsItem {
	source := article.Source
	if article.SourceInfo != nil && article.SourceInfo.Name != "" {
		source = article.SourceInfo.Name
	}

	categories := []string{"Crypto"}
	if article.Tags != "" {
		tags := strings.Split(article.Tags, "|")
		if len(tags) > 3 {
			tags = tags[:3]
		}
		categories = tags
	}

	return models.NewsItem{
		ID:          article.ID,
		Title:       article.Title,
		Description: article.Body,
		URL:         article.URL,
		Source:      source,
		PublishedAt: time.Unix(article.PublishedOn, 0).UTC().Format(time.RFC3339),
		ImageURL:    article.ImageURL,
		Categories:  categories,
	}
}
