package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetNewsFiltersAndConverts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Data":[
			{"id":"100","title":"Keep me","body":"Body text","url":"https://a.example",
			 "source":"feedsource","source_info":{"name":"CoinDesk"},
			 "published_on":1710000000,"imageurl":"https://a.example/img.png",
			 "tags":"BTC|ETH|DeFi|Extra"},
			{"id":"101","title":"Drop me","body":"...","url":"https://b.example",
			 "source":"investing.com","published_on":1710000001,"tags":""},
			{"id":"102","title":"No tags","body":"...","url":"https://c.example",
			 "source":"TheBlock","published_on":1710000002,"tags":""}
		]}`))
	}))
	defer server.Close()

	client := NewCryptoCompareClient(server.URL)
	items, err := client.GetNews()
	if err != nil {
		t.Fatalf("GetNews failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected investing.com article dropped, got %d items", len(items))
	}

	first := items[0]
	if first.Source != "CoinDesk" {
		t.Errorf("source_info name should win over source, got %s", first.Source)
	}
	if first.PublishedAt != "2024-03-09T16:00:00Z" {
		t.Errorf("Epoch not converted to RFC3339 UTC, got %s", first.PublishedAt)
	}
	if len(first.Categories) != 3 || first.Categories[0] != "BTC" {
		t.Errorf("Tags should split on | and cap at 3, got %v", first.Categories)
	}

	if got := items[1].Categories; len(got) != 1 || got[0] != "Crypto" {
		t.Errorf("Empty tags should default to [Crypto], got %v", got)
	}
}

func TestGetNewsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Message":"rate limit"}`))
	}))
	defer server.Close()

	client := NewCryptoCompareClient(server.URL)
	if _, err := client.GetNews(); err == nil {
		t.Error("Payload without a Data array must be an error")
	}
}

func TestGetNewsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCryptoCompareClient(server.URL)
	if _, err := client.GetNews(); err == nil {
		t.Error("Expected error for non-200 response")
	}
}
