package services

import (
	"testing"
)

func TestFallbackAssets(t *testing.T) {
	assets := FallbackAssets()
	if len(assets) != 5 {
		t.Fatalf("Expected 5 fallback assets, got %d", len(assets))
	}

	ids := []string{"bitcoin", "ethereum", "solana", "ripple", "dogecoin"}
	for i, id := range ids {
		if assets[i].ID != id {
			t.Errorf("Expected %s at position %d, got %s", id, i, assets[i].ID)
		}
	}

	for _, asset := range assets {
		if asset.Sparkline7d == nil || len(asset.Sparkline7d.Price) != 168 {
			t.Errorf("%s: expected a 168-sample sparkline", asset.ID)
		}
		if asset.LastUpdated == "" {
			t.Errorf("%s: expected a fresh last-updated stamp", asset.ID)
		}
	}
}

func TestFallbackAssetUnknownID(t *testing.T) {
	if got := FallbackAsset("solana"); got.ID != "solana" {
		t.Errorf("Expected matching entry, got %s", got.ID)
	}
	if got := FallbackAsset("no-such-coin"); got.ID != "bitcoin" {
		t.Errorf("Unknown id should yield the first entry, got %s", got.ID)
	}
}

func TestFallbackSearchCaseInsensitive(t *testing.T) {
	results := FallbackSearch("ETH")
	if len(results) != 1 || results[0].ID != "ethereum" {
		t.Errorf("Expected ethereum for symbol match, got %+v", results)
	}

	if results := FallbackSearch("zzz"); results == nil || len(results) != 0 {
		t.Errorf("No matches should yield an empty non-nil slice, got %v", results)
	}
}

func TestFallbackTrendingCarriesData(t *testing.T) {
	trending := FallbackTrending()
	if len(trending) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(trending))
	}
	for _, coin := range trending {
		if coin.Data == nil || coin.Data.Price == 0 {
			t.Errorf("%s: expected a populated data payload", coin.ID)
		}
	}
}

func TestGenerateChartData(t *testing.T) {
	points := GenerateChartData("7")
	if len(points) != 101 {
		t.Fatalf("Expected 101 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Timestamp <= points[i-1].Timestamp {
			t.Fatal("Timestamps must strictly ascend")
		}
	}

	window := points[len(points)-1].Timestamp - points[0].Timestamp
	wantWindow := int64(7 * 24 * 60 * 60 * 1000)
	if window != wantWindow {
		t.Errorf("Expected a 7-day window, got %d ms", window)
	}
}

func TestGenerateChartDataMaxRange(t *testing.T) {
	points := GenerateChartData("max")
	window := points[len(points)-1].Timestamp - points[0].Timestamp
	wantWindow := int64(365 * 24 * 60 * 60 * 1000)
	if window != wantWindow {
		t.Errorf("Expected a 365-day window for max, got %d ms", window)
	}
}

func TestGenerateChartDataBadInput(t *testing.T) {
	for _, days := range []string{"", "bogus", "-3"} {
		points := GenerateChartData(days)
		if len(points) != 101 {
			t.Errorf("Days %q: expected the default 7-day series, got %d points", days, len(points))
		}
	}
}

func TestFallbackNewsExcludesFilteredSource(t *testing.T) {
	items := FallbackNews()
	if len(items) != 6 {
		t.Fatalf("Expected 6 articles, got %d", len(items))
	}
	for _, item := range items {
		if item.Source == "" || item.PublishedAt == "" {
			t.Errorf("Article %s missing fields", item.ID)
		}
	}
}
