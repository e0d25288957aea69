// Package format holds the pure presentation formatters shared by the
// dashboard: currency strings, abbreviated large numbers, signed
// percentages, and chart axis labels bucketed by time range.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/linknest/linknest/backend/internal/models"
)

// FormatCurrency renders a USD amount with digit grouping and two
// decimals. A nil or NaN value renders as "$0.00".
func FormatCurrency(value *float64) string {
	if value == nil || math.IsNaN(*value) {
		return "$0.00"
	}
	v := *value
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatLargeNumber abbreviates a USD amount with a T/B/M/K suffix at
// the 1e12/1e9/1e6/1e3 thresholds, falling back to FormatCurrency below
// a thousand. A nil or NaN value renders as "$0.00".
func FormatLargeNumber(value *float64) string {
	if value == nil || math.IsNaN(*value) {
		return "$0.00"
	}
	v := *value
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return FormatCurrency(value)
	}
}

// FormatPercentage renders a signed percentage with an explicit leading
// "+" for non-negative values. A nil or NaN value renders as "N/A".
func FormatPercentage(value *float64) string {
	if value == nil || math.IsNaN(*value) {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f%%", *value)
}

// FormatChartLabel renders an axis label for a chart timestamp. Label
// granularity depends on the selected range: hour:minute for intraday
// ranges, month/day for week-to-quarter ranges, and month/year for
// everything else. Unrecognized ranges get the coarsest bucket.
func FormatChartLabel(timestampMillis int64, chartRange string) string {
	t := time.UnixMilli(timestampMillis).UTC()
	switch chartRange {
	case "0.04", "1", "1H", "1D":
		return t.Format("15:04")
	case "7", "30", "90", "1W", "1M", "3M", "3D":
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 06")
	}
}

// FormatDate renders a timestamp as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// GenerateSlug lowercases text and collapses every run of
// non-alphanumeric characters into a single hyphen.
func GenerateSlug(text string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// AxisTicks picks evenly spaced tick timestamps for a chart series.
// Returns nil when the range has no fixed tick step.
func AxisTicks(points []models.ChartPoint, chartRange string) []int64 {
	if len(points) == 0 {
		return nil
	}

	min, max := points[0].Timestamp, points[0].Timestamp
	for _, p := range points[1:] {
		if p.Timestamp < min {
			min = p.Timestamp
		}
		if p.Timestamp > max {
			max = p.Timestamp
		}
	}

	var step int64
	switch chartRange {
	case "7", "1W":
		step = 24 * time.Hour.Milliseconds()
	case "30", "1M":
		step = 5 * 24 * time.Hour.Milliseconds()
	case "3", "3D":
		step = 12 * time.Hour.Milliseconds()
	default:
		return nil
	}

	var ticks []int64
	for t := min; t <= max; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}
