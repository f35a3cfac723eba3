package deals

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a price with exactly two decimal places.
func FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(2)
}

// FormatSavings renders a discount percentage as an integer with a trailing
// percent sign, e.g. "50%".
func FormatSavings(savings float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(savings)))
}

// Truncate cuts text to at most max runes and appends an ellipsis marker
// when anything was removed.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// FormatEpochDate renders epoch seconds as a human-readable UTC date.
// Zero and negative values render empty, covering deals that omit the field.
func FormatEpochDate(secs int64) string {
	if secs <= 0 {
		return ""
	}
	return time.Unix(secs, 0).UTC().Format("Jan 2, 2006")
}
