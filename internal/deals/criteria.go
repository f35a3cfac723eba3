package deals

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a filtered deal list.
type SortKey string

const (
	SortDealRating SortKey = "dealRating"
	SortPrice      SortKey = "price"
	SortSavings    SortKey = "savings"
	SortTitle      SortKey = "title"
)

// ParseSortKey maps a raw value onto a sort key. Anything unrecognized
// behaves as rating-descending, matching the default.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortPrice:
		return SortPrice
	case SortSavings:
		return SortSavings
	case SortTitle:
		return SortTitle
	default:
		return SortDealRating
	}
}

// Criteria is the set of user-chosen filter and sort parameters.
type Criteria struct {
	Query       string
	StoreID     string
	LowerPrice  decimal.Decimal
	UpperPrice  decimal.Decimal
	MinDiscount float64
	SortBy      SortKey
}

// DefaultCriteria returns the reset state: no search, any store, price range
// [0, 100], no minimum discount, rating-descending.
func DefaultCriteria() Criteria {
	return Criteria{
		LowerPrice: decimal.Zero,
		UpperPrice: decimal.NewFromInt(100),
		SortBy:     SortDealRating,
	}
}

// ApplyCriteria filters and orders the given deals. It is pure: the input
// slice is never reordered or mutated, and the result is a fresh slice whose
// elements are a subset of the input. Sorting is stable, so equal keys keep
// their upstream order.
func ApplyCriteria(in []Deal, c Criteria) []Deal {
	out := make([]Deal, 0, len(in))

	query := strings.ToLower(strings.TrimSpace(c.Query))
	for _, d := range in {
		if query != "" && !strings.Contains(strings.ToLower(d.Title), query) {
			continue
		}
		if c.StoreID != "" && d.StoreID.String() != c.StoreID {
			continue
		}
		if d.SalePrice.LessThan(c.LowerPrice) || d.SalePrice.GreaterThan(c.UpperPrice) {
			continue
		}
		if d.Savings.Float64() < c.MinDiscount {
			continue
		}
		out = append(out, d)
	}

	sortDeals(out, c.SortBy)
	return out
}

func sortDeals(ds []Deal, key SortKey) {
	switch key {
	case SortPrice:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].SalePrice.LessThan(ds[j].SalePrice)
		})
	case SortSavings:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].Savings > ds[j].Savings
		})
	case SortTitle:
		coll := collate.New(language.Und, collate.Loose)
		sort.SliceStable(ds, func(i, j int) bool {
			return coll.CompareString(ds[i].Title, ds[j].Title) < 0
		})
	default:
		sort.SliceStable(ds, func(i, j int) bool {
			return ds[i].DealRating > ds[j].DealRating
		})
	}
}
