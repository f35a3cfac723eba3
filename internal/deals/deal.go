package deals

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Deal is one externally sourced discount listing for a single game at a
// single store. Field names mirror the upstream JSON. The upstream feed is
// loose about numeric types: prices, savings and ratings arrive as either
// JSON numbers or numeric strings, so they are normalized once here at the
// decoding boundary.
type Deal struct {
	DealID             string          `json:"dealID,omitempty"`
	ID                 string          `json:"id,omitempty"`
	Title              string          `json:"title"`
	StoreID            FlexInt         `json:"storeID"`
	SalePrice          decimal.Decimal `json:"salePrice"`
	NormalPrice        decimal.Decimal `json:"normalPrice"`
	Savings            FlexFloat       `json:"savings"`
	DealRating         FlexFloat       `json:"dealRating"`
	Thumb              string          `json:"thumb,omitempty"`
	SteamRatingText    string          `json:"steamRatingText,omitempty"`
	SteamRatingPercent FlexFloat       `json:"steamRatingPercent,omitempty"`
	SteamAppID         string          `json:"steamAppID,omitempty"`
	ReleaseDate        int64           `json:"releaseDate,omitempty"`
	LastChange         int64           `json:"lastChange,omitempty"`
}

// Key returns the identifier used for list keys and detail lookups. The
// primary external deal id wins; the generic id is the fallback. An empty
// key means the deal is unusable and is dropped at ingestion.
func (d Deal) Key() string {
	if d.DealID != "" {
		return d.DealID
	}
	return d.ID
}

// Linkable reports whether the deal carries the primary external id required
// for the store redirect link.
func (d Deal) Linkable() bool {
	return d.DealID != ""
}

// FlexFloat decodes a JSON value that may arrive as a number or as a numeric
// string. A value that parses as neither fails the decode.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("numeric field %q: %w", raw, err)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt decodes an integer that may arrive as a number or a numeric string.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Some feeds ship integers with a decimal point.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("integer field %q: %w", raw, err)
		}
		v = int64(f)
	}
	*i = FlexInt(v)
	return nil
}

func (i FlexInt) String() string {
	return strconv.FormatInt(int64(i), 10)
}
