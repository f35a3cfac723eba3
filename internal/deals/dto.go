package deals

// Summary is the listing projection of a deal, with display-ready prices and
// the resolved store name.
type Summary struct {
	Key         string  `json:"key"`
	DealID      string  `json:"deal_id,omitempty"`
	Title       string  `json:"title"`
	StoreID     string  `json:"store_id"`
	StoreName   string  `json:"store_name"`
	SalePrice   string  `json:"sale_price"`
	NormalPrice string  `json:"normal_price"`
	Savings     string  `json:"savings"`
	DealRating  float64 `json:"deal_rating"`
	Thumb       string  `json:"thumb,omitempty"`
}

// Detail extends Summary with the extended fields shown on the deal detail
// view. RedirectURL is present only for deals carrying the primary external
// id.
type Detail struct {
	Summary

	SteamRatingText    string  `json:"steam_rating_text,omitempty"`
	SteamRatingPercent float64 `json:"steam_rating_percent,omitempty"`
	SteamAppID         string  `json:"steam_app_id,omitempty"`
	ReleaseDate        string  `json:"release_date,omitempty"`
	LastChange         string  `json:"last_change,omitempty"`
	RedirectURL        string  `json:"redirect_url,omitempty"`
}

// ListResult is one page of filtered deals plus the counts a client needs to
// render pagination controls.
type ListResult struct {
	Items      []Summary `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
	TotalItems int       `json:"total_items"`
}

// NewSummary maps a deal into its listing projection.
func NewSummary(d Deal, storeName string) Summary {
	return Summary{
		Key:         d.Key(),
		DealID:      d.DealID,
		Title:       d.Title,
		StoreID:     d.StoreID.String(),
		StoreName:   storeName,
		SalePrice:   FormatPrice(d.SalePrice),
		NormalPrice: FormatPrice(d.NormalPrice),
		Savings:     FormatSavings(d.Savings.Float64()),
		DealRating:  d.DealRating.Float64(),
		Thumb:       d.Thumb,
	}
}

// NewDetail maps a deal into its detail projection.
func NewDetail(d Deal, storeName, redirectURL string) Detail {
	return Detail{
		Summary:            NewSummary(d, storeName),
		SteamRatingText:    d.SteamRatingText,
		SteamRatingPercent: d.SteamRatingPercent.Float64(),
		SteamAppID:         d.SteamAppID,
		ReleaseDate:        FormatEpochDate(d.ReleaseDate),
		LastChange:         FormatEpochDate(d.LastChange),
		RedirectURL:        redirectURL,
	}
}
