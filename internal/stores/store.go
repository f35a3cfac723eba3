package stores

// Store is one externally sourced retailer/platform entry, referenced by
// deals via id. The upstream types the id as a string even though the values
// are numeric-looking.
type Store struct {
	StoreID   string  `json:"storeID"`
	StoreName string  `json:"storeName"`
	IsActive  int     `json:"isActive"`
	Images    *Images `json:"images,omitempty"`
}

// Images holds the optional artwork URLs the upstream publishes per store.
type Images struct {
	Banner string `json:"banner,omitempty"`
	Logo   string `json:"logo,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// Active reports whether the store is offered as a filter choice. Inactive
// stores still resolve names for deals that reference them.
func (s Store) Active() bool {
	return s.IsActive == 1
}

// Fallback returns the hardcoded store table used when the upstream store
// endpoint is unreachable. It keeps the catalog usable: deals are essential
// content, store metadata is enrichment.
func Fallback() []Store {
	return []Store{
		{StoreID: "1", StoreName: "Steam", IsActive: 1},
		{StoreID: "2", StoreName: "GamersGate", IsActive: 1},
		{StoreID: "3", StoreName: "GreenManGaming", IsActive: 1},
		{StoreID: "7", StoreName: "GOG", IsActive: 1},
		{StoreID: "8", StoreName: "Origin", IsActive: 1},
		{StoreID: "11", StoreName: "Humble Store", IsActive: 1},
		{StoreID: "13", StoreName: "Uplay", IsActive: 1},
		{StoreID: "15", StoreName: "Fanatical", IsActive: 1},
		{StoreID: "21", StoreName: "WinGameStore", IsActive: 1},
		{StoreID: "24", StoreName: "Epic Games", IsActive: 1},
	}
}
