package controllers

import (
	"context"
	"net/http"

	"github.com/lucvieira/gamedeals-backend/api/responses"
	storesvc "github.com/lucvieira/gamedeals-backend/internal/stores"
	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
)

// StoreResolver is the slice of the resolver the stores endpoint needs.
type StoreResolver interface {
	ActiveStores(ctx context.Context) []storesvc.Store
}

type storeResponse struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Icon      string `json:"icon,omitempty"`
	Logo      string `json:"logo,omitempty"`
}

// ListStores serves the active stores offered as filter choices. The
// resolver degrades to the fallback table internally, so this endpoint never
// fails on upstream trouble.
func ListStores(resolver StoreResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store resolver unavailable"))
			return
		}

		active := resolver.ActiveStores(r.Context())
		items := make([]storeResponse, 0, len(active))
		for _, s := range active {
			item := storeResponse{
				StoreID:   s.StoreID,
				StoreName: s.StoreName,
			}
			if s.Images != nil {
				item.Icon = s.Images.Icon
				item.Logo = s.Images.Logo
			}
			items = append(items, item)
		}

		responses.WriteSuccess(w, map[string]any{"items": items})
	}
}
