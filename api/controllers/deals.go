package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lucvieira/gamedeals-backend/api/responses"
	"github.com/lucvieira/gamedeals-backend/api/validators"
	dealsvc "github.com/lucvieira/gamedeals-backend/internal/deals"
	"github.com/lucvieira/gamedeals-backend/pkg/config"
	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
)

type listDealsQuery struct {
	Query       string  `json:"q"`
	StoreID     string  `json:"store_id" validate:"omitempty,numeric"`
	LowerPrice  float64 `json:"lower_price" validate:"gte=0"`
	UpperPrice  float64 `json:"upper_price" validate:"gte=0,gtefield=LowerPrice"`
	MinDiscount float64 `json:"min_discount" validate:"gte=0,lte=100"`
	Page        int     `json:"page" validate:"gte=1"`
	PageSize    int     `json:"page_size" validate:"gte=1,lte=100"`
}

// ListDeals serves the filtered, sorted, paginated deal catalog.
func ListDeals(svc dealsvc.Service, catalogCfg config.CatalogConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query, err := parseListDealsQuery(r, catalogCfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		criteria := dealsvc.Criteria{
			Query:       query.Query,
			StoreID:     query.StoreID,
			LowerPrice:  decimal.NewFromFloat(query.LowerPrice),
			UpperPrice:  decimal.NewFromFloat(query.UpperPrice),
			MinDiscount: query.MinDiscount,
			SortBy:      dealsvc.ParseSortKey(r.URL.Query().Get("sort_by")),
		}

		result, err := svc.List(r.Context(), criteria, query.Page, query.PageSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func parseListDealsQuery(r *http.Request, catalogCfg config.CatalogConfig) (*listDealsQuery, error) {
	lower, err := validators.ParseQueryFloat(r, "lower_price", 0)
	if err != nil {
		return nil, err
	}
	upper, err := validators.ParseQueryFloat(r, "upper_price", catalogCfg.DefaultUpperPrice)
	if err != nil {
		return nil, err
	}
	minDiscount, err := validators.ParseQueryFloat(r, "min_discount", 0)
	if err != nil {
		return nil, err
	}
	page, err := validators.ParseQueryInt(r, "page", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := validators.ParseQueryInt(r, "page_size", catalogCfg.PageSize)
	if err != nil {
		return nil, err
	}

	query := &listDealsQuery{
		Query:       strings.TrimSpace(r.URL.Query().Get("q")),
		StoreID:     strings.TrimSpace(r.URL.Query().Get("store_id")),
		LowerPrice:  lower,
		UpperPrice:  upper,
		MinDiscount: minDiscount,
		Page:        page,
		PageSize:    pageSize,
	}
	if err := validators.ValidateStruct(query); err != nil {
		return nil, err
	}
	return query, nil
}

// GetDeal serves the detail projection for a single deal.
func GetDeal(svc dealsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		dealKey := chi.URLParam(r, "dealKey")
		detail, err := svc.Get(r.Context(), dealKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}

// RedirectDeal sends the client to the originating store via the upstream
// redirect link. Deals without a primary external id are not linkable.
func RedirectDeal(svc dealsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		dealKey := chi.URLParam(r, "dealKey")
		target, err := svc.RedirectURL(r.Context(), dealKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	}
}
