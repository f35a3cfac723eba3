package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	storesvc "github.com/lucvieira/gamedeals-backend/internal/stores"
)

type stubResolver struct {
	stores []storesvc.Store
}

func (s *stubResolver) ActiveStores(context.Context) []storesvc.Store {
	return s.stores
}

func TestListStoresReturnsActiveStores(t *testing.T) {
	resolver := &stubResolver{stores: []storesvc.Store{
		{StoreID: "1", StoreName: "Steam", IsActive: 1, Images: &storesvc.Images{Icon: "/img/icon.png", Logo: "/img/logo.png"}},
		{StoreID: "24", StoreName: "Epic Games", IsActive: 1},
	}}
	handler := ListStores(resolver, quietLogger())

	r := httptest.NewRequest("GET", "/api/v1/stores", nil)
	rec := httptest.NewRecorder()
	handler(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Items []struct {
				StoreID   string `json:"store_id"`
				StoreName string `json:"store_name"`
				Icon      string `json:"icon"`
				Logo      string `json:"logo"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(envelope.Data.Items) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(envelope.Data.Items))
	}
	if envelope.Data.Items[0].StoreName != "Steam" || envelope.Data.Items[0].Icon != "/img/icon.png" {
		t.Fatalf("unexpected first store: %+v", envelope.Data.Items[0])
	}
	if envelope.Data.Items[1].Icon != "" {
		t.Fatalf("expected empty icon for store without images, got %q", envelope.Data.Items[1].Icon)
	}
}

func TestListStoresEmptyListStillSucceeds(t *testing.T) {
	handler := ListStores(&stubResolver{}, quietLogger())

	r := httptest.NewRequest("GET", "/api/v1/stores", nil)
	rec := httptest.NewRecorder()
	handler(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Data struct {
			Items []any `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if envelope.Data.Items == nil {
		t.Fatalf("expected an empty items array, got null")
	}
}

func TestListStoresNilResolverIs500(t *testing.T) {
	handler := ListStores(nil, quietLogger())
	r := httptest.NewRequest("GET", "/api/v1/stores", nil)
	rec := httptest.NewRecorder()
	handler(rec, r)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
