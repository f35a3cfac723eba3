package cheapshark

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucvieira/gamedeals-backend/pkg/config"
	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(config.CheapSharkConfig{BaseURL: baseURL}, quietLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return c
}

func TestNewClientValidatesInputs(t *testing.T) {
	if _, err := NewClient(config.CheapSharkConfig{BaseURL: "https://api.example"}, nil, nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}
	if _, err := NewClient(config.CheapSharkConfig{BaseURL: "   "}, quietLogger(), nil); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	c := newTestClient(t, "https://api.example/v1/")
	if got := c.RedirectURL("abc"); got != "https://api.example/v1/redirect?dealID=abc" {
		t.Fatalf("unexpected redirect url: %s", got)
	}
}

func TestFetchDealsDecodesUpstreamPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/deals" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"dealID": "a", "title": "Portal 2", "storeID": "1", "salePrice": "4.99", "normalPrice": "19.99", "savings": "75.012"},
			{"dealID": "b", "title": "Celeste", "storeID": 24, "salePrice": 9.99, "normalPrice": 19.99, "savings": 50}
		]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.FetchDeals(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 deals, got %d", len(got))
	}
	if got[0].Title != "Portal 2" || got[0].StoreID != 1 {
		t.Fatalf("unexpected first deal: %+v", got[0])
	}
	if got[1].StoreID != 24 {
		t.Fatalf("expected numeric store id to decode, got %+v", got[1])
	}
}

func TestFetchStoresDecodesUpstreamPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stores" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"storeID": "1", "storeName": "Steam", "isActive": 1, "images": {"icon": "/img/icon.png"}},
			{"storeID": "25", "storeName": "Dusty Shelf", "isActive": 0}
		]`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.FetchStores(context.Background())
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(got))
	}
	if got[0].StoreName != "Steam" || !got[0].Active() {
		t.Fatalf("unexpected first store: %+v", got[0])
	}
	if got[0].Images == nil || got[0].Images.Icon != "/img/icon.png" {
		t.Fatalf("expected icon image to decode, got %+v", got[0].Images)
	}
	if got[1].Active() {
		t.Fatalf("inactive store decoded as active")
	}
}

func TestFetchDealsBadStatusIsDependencyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchDeals(context.Background())
	if err == nil {
		t.Fatalf("expected error for bad status")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	details, ok := typed.Details().(map[string]any)
	if !ok || details["status"] != http.StatusBadGateway {
		t.Fatalf("expected status detail, got %v", typed.Details())
	}
}

func TestFetchDealsMalformedBodyIsDependencyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not": "a list"`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchDeals(context.Background())
	if err == nil {
		t.Fatalf("expected error for malformed body")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestFetchDealsNetworkErrorIsDependencyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.FetchDeals(context.Background())
	if err == nil {
		t.Fatalf("expected error for unreachable upstream")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestRedirectURLEscapesDealID(t *testing.T) {
	c := newTestClient(t, "https://api.example")
	got := c.RedirectURL("abc/def&x=1")
	want := "https://api.example/redirect?dealID=abc%2Fdef%26x%3D1"
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
