package deals

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/pagination"
)

// Source fetches the raw deal list and composes store redirect links.
type Source interface {
	FetchDeals(ctx context.Context) ([]Deal, error)
	RedirectURL(dealID string) string
}

// StoreNamer resolves a store id into a display name. It never fails.
type StoreNamer interface {
	StoreName(ctx context.Context, storeID string) string
}

// Service exposes the deal catalog operations.
type Service interface {
	List(ctx context.Context, criteria Criteria, page, pageSize int) (*ListResult, error)
	Get(ctx context.Context, key string) (*Detail, error)
	RedirectURL(ctx context.Context, key string) (string, error)
}

// ServiceParams configure the catalog service.
type ServiceParams struct {
	Source      Source
	Stores      StoreNamer
	Logger      *logger.Logger
	Shared      SharedCache
	SnapshotTTL time.Duration
}

type service struct {
	source Source
	stores StoreNamer
	logg   *logger.Logger
	shared SharedCache
	ttl    time.Duration

	group     singleflight.Group
	mu        sync.RWMutex
	snap      []Deal
	fetchedAt time.Time
}

const defaultSnapshotTTL = 5 * time.Minute

// NewService builds a catalog service over the provided deal source.
func NewService(params ServiceParams) (Service, error) {
	if params.Source == nil {
		return nil, fmt.Errorf("deal source required")
	}
	if params.Stores == nil {
		return nil, fmt.Errorf("store namer required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	ttl := params.SnapshotTTL
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &service{
		source: params.Source,
		stores: params.Stores,
		logg:   params.Logger,
		shared: params.Shared,
		ttl:    ttl,
	}, nil
}

func (s *service) List(ctx context.Context, criteria Criteria, page, pageSize int) (*ListResult, error) {
	all, err := s.currentDeals(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ApplyCriteria(all, criteria)
	p := pagination.Paginate(filtered, pageSize, page)

	items := make([]Summary, 0, len(p.Items))
	for _, d := range p.Items {
		items = append(items, NewSummary(d, s.stores.StoreName(ctx, d.StoreID.String())))
	}

	return &ListResult{
		Items:      items,
		Page:       page,
		PageSize:   pagination.NormalizePageSize(pageSize),
		TotalPages: p.TotalPages,
		TotalItems: len(filtered),
	}, nil
}

func (s *service) Get(ctx context.Context, key string) (*Detail, error) {
	d, err := s.find(ctx, key)
	if err != nil {
		return nil, err
	}

	redirectURL := ""
	if d.Linkable() {
		redirectURL = s.source.RedirectURL(d.DealID)
	}
	detail := NewDetail(*d, s.stores.StoreName(ctx, d.StoreID.String()), redirectURL)
	return &detail, nil
}

func (s *service) RedirectURL(ctx context.Context, key string) (string, error) {
	d, err := s.find(ctx, key)
	if err != nil {
		return "", err
	}
	if !d.Linkable() {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "deal has no store link")
	}
	return s.source.RedirectURL(d.DealID), nil
}

func (s *service) find(ctx context.Context, key string) (*Deal, error) {
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "deal key is required")
	}
	all, err := s.currentDeals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Key() == key {
			d := all[i]
			return &d, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "deal not found")
}

// currentDeals returns the in-memory snapshot, refreshing it through a
// single flight when the TTL has lapsed. Callers must treat the returned
// slice as read-only. A refresh failure keeps serving the previous snapshot;
// with nothing cached the failure propagates, because deals are essential
// content with no fallback.
func (s *service) currentDeals(ctx context.Context) ([]Deal, error) {
	s.mu.RLock()
	if s.snap != nil && time.Since(s.fetchedAt) < s.ttl {
		snap := s.snap
		s.mu.RUnlock()
		return snap, nil
	}
	stale := s.snap
	s.mu.RUnlock()

	v, err, _ := s.group.Do("deals", func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		if stale != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "deal snapshot refresh failed, serving previous snapshot")
			return stale, nil
		}
		return nil, err
	}
	return v.([]Deal), nil
}

func (s *service) refresh(ctx context.Context) ([]Deal, error) {
	if s.shared != nil {
		if cached, ok := s.shared.GetSnapshot(ctx); ok {
			s.store(cached)
			return cached, nil
		}
	}

	fetched, err := s.source.FetchDeals(ctx)
	if err != nil {
		return nil, err
	}

	usable := make([]Deal, 0, len(fetched))
	for _, d := range fetched {
		if d.Key() == "" {
			continue
		}
		usable = append(usable, d)
	}
	if dropped := len(fetched) - len(usable); dropped > 0 {
		s.logg.Warn(s.logg.WithField(ctx, "dropped", dropped), "dropped deals without a usable identifier")
	}

	s.store(usable)
	if s.shared != nil {
		s.shared.SetSnapshot(ctx, usable)
	}
	s.logg.Info(s.logg.WithField(ctx, "deals", len(usable)), "deal snapshot refreshed")
	return usable, nil
}

func (s *service) store(snap []Deal) {
	s.mu.Lock()
	s.snap = snap
	s.fetchedAt = time.Now()
	s.mu.Unlock()
}
