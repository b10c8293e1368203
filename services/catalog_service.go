package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/models"
	"github.com/carneiroDotDev/sole-and-ankle/repository"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"github.com/carneiroDotDev/sole-and-ankle/views"
)

// Grid is one rendered page of the catalog
type Grid struct {
	HTML  string `json:"html"`
	Total int64  `json:"total"`
}

// CatalogService renders catalog shoes as cards
type CatalogService struct {
	repo     repository.ShoeRepository
	renderer *views.Renderer
	cache    GridCache
	cacheTTL time.Duration
}

// NewCatalogService wires the service. cache may be nil to disable caching.
func NewCatalogService(repo repository.ShoeRepository, renderer *views.Renderer, cache GridCache, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		repo:     repo,
		renderer: renderer,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ValidateFilter fills in the default sort order and rejects unknown ones
func ValidateFilter(filter repository.ListFilter) (repository.ListFilter, error) {
	switch filter.SortBy {
	case "":
		filter.SortBy = repository.SortNewest
	case repository.SortNewest, repository.SortPrice:
	default:
		return filter, utils.BadRequestError(utils.ErrInvalidSort, fmt.Errorf("unknown sort %q", filter.SortBy))
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter, nil
}

// Cards returns the computed cards of one catalog page and the total number of shoes
func (s *CatalogService) Cards(ctx context.Context, filter repository.ListFilter) ([]views.ShoeCardView, int64, error) {
	filter, err := ValidateFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	shoes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cards := make([]views.ShoeCardView, 0, len(shoes))
	for _, shoe := range shoes {
		cards = append(cards, s.renderer.Build(shoe.CardProps()))
	}
	return cards, total, nil
}

// GridHTML renders one catalog page as a card grid, serving from the cache when possible
func (s *CatalogService) GridHTML(ctx context.Context, filter repository.ListFilter) (Grid, error) {
	filter, err := ValidateFilter(filter)
	if err != nil {
		return Grid{}, err
	}

	key, cacheable := s.gridKey(ctx, filter)
	if cacheable {
		if grid, ok := s.cachedGrid(ctx, key); ok {
			return grid, nil
		}
	}

	cards, total, err := s.Cards(ctx, filter)
	if err != nil {
		return Grid{}, err
	}
	markup, err := views.HTML(s.renderer.RenderGrid(cards))
	if err != nil {
		return Grid{}, utils.WrapError(err, "render grid")
	}

	grid := Grid{HTML: markup, Total: total}
	if cacheable {
		s.storeGrid(ctx, key, grid)
	}
	return grid, nil
}

// Card returns the computed card of one shoe and its markup
func (s *CatalogService) Card(ctx context.Context, slug string) (views.ShoeCardView, string, error) {
	shoe, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return views.ShoeCardView{}, "", err
	}

	view := s.renderer.Build(shoe.CardProps())
	markup, err := views.HTML(s.renderer.RenderView(view))
	if err != nil {
		return views.ShoeCardView{}, "", utils.WrapError(err, "render card "+slug)
	}
	return view, markup, nil
}

// Save stores shoe and invalidates cached grids
func (s *CatalogService) Save(ctx context.Context, shoe *models.Shoe) error {
	if err := s.repo.Upsert(ctx, shoe); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// SeedSamples stores the sample catalog when the repository is empty
func (s *CatalogService) SeedSamples(ctx context.Context, now time.Time) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	samples := models.SampleShoes(now)
	for i := range samples {
		if err := s.repo.Upsert(ctx, &samples[i]); err != nil {
			return i, err
		}
	}
	s.invalidate(ctx)
	return len(samples), nil
}

func (s *CatalogService) gridKey(ctx context.Context, filter repository.ListFilter) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	version, err := s.cache.Version(ctx)
	if err != nil {
		utils.LogWarn("Failed to read grid cache version: %v", err)
		return "", false
	}
	return fmt.Sprintf("v%d:%s:%d:%d", version, filter.SortBy, filter.Limit, filter.Offset), true
}

func (s *CatalogService) cachedGrid(ctx context.Context, key string) (Grid, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			utils.LogWarn("Failed to read grid cache %s: %v", key, err)
		}
		return Grid{}, false
	}

	var grid Grid
	if err := json.Unmarshal(raw, &grid); err != nil {
		utils.LogWarn("Failed to decode cached grid %s: %v", key, err)
		return Grid{}, false
	}
	utils.LogDebug("Grid cache hit: %s", key)
	return grid, true
}

func (s *CatalogService) storeGrid(ctx context.Context, key string, grid Grid) {
	raw, err := json.Marshal(grid)
	if err != nil {
		utils.LogWarn("Failed to encode grid %s: %v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		utils.LogWarn("Failed to cache grid %s: %v", key, err)
	}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	version, err := s.cache.Bump(ctx)
	if err != nil {
		utils.LogError("Failed to invalidate grid cache: %v", err)
		return
	}
	utils.LogInfo("Grid cache invalidated, version %d", version)
}
