package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/models"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
)

// MemoryShoeRepository keeps shoes in process memory. It backs local runs
// without a database and the service tests.
type MemoryShoeRepository struct {
	mu     sync.RWMutex
	shoes  map[string]models.Shoe
	nextID uint
}

// NewMemoryShoeRepository returns an empty in-memory repository
func NewMemoryShoeRepository() *MemoryShoeRepository {
	return &MemoryShoeRepository{shoes: make(map[string]models.Shoe)}
}

func effectivePrice(s models.Shoe) int {
	if s.SalePrice != nil {
		return *s.SalePrice
	}
	return s.Price
}

func (r *MemoryShoeRepository) List(ctx context.Context, filter ListFilter) ([]models.Shoe, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]models.Shoe, 0, len(r.shoes))
	for _, shoe := range r.shoes {
		if shoe.IsActive {
			active = append(active, shoe)
		}
	}

	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if filter.SortBy == SortPrice {
			if pa, pb := effectivePrice(a), effectivePrice(b); pa != pb {
				return pa < pb
			}
		} else if !a.ReleaseDate.Equal(b.ReleaseDate) {
			return a.ReleaseDate.After(b.ReleaseDate)
		}
		return a.Slug < b.Slug
	})

	total := int64(len(active))
	start := filter.Offset
	if start > len(active) {
		start = len(active)
	}
	end := len(active)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return active[start:end], total, nil
}

func (r *MemoryShoeRepository) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shoe, ok := r.shoes[slug]
	if !ok || !shoe.IsActive {
		return nil, utils.NotFoundError(utils.ErrShoeNotFound, nil)
	}
	return &shoe, nil
}

func (r *MemoryShoeRepository) Upsert(ctx context.Context, shoe *models.Shoe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.shoes[shoe.Slug]; ok {
		shoe.ID = existing.ID
		shoe.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		shoe.ID = r.nextID
		shoe.CreatedAt = now
	}
	shoe.UpdatedAt = now
	r.shoes[shoe.Slug] = *shoe
	return nil
}

func (r *MemoryShoeRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.shoes)), nil
}
