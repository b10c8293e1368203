package repository

import (
	"context"
	"errors"

	"github.com/carneiroDotDev/sole-and-ankle/models"
	"github.com/carneiroDotDev/sole-and-ankle/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort orders accepted by List
const (
	SortNewest = "newest"
	SortPrice  = "price"
)

// ListFilter selects a page of active shoes. A zero Limit returns every match.
type ListFilter struct {
	SortBy string
	Limit  int
	Offset int
}

// ShoeRepository stores catalog shoes
type ShoeRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Shoe, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Shoe, error)
	Upsert(ctx context.Context, shoe *models.Shoe) error
	Count(ctx context.Context) (int64, error)
}

type gormShoeRepository struct {
	db *gorm.DB
}

// NewShoeRepository returns a ShoeRepository backed by db
func NewShoeRepository(db *gorm.DB) ShoeRepository {
	return &gormShoeRepository{db: db}
}

func orderClause(sortBy string) string {
	if sortBy == SortPrice {
		return "COALESCE(sale_price, price) ASC, slug ASC"
	}
	return "release_date DESC, slug ASC"
}

func (r *gormShoeRepository) List(ctx context.Context, filter ListFilter) ([]models.Shoe, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Shoe{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, utils.WrapError(err, "count shoes")
	}

	query = query.Order(orderClause(filter.SortBy)).Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var shoes []models.Shoe
	if err := query.Find(&shoes).Error; err != nil {
		return nil, 0, utils.WrapError(err, "list shoes")
	}
	return shoes, total, nil
}

func (r *gormShoeRepository) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	var shoe models.Shoe
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&shoe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFoundError(utils.ErrShoeNotFound, err)
	}
	if err != nil {
		return nil, utils.WrapError(err, "get shoe "+slug)
	}
	return &shoe, nil
}

// Upsert inserts shoe or updates the row with the same slug. The stored row is
// scanned back into shoe, so an update reports the original ID and CreatedAt.
func (r *gormShoeRepository) Upsert(ctx context.Context, shoe *models.Shoe) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "image_src", "price", "sale_price", "release_date", "num_of_colors", "is_active", "updated_at",
		}),
	}, clause.Returning{}).Create(shoe).Error
	return utils.WrapError(err, "upsert shoe "+shoe.Slug)
}

func (r *gormShoeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Shoe{}).Count(&total).Error
	return total, utils.WrapError(err, "count shoes")
}
