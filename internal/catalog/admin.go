package catalog

import (
	"context"
	"errors"

	"design-service/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced catalog row does not exist.
var ErrNotFound = errors.New("catalog: not found")

// ErrDuplicateSKU is returned when a product create/update collides with
// an existing SKU.
var ErrDuplicateSKU = errors.New("catalog: product with this SKU already exists")

// ProductFilter narrows product listings.
type ProductFilter struct {
	Available  *bool
	CategoryID uint
	RoomType   string
	Style      string
}

// ListProducts retrieves products with optional filtering.
func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Preload("Category")

	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.RoomType != "" {
		query = query.Where("room_type = ?", filter.RoomType)
	}
	if filter.Style != "" {
		query = query.Where("style = ?", filter.Style)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a single product by ID.
func (r *Repository) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product after checking SKU uniqueness.
func (r *Repository) CreateProduct(ctx context.Context, product *model.Product) error {
	var count int64
	r.db.WithContext(ctx).Model(&model.Product{}).Where("sku = ?", product.SKU).Count(&count)
	if count > 0 {
		return ErrDuplicateSKU
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct persists changes to an existing product.
func (r *Repository) UpdateProduct(ctx context.Context, product *model.Product) error {
	if product.SKU != "" {
		var count int64
		r.db.WithContext(ctx).Model(&model.Product{}).
			Where("sku = ? AND id != ?", product.SKU, product.ID).Count(&count)
		if count > 0 {
			return ErrDuplicateSKU
		}
	}
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteProduct soft-deletes a product.
func (r *Repository) DeleteProduct(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories retrieves all product categories.
func (r *Repository) ListCategories(ctx context.Context) ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a new product category.
func (r *Repository) CreateCategory(ctx context.Context, category *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}
