package catalog

import (
	"context"
	"strings"
	"time"

	"design-service/internal/design"
	"design-service/internal/model"
	"design-service/prometheus"

	"gorm.io/gorm"
)

// maxCandidates caps how many candidates a slot query hands to the scorer.
const maxCandidates = 10

// Repository is the gorm-backed product catalog. It implements
// design.CatalogQuery for the engine and serves the product/category
// handlers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository on the given database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Find returns available candidate products for one slot query. Category
// keywords match against the category name; the unit price ceiling is a
// hard filter. Style and room type are soft refinements: they only narrow
// the result when at least one candidate survives them, mirroring how a
// designer relaxes secondary constraints before giving up on a slot.
func (r *Repository) Find(ctx context.Context, q design.Query) ([]model.Product, error) {
	start := time.Now()
	defer func() {
		prometheus.CatalogQueryDuration.Observe(time.Since(start).Seconds())
	}()

	query := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Joins("JOIN product_categories ON product_categories.id = products.category_id").
		Preload("Category").
		Where("products.is_available = ?", true)

	if q.MaxUnitPrice > 0 {
		query = query.Where("products.price <= ?", q.MaxUnitPrice)
	} else {
		// A zero ceiling means the slot has no budget; nothing can match.
		return nil, nil
	}

	if len(q.CategoryKeywords) > 0 {
		clauses := make([]string, 0, len(q.CategoryKeywords))
		args := make([]interface{}, 0, len(q.CategoryKeywords))
		for _, kw := range q.CategoryKeywords {
			clauses = append(clauses, "LOWER(product_categories.name) LIKE ?")
			args = append(args, "%"+strings.ToLower(kw)+"%")
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var products []model.Product
	if err := query.Order("products.id").Limit(50).Find(&products).Error; err != nil {
		return nil, err
	}

	products = refine(products, func(p *model.Product) bool {
		return q.Style != "" && strings.EqualFold(p.Style, q.Style)
	})
	products = refine(products, func(p *model.Product) bool {
		return q.RoomType != "" && strings.EqualFold(p.RoomType, q.RoomType)
	})

	if len(products) > maxCandidates {
		products = products[:maxCandidates]
	}
	return products, nil
}

// refine keeps only the products matching the predicate, unless that
// would leave none, in which case the original set is returned.
func refine(products []model.Product, match func(*model.Product) bool) []model.Product {
	var matched []model.Product
	for i := range products {
		if match(&products[i]) {
			matched = append(matched, products[i])
		}
	}
	if len(matched) == 0 {
		return products
	}
	return matched
}

// SuggestWithinBudget returns a few available products a session could
// afford, capping each item at a fraction of the stated budget. Used by
// the chat layer for inline suggestions.
func (r *Repository) SuggestWithinBudget(ctx context.Context, roomType, style string, budgetAmount float64, limit int) ([]model.Product, error) {
	// A single suggested item should not eat more than 20% of the
	// project budget.
	const maxItemShare = 0.2

	query := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Preload("Category").
		Where("is_available = ?", true)

	if budgetAmount > 0 {
		query = query.Where("price <= ?", budgetAmount*maxItemShare)
	}
	if roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}
	if style != "" {
		query = query.Where("style = ?", style)
	}

	var products []model.Product
	if err := query.Order("rating DESC, price DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
