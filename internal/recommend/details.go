package recommend

import (
	"context"
	"math"
	"time"

	"design-service/internal/design"
	"design-service/internal/model"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// ProductDetail is one selection line of a design's detail view. Catalog
// fields are filled for real products; synthesized items carry the
// is_estimated marker instead.
type ProductDetail struct {
	ID         uint    `json:"id"`
	SlotName   string  `json:"slot_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Reasoning  string  `json:"reasoning"`

	Name        string   `json:"name"`
	Category    string   `json:"category"`
	ProductID   *uint    `json:"product_id,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	Style       string   `json:"style,omitempty"`
	Material    string   `json:"material,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	IsEstimated bool     `json:"is_estimated,omitempty"`
}

// CategoryTotal aggregates real-product spend per catalog category.
type CategoryTotal struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// CostAnalysis summarizes a design's spend.
type CostAnalysis struct {
	TotalCost         float64                  `json:"total_cost"`
	MaterialCost      float64                  `json:"material_cost"`
	LaborCost         float64                  `json:"labor_cost"`
	BudgetUtilization float64                  `json:"budget_utilization"`
	TotalItems        int                      `json:"total_items"`
	AverageItemCost   float64                  `json:"average_item_cost"`
	CostPerSqft       float64                  `json:"cost_per_sqft"`
	CategoryBreakdown map[string]CategoryTotal `json:"category_breakdown"`
}

// TemplateInfo is the template metadata embedded in a detail view.
type TemplateInfo struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	RoomType        string           `json:"room_type"`
	Style           string           `json:"style"`
	Description     string           `json:"description"`
	ColorPalette    model.StringList `json:"color_palette"`
	EstimatedBudget model.JSONMap    `json:"estimated_budget"`
}

// Detail is the full design detail response.
type Detail struct {
	DesignID        uint                 `json:"design_id"`
	Template        TemplateInfo         `json:"template"`
	RoomDetails     map[string]any       `json:"room_details"`
	UserPreferences model.JSONMap        `json:"user_preferences"`
	Reasoning       string               `json:"reasoning"`
	CostAnalysis    CostAnalysis         `json:"cost_analysis"`
	Products        []ProductDetail      `json:"products"`
	Status          string               `json:"status"`
	Timestamps      map[string]time.Time `json:"timestamps"`
}

// Details loads a stored design and derives its full detail view.
func (s *Service) Details(ctx context.Context, designID uint) (*Detail, error) {
	rec, err := s.designs.Get(ctx, designID)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDetail, 0, len(rec.Selections))
	categoryTotals := make(map[string]CategoryTotal)
	totalItems := 0

	for _, sel := range rec.Selections {
		detail := ProductDetail{
			ID:         sel.ID,
			SlotName:   sel.SlotName,
			Quantity:   sel.Quantity,
			UnitPrice:  sel.UnitPrice,
			TotalPrice: sel.TotalPrice,
			Reasoning:  sel.Reasoning,
			Name:       sel.Name,
		}
		totalItems += sel.Quantity

		if sel.Product != nil {
			p := sel.Product
			detail.ProductID = sel.ProductID
			detail.SKU = p.SKU
			detail.Category = p.Category.Name
			detail.Style = p.Style
			detail.Material = p.Material
			detail.Description = p.Description
			rating := p.Rating
			detail.Rating = &rating
			available := p.IsAvailable
			detail.IsAvailable = &available

			totals := categoryTotals[p.Category.Name]
			totals.Count += sel.Quantity
			totals.Total = round2(totals.Total + sel.TotalPrice)
			categoryTotals[p.Category.Name] = totals
		} else {
			if detail.Name == "" {
				detail.Name = "Estimated " + design.TitleWords(sel.SlotName)
			}
			detail.Category = "Estimated"
			detail.IsEstimated = true
		}

		products = append(products, detail)
	}

	analysis := CostAnalysis{
		TotalCost:         rec.TotalCost,
		MaterialCost:      rec.MaterialCost,
		LaborCost:         rec.LaborCost,
		BudgetUtilization: rec.BudgetUtilization,
		TotalItems:        totalItems,
		CategoryBreakdown: categoryTotals,
	}
	if totalItems > 0 {
		analysis.AverageItemCost = round2(rec.TotalCost / float64(totalItems))
	}
	area := areaSqft(rec.RoomDimensions)
	if area < 1 {
		area = 1
	}
	analysis.CostPerSqft = round2(rec.TotalCost / area)

	return &Detail{
		DesignID: rec.ID,
		Template: TemplateInfo{
			ID:              rec.LayoutTemplate.ID,
			Name:            rec.LayoutTemplate.Name,
			RoomType:        rec.LayoutTemplate.RoomType,
			Style:           rec.LayoutTemplate.Style,
			Description:     rec.LayoutTemplate.Description,
			ColorPalette:    rec.LayoutTemplate.ColorPalette,
			EstimatedBudget: rec.LayoutTemplate.EstimatedBudget,
		},
		RoomDetails: map[string]any{
			"dimensions": rec.RoomDimensions,
			"area_sqft":  areaSqft(rec.RoomDimensions),
		},
		UserPreferences: rec.UserPreferences,
		Reasoning:       rec.Reasoning,
		CostAnalysis:    analysis,
		Products:        products,
		Status:          rec.Status,
		Timestamps: map[string]time.Time{
			"created_at": rec.CreatedAt,
			"updated_at": rec.UpdatedAt,
		},
	}, nil
}

func areaSqft(dimensions model.JSONMap) float64 {
	if dimensions == nil {
		return 0
	}
	if v, ok := dimensions["area_sqft"].(float64); ok {
		return v
	}
	return 0
}
