package design

import (
	"context"

	"design-service/internal/model"

	"go.uber.org/zap"
)

// LaborCategory is the breakdown category labor costs appear under.
const LaborCategory = "Labor & Installation"

// BreakdownItem is one line of a category's cost breakdown.
type BreakdownItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// CategoryCost groups the breakdown lines of one category.
type CategoryCost struct {
	Items    []BreakdownItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// CategoryBreakdown is one category of the cost breakdown, carried in a
// slice so responses keep display order where a map would not.
type CategoryBreakdown struct {
	Category string          `json:"category"`
	Items    []BreakdownItem `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// Result is one assembled design: a selection per slot, reconciled costs
// and the derived summaries. It is owned by the Assemble call that built
// it and never mutated afterwards.
type Result struct {
	Template          *model.LayoutTemplate
	Selections        []*model.ProductSelection
	MaterialBudget    float64
	MaterialCost      float64
	LaborCost         float64
	TotalCost         float64
	BudgetUtilization float64
	CostBreakdown     map[string]*CategoryCost
	BreakdownOrder    []string
	DesignFeatures    []string
	Reasoning         string
	ReasoningFallback bool
	SynthesizedCount  int
}

// Assemble runs the full pipeline for one design request: budget split,
// per-slot candidate scoring with synthesized fallback, reconciliation and
// cost summaries. The template's slot configuration is normalized once
// here; a malformed configuration fails the call with ConfigurationError.
func (e *Engine) Assemble(ctx context.Context, template *model.LayoutTemplate, prefs Preferences, totalBudget float64) (*Result, error) {
	slots, err := NormalizeSlots(template.Slots)
	if err != nil {
		return nil, err
	}

	materialBudget := round2(totalBudget * (1 - e.cfg.LaborRate))
	laborCost := round2(totalBudget * e.cfg.LaborRate)

	slotBudgets := AllocateSlotBudgets(slots, materialBudget)

	result := &Result{
		Template:       template,
		MaterialBudget: materialBudget,
		LaborCost:      laborCost,
		Selections:     make([]*model.ProductSelection, 0, len(slots)),
	}

	for _, slot := range slots {
		selection := e.fillSlot(ctx, slot, slotBudgets[slot.Name], prefs)
		if selection.IsEstimated {
			result.SynthesizedCount++
		}
		result.Selections = append(result.Selections, selection)
	}

	e.Reconcile(result.Selections, materialBudget)

	var materialCost float64
	for _, sel := range result.Selections {
		materialCost += sel.TotalPrice
	}
	result.MaterialCost = round2(materialCost)
	result.TotalCost = round2(result.MaterialCost + laborCost)
	if totalBudget > 0 {
		result.BudgetUtilization = round1(result.TotalCost / totalBudget * 100)
	}

	result.CostBreakdown, result.BreakdownOrder = e.costBreakdown(result.Selections, laborCost)
	result.DesignFeatures = DesignFeatures(template)
	result.Reasoning, result.ReasoningFallback = e.designReasoning(ctx, template, prefs, totalBudget)

	return result, nil
}

// OrderedBreakdown flattens the cost breakdown into display order: the
// order categories were first encountered, labor last.
func (r *Result) OrderedBreakdown() []CategoryBreakdown {
	out := make([]CategoryBreakdown, 0, len(r.BreakdownOrder))
	for _, category := range r.BreakdownOrder {
		group := r.CostBreakdown[category]
		out = append(out, CategoryBreakdown{
			Category: category,
			Items:    group.Items,
			Subtotal: group.Subtotal,
		})
	}
	return out
}

// fillSlot produces exactly one selection for a slot: the best catalog
// candidate when one fits the slot budget within tolerance, otherwise a
// synthesized placeholder. A catalog failure is a partial miss, recovered
// locally, never an error.
func (e *Engine) fillSlot(ctx context.Context, slot Slot, slotBudget float64, prefs Preferences) *model.ProductSelection {
	maxUnitPrice := slotBudget / float64(slot.Quantity)

	candidates, err := e.catalog.Find(ctx, Query{
		CategoryKeywords: CategoryKeywords(slot.Category),
		MaxUnitPrice:     maxUnitPrice * e.cfg.PriceTolerance,
		Style:            prefs.Style,
		RoomType:         prefs.RoomType,
	})
	if err != nil {
		e.log.Warn("catalog query failed, synthesizing slot",
			zap.String("slot", slot.Name),
			zap.Error(err))
		return e.Synthesize(slot, slotBudget)
	}

	product := SelectProduct(candidates, slot, prefs, slotBudget)
	if product == nil {
		return e.Synthesize(slot, slotBudget)
	}

	// Round the unit price first and derive the total from it, so the
	// stored pair stays consistent for sub-cent catalog prices.
	unitPrice := round2(product.Price)
	totalPrice := round2(unitPrice * float64(slot.Quantity))
	if totalPrice > slotBudget*e.cfg.AcceptTolerance {
		return e.Synthesize(slot, slotBudget)
	}

	productID := product.ID
	return &model.ProductSelection{
		ProductID:  &productID,
		Product:    product,
		SlotName:   slot.Name,
		Name:       product.Name,
		Quantity:   slot.Quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
		Reasoning:  productReasoning(product, slot, prefs),
	}
}

// costBreakdown groups selections by category: the real product category
// when there is one, a slot-name-derived category for synthesized items,
// and Miscellaneous when neither applies. Labor is its own category.
func (e *Engine) costBreakdown(selections []*model.ProductSelection, laborCost float64) (map[string]*CategoryCost, []string) {
	breakdown := make(map[string]*CategoryCost)
	var order []string

	add := func(category string, item BreakdownItem) {
		group, ok := breakdown[category]
		if !ok {
			group = &CategoryCost{}
			breakdown[category] = group
			order = append(order, category)
		}
		group.Items = append(group.Items, item)
		group.Subtotal = round2(group.Subtotal + item.TotalPrice)
	}

	for _, sel := range selections {
		category := ""
		if sel.Product != nil && sel.Product.Category.Name != "" {
			category = sel.Product.Category.Name
		} else {
			category = categoryForSlotName(sel.SlotName)
		}
		add(category, BreakdownItem{
			Name:       sel.Name,
			Quantity:   sel.Quantity,
			UnitPrice:  sel.UnitPrice,
			TotalPrice: sel.TotalPrice,
		})
	}

	if laborCost > 0 {
		add(LaborCategory, BreakdownItem{
			Name:       "Design & Installation Labor",
			Quantity:   1,
			UnitPrice:  laborCost,
			TotalPrice: laborCost,
		})
	}

	return breakdown, order
}
