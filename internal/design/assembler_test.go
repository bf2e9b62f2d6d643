package design

import (
	"context"
	"errors"
	"testing"

	"design-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves canned candidates keyed by the first category
// keyword of each query.
type fakeCatalog struct {
	byKeyword map[string][]model.Product
	err       error
	queries   []Query
}

func (f *fakeCatalog) Find(_ context.Context, q Query) ([]model.Product, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if len(q.CategoryKeywords) == 0 {
		return nil, nil
	}
	var out []model.Product
	for _, kw := range q.CategoryKeywords {
		for _, p := range f.byKeyword[kw] {
			if p.Price <= q.MaxUnitPrice {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeTexter struct {
	text string
	err  error
}

func (f *fakeTexter) Generate(context.Context, string) (string, error) {
	return f.text, f.err
}

func kitchenTemplate() *model.LayoutTemplate {
	return &model.LayoutTemplate{
		ID:       1,
		Name:     "Modern Kitchen",
		RoomType: "kitchen",
		Style:    "modern",
		Slots: model.RawJSON(`[
			{"name": "kitchen_cabinet", "category": "storage", "required": true, "quantity": 1, "budget_percentage": 40},
			{"name": "kitchen_island", "category": "table", "required": true, "quantity": 1, "budget_percentage": 25},
			{"name": "bar_stools", "category": "seating", "required": false, "quantity": 3, "budget_percentage": 15},
			{"name": "pendant_lights", "category": "lighting", "required": false, "quantity": 2, "budget_percentage": 12},
			{"name": "kitchen_appliances", "category": "appliances", "required": false, "quantity": 1, "budget_percentage": 8}
		]`),
	}
}

func TestAssembleModernKitchen(t *testing.T) {
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{
		"cabinet": {{ID: 1, Name: "Shaker Cabinet Set", Price: 2400, Style: "modern", RoomType: "kitchen", IsAvailable: true, Rating: 4.5}},
		"island":  {{ID: 2, Name: "Quartz Island", Price: 1500, Style: "modern", RoomType: "kitchen", IsAvailable: true, Rating: 4.2}},
		"stool":   {{ID: 3, Name: "Walnut Bar Stool", Price: 280, Style: "modern", RoomType: "kitchen", IsAvailable: true, Rating: 4.0}},
	}}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	result, err := engine.Assemble(context.Background(), kitchenTemplate(),
		Preferences{Style: "modern", RoomType: "kitchen"}, 8000)

	require.NoError(t, err)

	// budget split
	assert.InDelta(t, 6800, result.MaterialBudget, 0.01)
	assert.InDelta(t, 1200, result.LaborCost, 0.01)

	// full slot coverage: one selection per slot, in slot order
	require.Len(t, result.Selections, 5)
	names := make([]string, 0, 5)
	for _, sel := range result.Selections {
		names = append(names, sel.SlotName)
	}
	assert.Equal(t, []string{"kitchen_cabinet", "kitchen_island", "bar_stools", "pendant_lights", "kitchen_appliances"}, names)

	// catalog hits for stocked slots, synthesized for the rest
	bySlot := make(map[string]*model.ProductSelection)
	for _, sel := range result.Selections {
		bySlot[sel.SlotName] = sel
	}
	assert.NotNil(t, bySlot["kitchen_cabinet"].ProductID)
	assert.NotNil(t, bySlot["kitchen_island"].ProductID)
	assert.NotNil(t, bySlot["bar_stools"].ProductID)
	assert.True(t, bySlot["pendant_lights"].IsEstimated)
	assert.True(t, bySlot["kitchen_appliances"].IsEstimated)
	assert.Equal(t, 2, result.SynthesizedCount)

	// price consistency after reconciliation
	for _, sel := range result.Selections {
		assert.InDelta(t, sel.UnitPrice*float64(sel.Quantity), sel.TotalPrice, 0.01,
			"slot %s", sel.SlotName)
	}

	// budget convergence: material spend within [0.98, 1.05] of budget
	assert.GreaterOrEqual(t, result.MaterialCost, 6800*0.98)
	assert.LessOrEqual(t, result.MaterialCost, 6800*1.05)
	assert.InDelta(t, result.MaterialCost+result.LaborCost, result.TotalCost, 0.01)
	assert.Greater(t, result.BudgetUtilization, 0.0)

	// breakdown covers labor
	require.Contains(t, result.CostBreakdown, LaborCategory)
	assert.InDelta(t, 1200, result.CostBreakdown[LaborCategory].Subtotal, 0.01)

	// fallback reasoning references the template
	assert.True(t, result.ReasoningFallback)
	assert.Contains(t, result.Reasoning, "Modern Kitchen")

	assert.NotEmpty(t, result.DesignFeatures)
}

func TestAssembleEmptyCatalog(t *testing.T) {
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{}}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	result, err := engine.Assemble(context.Background(), kitchenTemplate(),
		Preferences{Style: "modern", RoomType: "kitchen"}, 8000)

	require.NoError(t, err)
	require.Len(t, result.Selections, 5)

	for _, sel := range result.Selections {
		assert.True(t, sel.IsEstimated, "slot %s", sel.SlotName)
		assert.Nil(t, sel.ProductID)
		assert.NotEmpty(t, sel.Reasoning)
	}
	assert.Equal(t, 5, result.SynthesizedCount)

	// total still converges on the budget
	assert.GreaterOrEqual(t, result.MaterialCost, 6800*0.98)
	assert.LessOrEqual(t, result.MaterialCost, 6800*1.05)
	assert.NotEmpty(t, result.Reasoning)
}

func TestAssembleCatalogFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection refused")}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	result, err := engine.Assemble(context.Background(), kitchenTemplate(), Preferences{}, 8000)

	require.NoError(t, err, "catalog failures must degrade to synthesis, not fail the run")
	for _, sel := range result.Selections {
		assert.True(t, sel.IsEstimated)
	}
}

func TestAssembleMalformedSlots(t *testing.T) {
	engine := NewEngine(testEngineConfig(), &fakeCatalog{}, nil, nil)
	template := &model.LayoutTemplate{Name: "Broken", Slots: model.RawJSON(`[]`)}

	_, err := engine.Assemble(context.Background(), template, Preferences{}, 8000)

	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestAssembleOverpricedCandidateIsSynthesized(t *testing.T) {
	// The only candidate costs far beyond the accept tolerance of its
	// slot budget, so the synthesizer must take over.
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{
		"cabinet": {{ID: 9, Name: "Gold-Plated Cabinet", Price: 3200, IsAvailable: true}},
	}}
	cfg := testEngineConfig()
	cfg.PriceTolerance = 1.5 // let the candidate through the query filter
	cfg.AcceptTolerance = 1.1
	engine := NewEngine(cfg, catalog, nil, nil)

	template := &model.LayoutTemplate{
		Name:  "Tiny Kitchen",
		Slots: model.RawJSON(`[{"name": "kitchen_cabinet", "category": "storage", "quantity": 1, "budget_percentage": 100}]`),
	}

	result, err := engine.Assemble(context.Background(), template, Preferences{}, 3000)

	require.NoError(t, err)
	require.Len(t, result.Selections, 1)
	assert.True(t, result.Selections[0].IsEstimated)
}

func TestAssembleSubCentPriceConsistency(t *testing.T) {
	// Catalog prices are not constrained to whole cents, so the stored
	// unit price must be rounded before the total is derived from it.
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{
		"stool": {{ID: 4, Name: "Brass Bar Stool", Price: 111.115, Style: "modern", RoomType: "kitchen", IsAvailable: true, Rating: 4.0}},
	}}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	template := &model.LayoutTemplate{
		Name:  "Breakfast Nook",
		Slots: model.RawJSON(`[{"name": "bar_stools", "category": "seating", "quantity": 3, "budget_percentage": 100}]`),
	}

	result, err := engine.Assemble(context.Background(), template,
		Preferences{Style: "modern", RoomType: "kitchen"}, 400)

	require.NoError(t, err)
	require.Len(t, result.Selections, 1)
	sel := result.Selections[0]
	require.NotNil(t, sel.ProductID)

	// spend sits inside the reconciliation band, so the first-pass
	// prices survive untouched
	assert.InDelta(t, 111.12, sel.UnitPrice, 0.001)
	assert.InDelta(t, 333.36, sel.TotalPrice, 0.001)
	assert.Equal(t, round2(sel.UnitPrice*float64(sel.Quantity)), sel.TotalPrice)
}

func TestOrderedBreakdown(t *testing.T) {
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{
		"cabinet": {{ID: 1, Name: "Shaker Cabinet Set", Price: 2400, Style: "modern", RoomType: "kitchen", IsAvailable: true, Rating: 4.5}},
	}}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	result, err := engine.Assemble(context.Background(), kitchenTemplate(),
		Preferences{Style: "modern", RoomType: "kitchen"}, 8000)
	require.NoError(t, err)

	ordered := result.OrderedBreakdown()
	require.Len(t, ordered, len(result.CostBreakdown))

	// first-seen category order, labor last
	assert.Equal(t, "Storage", ordered[0].Category)
	assert.Equal(t, LaborCategory, ordered[len(ordered)-1].Category)

	for _, group := range ordered {
		source := result.CostBreakdown[group.Category]
		require.NotNil(t, source)
		assert.Equal(t, source.Items, group.Items)
		assert.InDelta(t, source.Subtotal, group.Subtotal, 0.001)
	}
}

func TestAssembleUsesTextGenerator(t *testing.T) {
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{}}

	t.Run("generated text is used verbatim", func(t *testing.T) {
		engine := NewEngine(testEngineConfig(), catalog, &fakeTexter{text: "A bespoke narrative."}, nil)

		result, err := engine.Assemble(context.Background(), kitchenTemplate(), Preferences{}, 8000)

		require.NoError(t, err)
		assert.False(t, result.ReasoningFallback)
		assert.Equal(t, "A bespoke narrative.", result.Reasoning)
	})

	t.Run("generator failure falls back", func(t *testing.T) {
		engine := NewEngine(testEngineConfig(), catalog, &fakeTexter{err: errors.New("timeout")}, nil)

		result, err := engine.Assemble(context.Background(), kitchenTemplate(), Preferences{}, 8000)

		require.NoError(t, err)
		assert.True(t, result.ReasoningFallback)
		assert.Contains(t, result.Reasoning, "Modern Kitchen")
	})
}

func TestAssembleQueryShape(t *testing.T) {
	catalog := &fakeCatalog{byKeyword: map[string][]model.Product{}}
	engine := NewEngine(testEngineConfig(), catalog, nil, nil)

	_, err := engine.Assemble(context.Background(), kitchenTemplate(),
		Preferences{Style: "modern", RoomType: "kitchen"}, 8000)
	require.NoError(t, err)

	require.Len(t, catalog.queries, 5)
	// first query is for the 40% cabinet slot: 2720 budget, qty 1,
	// widened by the 1.2 price tolerance
	q := catalog.queries[0]
	assert.InDelta(t, 2720*1.2, q.MaxUnitPrice, 0.01)
	assert.Equal(t, "modern", q.Style)
	assert.Equal(t, "kitchen", q.RoomType)
	assert.Contains(t, q.CategoryKeywords, "cabinet")
}
