package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSlotBudgets(t *testing.T) {
	t.Run("standard percentage split", func(t *testing.T) {
		slots := []Slot{
			{Name: "kitchen_cabinet", BudgetPercent: 40},
			{Name: "kitchen_island", BudgetPercent: 25},
			{Name: "bar_stools", BudgetPercent: 15},
			{Name: "pendant_lights", BudgetPercent: 12},
			{Name: "kitchen_appliances", BudgetPercent: 8},
		}

		budgets := AllocateSlotBudgets(slots, 6800)

		assert.InDelta(t, 2720, budgets["kitchen_cabinet"], 0.01)
		assert.InDelta(t, 1700, budgets["kitchen_island"], 0.01)
		assert.InDelta(t, 1020, budgets["bar_stools"], 0.01)
		assert.InDelta(t, 816, budgets["pendant_lights"], 0.01)
		assert.InDelta(t, 544, budgets["kitchen_appliances"], 0.01)
	})

	t.Run("weights not summing to 100 are normalized", func(t *testing.T) {
		slots := []Slot{
			{Name: "a", BudgetPercent: 30},
			{Name: "b", BudgetPercent: 30},
		}

		budgets := AllocateSlotBudgets(slots, 1000)

		assert.InDelta(t, 500, budgets["a"], 0.01)
		assert.InDelta(t, 500, budgets["b"], 0.01)
	})

	t.Run("weights over 100 are normalized down", func(t *testing.T) {
		slots := []Slot{
			{Name: "a", BudgetPercent: 80},
			{Name: "b", BudgetPercent: 120},
		}

		budgets := AllocateSlotBudgets(slots, 1000)

		assert.InDelta(t, 400, budgets["a"], 0.01)
		assert.InDelta(t, 600, budgets["b"], 0.01)
	})

	t.Run("allocations always sum to the material budget", func(t *testing.T) {
		cases := [][]Slot{
			{{Name: "a", BudgetPercent: 40}, {Name: "b", BudgetPercent: 60}},
			{{Name: "a", BudgetPercent: 7}, {Name: "b", BudgetPercent: 13}, {Name: "c", BudgetPercent: 1}},
			{{Name: "a", BudgetPercent: 33.3}, {Name: "b", BudgetPercent: 33.3}, {Name: "c", BudgetPercent: 33.4}},
		}

		for _, slots := range cases {
			budgets := AllocateSlotBudgets(slots, 5000)
			var sum float64
			for _, b := range budgets {
				sum += b
			}
			assert.InDelta(t, 5000, sum, 0.01)
		}
	})

	t.Run("zero weight sum allocates zero everywhere", func(t *testing.T) {
		slots := []Slot{
			{Name: "a", BudgetPercent: 0},
			{Name: "b", BudgetPercent: 0},
		}

		budgets := AllocateSlotBudgets(slots, 1000)

		require.Len(t, budgets, 2)
		assert.Zero(t, budgets["a"])
		assert.Zero(t, budgets["b"])
	})

	t.Run("every slot receives an allocation", func(t *testing.T) {
		slots := []Slot{
			{Name: "a", BudgetPercent: 50},
			{Name: "b", BudgetPercent: 0},
			{Name: "c", BudgetPercent: 50},
		}

		budgets := AllocateSlotBudgets(slots, 2000)

		require.Len(t, budgets, 3)
		assert.Zero(t, budgets["b"])
	})
}
