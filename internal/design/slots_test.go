package design

import (
	"testing"

	"design-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlots(t *testing.T) {
	t.Run("list encoding", func(t *testing.T) {
		raw := model.RawJSON(`[
			{"name": "main_sofa", "category": "seating", "required": true, "quantity": 1, "budget_percentage": 40},
			{"name": "coffee_table", "category": "table", "quantity": 1, "budget_percentage": 20}
		]`)

		slots, err := NormalizeSlots(raw)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "main_sofa", slots[0].Name)
		assert.True(t, slots[0].Required)
		assert.InDelta(t, 40, slots[0].BudgetPercent, 0.001)
	})

	t.Run("map encoding uses keys as names", func(t *testing.T) {
		raw := model.RawJSON(`{
			"main_sofa": {"category": "seating", "quantity": 1, "budget_percentage": 60},
			"coffee_table": {"category": "table", "quantity": 1, "budget_percentage": 40}
		}`)

		slots, err := NormalizeSlots(raw)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		// map encodings come out sorted by name
		assert.Equal(t, "coffee_table", slots[0].Name)
		assert.Equal(t, "main_sofa", slots[1].Name)
	})

	t.Run("map encoding keeps explicit names", func(t *testing.T) {
		raw := model.RawJSON(`{
			"slot_1": {"name": "accent_chair", "budget_percentage": 100}
		}`)

		slots, err := NormalizeSlots(raw)

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "accent_chair", slots[0].Name)
	})

	t.Run("quantity below one is clamped", func(t *testing.T) {
		raw := model.RawJSON(`[{"name": "main_sofa", "quantity": 0, "budget_percentage": 100}]`)

		slots, err := NormalizeSlots(raw)

		require.NoError(t, err)
		assert.Equal(t, 1, slots[0].Quantity)
	})

	t.Run("empty configurations are rejected", func(t *testing.T) {
		for _, raw := range []model.RawJSON{nil, model.RawJSON(``), model.RawJSON(`[]`), model.RawJSON(`{}`)} {
			_, err := NormalizeSlots(raw)
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		}
	})

	t.Run("unnamed slot is rejected", func(t *testing.T) {
		raw := model.RawJSON(`[{"category": "seating", "budget_percentage": 100}]`)

		_, err := NormalizeSlots(raw)

		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("negative budget percentage is rejected", func(t *testing.T) {
		raw := model.RawJSON(`[{"name": "main_sofa", "budget_percentage": -5}]`)

		_, err := NormalizeSlots(raw)

		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("unreadable encoding is rejected", func(t *testing.T) {
		_, err := NormalizeSlots(model.RawJSON(`"just a string"`))

		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestPreferencesFrom(t *testing.T) {
	prefs := PreferencesFrom(model.JSONMap{
		"style":     "modern",
		"room_type": "kitchen",
		"material":  "oak",
		"budget_amount": 12000.0,
	})

	assert.Equal(t, "modern", prefs.Style)
	assert.Equal(t, "kitchen", prefs.RoomType)
	assert.Equal(t, "oak", prefs.Material)

	empty := PreferencesFrom(nil)
	assert.Empty(t, empty.Style)
}
