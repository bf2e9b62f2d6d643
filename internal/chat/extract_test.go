package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBudgetAmount(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
		found   bool
	}{
		{"plain number", "I have 12500 to spend", 12500, true},
		{"dollar sign", "my budget is $8000", 8000, true},
		{"comma separated", "around $12,500 total", 12500, true},
		{"with cents", "exactly 9999.99", 9999.99, true},
		{"k suffix", "I can spend 50k", 50000, true},
		{"capital K", "maybe 20K", 20000, true},
		{"thousand word", "about 50 thousand", 50000, true},
		{"decimal k", "roughly 7.5k", 7500, true},
		{"too small", "I have 500 dollars", 0, false},
		{"too large", "budget is 900000", 0, false},
		{"k too large", "I have 600k", 0, false},
		{"no amount", "something cozy and bright", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractBudgetAmount(tt.message)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestExtractPreferences(t *testing.T) {
	t.Run("kitchen with style and size", func(t *testing.T) {
		prefs := ExtractPreferences("I want a modern kitchen, it's fairly small, budget around 20k")

		assert.Equal(t, "kitchen", prefs["room_type"])
		assert.Equal(t, "modern", prefs["style"])
		assert.Equal(t, "small", prefs["room_size"])
		require.Contains(t, prefs, "budget_amount")
		assert.InDelta(t, 20000, prefs["budget_amount"].(float64), 0.001)
	})

	t.Run("bathroom keywords", func(t *testing.T) {
		prefs := ExtractPreferences("redoing the shower and vanity area")

		assert.Equal(t, "bathroom", prefs["room_type"])
	})

	t.Run("kitchen secondary keywords", func(t *testing.T) {
		prefs := ExtractPreferences("new cabinets and counter space would be great")

		assert.Equal(t, "kitchen", prefs["room_type"])
	})

	t.Run("first listed style wins", func(t *testing.T) {
		prefs := ExtractPreferences("torn between modern and rustic")

		assert.Equal(t, "modern", prefs["style"])
	})

	t.Run("large room synonyms", func(t *testing.T) {
		prefs := ExtractPreferences("it's a big spacious room")

		assert.Equal(t, "large", prefs["room_size"])
	})

	t.Run("no matches yields empty map", func(t *testing.T) {
		prefs := ExtractPreferences("hello there")

		assert.Empty(t, prefs)
	})
}

func TestClassifyIntent(t *testing.T) {
	assert.Equal(t, "pricing_inquiry", ClassifyIntent("How much does this cost?"))
	assert.Equal(t, "product_recommendation", ClassifyIntent("Can you recommend a sofa?"))
	assert.Equal(t, "style_discussion", ClassifyIntent("What design would fit?"))
	assert.Equal(t, "general_conversation", ClassifyIntent("Hello!"))
}
