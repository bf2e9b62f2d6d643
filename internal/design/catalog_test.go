package design

import (
	"testing"

	"design-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKeywords(t *testing.T) {
	tests := []struct {
		category string
		contains string
	}{
		{"seating", "sofa"},
		{"comfortable seating", "chair"},
		{"table", "desk"},
		{"bed", "mattress"},
		{"lighting", "lamp"},
		{"storage", "cabinet"},
		{"fixtures", "faucet"},
		{"appliances", "refrigerator"},
		{"accessories", "mirror"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Contains(t, CategoryKeywords(tt.category), tt.contains)
		})
	}

	t.Run("unknown category falls back to itself", func(t *testing.T) {
		assert.Equal(t, []string{"artwork"}, CategoryKeywords("Artwork"))
	})

	t.Run("empty category yields nothing", func(t *testing.T) {
		assert.Nil(t, CategoryKeywords(""))
	})

	t.Run("mapping is deterministic", func(t *testing.T) {
		first := CategoryKeywords("storage")
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, CategoryKeywords("storage"))
		}
	})
}

func TestCategoryForSlotName(t *testing.T) {
	tests := []struct {
		slotName string
		want     string
	}{
		{"main_sofa", "Seating"},
		{"bar_stools", "Seating"},
		{"kitchen_island", "Table"},
		{"pendant_lights", "Lighting"},
		{"kitchen_cabinet", "Storage"},
		{"shower_fixture", "Fixtures"},
		{"kitchen_appliances", "Appliances"},
		{"bathroom_mirror", "Accessories"},
		{"mystery_slot", "Miscellaneous"},
	}

	for _, tt := range tests {
		t.Run(tt.slotName, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryForSlotName(tt.slotName))
		})
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Kitchen Island", TitleWords("kitchen_island"))
	assert.Equal(t, "Sofa", TitleWords("sofa"))
	assert.Equal(t, "Wall Mounted Light", TitleWords("wall_mounted_light"))
	assert.Equal(t, "", TitleWords(""))
}

func TestDesignFeatures(t *testing.T) {
	t.Run("style and room features combined", func(t *testing.T) {
		template := &model.LayoutTemplate{Style: "modern", RoomType: "kitchen"}

		features := DesignFeatures(template)

		assert.Contains(t, features, "Clean lines")
		assert.Contains(t, features, "Efficient work triangle")
		assert.LessOrEqual(t, len(features), maxDesignFeatures)
	})

	t.Run("modern matched inside compound style", func(t *testing.T) {
		template := &model.LayoutTemplate{Style: "Mid-Century Modern", RoomType: "bedroom"}

		features := DesignFeatures(template)

		assert.Contains(t, features, "Clean lines")
	})

	t.Run("unknown style and room yields nothing", func(t *testing.T) {
		template := &model.LayoutTemplate{Style: "baroque", RoomType: "garage"}

		assert.Empty(t, DesignFeatures(template))
	})
}
