package design

import (
	"testing"

	"design-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectProduct(t *testing.T) {
	slot := Slot{Name: "main_sofa", Category: "seating", Quantity: 1}
	prefs := Preferences{Style: "modern", RoomType: "living_room"}

	t.Run("empty candidates returns nil", func(t *testing.T) {
		assert.Nil(t, SelectProduct(nil, slot, prefs, 1000))
	})

	t.Run("single candidate is returned without scoring", func(t *testing.T) {
		candidates := []model.Product{
			{Name: "Lone Sofa", Price: 99999, IsAvailable: false},
		}

		got := SelectProduct(candidates, slot, prefs, 1000)

		require.NotNil(t, got)
		assert.Equal(t, "Lone Sofa", got.Name)
	})

	t.Run("in-band price beats heavy overspend", func(t *testing.T) {
		// Same category and style; 85% of the unit budget sits in the
		// target band, 200% lands in the overspend band.
		candidates := []model.Product{
			{Name: "Oversized Sofa", Price: 2000, Style: "modern", RoomType: "living_room", IsAvailable: true},
			{Name: "Fitting Sofa", Price: 850, Style: "modern", RoomType: "living_room", IsAvailable: true},
		}

		got := SelectProduct(candidates, slot, prefs, 1000)

		require.NotNil(t, got)
		assert.Equal(t, "Fitting Sofa", got.Name)
	})

	t.Run("style and room matches outweigh rating", func(t *testing.T) {
		candidates := []model.Product{
			{Name: "Highly Rated Mismatch", Price: 900, Style: "rustic", RoomType: "bedroom", Rating: 5, IsAvailable: true},
			{Name: "Preference Match", Price: 900, Style: "modern", RoomType: "living_room", IsAvailable: true},
		}

		got := SelectProduct(candidates, slot, prefs, 1000)

		require.NotNil(t, got)
		assert.Equal(t, "Preference Match", got.Name)
	})

	t.Run("ties resolve to the first candidate", func(t *testing.T) {
		candidates := []model.Product{
			{Name: "First Twin", Price: 800, Style: "modern", RoomType: "living_room", IsAvailable: true},
			{Name: "Second Twin", Price: 800, Style: "modern", RoomType: "living_room", IsAvailable: true},
		}

		got := SelectProduct(candidates, slot, prefs, 1000)

		require.NotNil(t, got)
		assert.Equal(t, "First Twin", got.Name)
	})

	t.Run("selection is idempotent", func(t *testing.T) {
		candidates := []model.Product{
			{Name: "A", Price: 600, Style: "modern", IsAvailable: true, Rating: 4},
			{Name: "B", Price: 850, Style: "modern", RoomType: "living_room", IsAvailable: true, Rating: 2},
			{Name: "C", Price: 400, IsAvailable: true, Rating: 5},
		}

		first := SelectProduct(candidates, slot, prefs, 1000)
		require.NotNil(t, first)
		for i := 0; i < 10; i++ {
			again := SelectProduct(candidates, slot, prefs, 1000)
			require.NotNil(t, again)
			assert.Equal(t, first.Name, again.Name)
		}
	})

	t.Run("zero quantity is treated as one", func(t *testing.T) {
		zeroQty := Slot{Name: "main_sofa", Quantity: 0}
		candidates := []model.Product{
			{Name: "A", Price: 850, IsAvailable: true},
			{Name: "B", Price: 2500, IsAvailable: true},
		}

		got := SelectProduct(candidates, zeroQty, prefs, 1000)

		require.NotNil(t, got)
		assert.Equal(t, "A", got.Name)
	})
}

func TestScoreProduct(t *testing.T) {
	prefs := Preferences{Style: "modern", RoomType: "kitchen", Material: "oak"}

	tests := []struct {
		name     string
		product  model.Product
		maxPrice float64
		want     int
	}{
		{
			name: "full match",
			product: model.Product{
				Style: "modern", RoomType: "kitchen", Material: "solid oak",
				Price: 100, Rating: 4.8, IsAvailable: true,
			},
			maxPrice: 100,
			// style 5 + room 3 + band 5 + available 2 + rating 3 + material 2
			want: 20,
		},
		{
			name:     "underspend band",
			product:  model.Product{Price: 60, IsAvailable: true},
			maxPrice: 100,
			want:     scorePriceBandUnder + scoreAvailable,
		},
		{
			name:     "overspend band",
			product:  model.Product{Price: 150, IsAvailable: true},
			maxPrice: 100,
			want:     scorePriceBandOver + scoreAvailable,
		},
		{
			name:     "below underspend band scores no price points",
			product:  model.Product{Price: 20, IsAvailable: true},
			maxPrice: 100,
			want:     scoreAvailable,
		},
		{
			name:     "rating capped at three",
			product:  model.Product{Price: 100, Rating: 5},
			maxPrice: 100,
			want:     scorePriceBandTarget + maxRatingScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreProduct(&tt.product, prefs, tt.maxPrice)
			assert.Equal(t, tt.want, got)
		})
	}
}
