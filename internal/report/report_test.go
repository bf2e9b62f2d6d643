package report

import (
	"bytes"
	"testing"

	"design-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDesign() *model.DesignRecommendation {
	productID := uint(3)
	return &model.DesignRecommendation{
		ID: 12,
		LayoutTemplate: model.LayoutTemplate{
			Name:     "Modern Kitchen",
			RoomType: "kitchen",
			Style:    "modern",
		},
		RoomDimensions: model.JSONMap{"width": 14.0, "height": 12.0, "area_sqft": 168.0},
		MaterialCost:   6800,
		LaborCost:      1200,
		TotalCost:      8000,
		Reasoning:      "A balanced kitchen design built around efficient workflow.",
		Status:         "generated",
		Selections: []model.ProductSelection{
			{
				ProductID: &productID,
				Product: &model.Product{
					Name:     "Shaker Cabinet Set",
					Category: model.ProductCategory{Name: "Storage"},
				},
				SlotName: "kitchen_cabinet", Name: "Shaker Cabinet Set",
				Quantity: 1, UnitPrice: 2720, TotalPrice: 2720,
			},
			{
				SlotName: "pendant_lights", Name: "Pendant Light Set",
				Quantity: 2, UnitPrice: 320, TotalPrice: 640,
				IsEstimated: true,
			},
		},
	}
}

func TestPDF(t *testing.T) {
	payload, err := PDF(sampleDesign())

	require.NoError(t, err)
	require.NotEmpty(t, payload)
	// a PDF always opens with this magic header
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestXLSX(t *testing.T) {
	payload, err := XLSX(sampleDesign())

	require.NoError(t, err)
	require.NotEmpty(t, payload)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(costSheet)
	require.NoError(t, err)
	// header + 2 selections + labor + total
	require.Len(t, rows, 5)
	assert.Equal(t, "Slot", rows[0][0])
	assert.Equal(t, "kitchen_cabinet", rows[1][0])
	assert.Equal(t, "Yes", rows[2][6])
	assert.Equal(t, "labor", rows[3][0])
	assert.Equal(t, "Total", rows[4][0])
}

func TestCategoryTotals(t *testing.T) {
	totals, order := categoryTotals(sampleDesign())

	assert.InDelta(t, 2720, totals["Storage"], 0.01)
	assert.InDelta(t, 640, totals["Estimated Items"], 0.01)
	assert.InDelta(t, 1200, totals["Labor & Installation"], 0.01)
	assert.Equal(t, []string{"Storage", "Estimated Items", "Labor & Installation"}, order)
}
