package report

import (
	"bytes"
	"fmt"

	"design-service/internal/model"

	"github.com/xuri/excelize/v2"
)

const costSheet = "Cost Breakdown"

// XLSX builds the spreadsheet cost breakdown: one row per selection plus
// labor and total rows.
func XLSX(design *model.DesignRecommendation) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(costSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"3498DB"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	headers := []string{"Slot", "Item", "Category", "Quantity", "Unit Price", "Total Price", "Estimated"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(costSheet, cell, header); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(costSheet, "A1", "G1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, sel := range design.Selections {
		category := "Estimated Items"
		if sel.Product != nil && sel.Product.Category.Name != "" {
			category = sel.Product.Category.Name
		}
		estimated := "No"
		if sel.IsEstimated {
			estimated = "Yes"
		}

		values := []any{sel.SlotName, sel.Name, category, sel.Quantity, sel.UnitPrice, sel.TotalPrice, estimated}
		for col, value := range values {
			if err := setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
		row++
	}

	if design.LaborCost > 0 {
		values := []any{"labor", "Design & Installation Labor", "Labor & Installation", 1, design.LaborCost, design.LaborCost, "No"}
		for col, value := range values {
			if err := setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
		row++
	}

	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}
	if err := setCell(f, 1, row, "Total"); err != nil {
		return nil, err
	}
	if err := setCell(f, 6, row, design.TotalCost); err != nil {
		return nil, err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(7, row)
	if err := f.SetCellStyle(costSheet, start, end, totalStyle); err != nil {
		return nil, err
	}

	widths := []float64{20, 36, 24, 10, 12, 12, 10}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(costSheet, col, col, width); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(costSheet, cell, value)
}
