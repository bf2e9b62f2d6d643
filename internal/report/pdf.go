package report

import (
	"bytes"
	"fmt"

	"design-service/internal/design"
	"design-service/internal/model"

	"github.com/jung-kurt/gofpdf"
)

// PDF builds the printable design report: overview, rationale, itemized
// products, investment summary and closing notes.
func PDF(rec *model.DesignRecommendation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	template := rec.LayoutTemplate

	// Title
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 12, "Interior Design Recommendation", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(52, 73, 94)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s | %s Style", template.Name, design.TitleWords(template.Style)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Overview table
	sectionHeading(pdf, "Design Overview")
	overview := [][2]string{
		{"Template:", template.Name},
		{"Room Type:", design.TitleWords(template.RoomType)},
		{"Style:", design.TitleWords(template.Style)},
		{"Dimensions:", dimensionLine(rec.RoomDimensions)},
		{"Area:", areaLine(rec.RoomDimensions)},
		{"Total Investment:", fmt.Sprintf("$%.2f", rec.TotalCost)},
		{"Status:", design.TitleWords(rec.Status)},
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range overview {
		pdf.SetFillColor(236, 240, 241)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Reasoning
	sectionHeading(pdf, "Design Philosophy & Rationale")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5, rec.Reasoning, "", "L", false)
	pdf.Ln(6)

	// Products
	sectionHeading(pdf, "Recommended Furniture & Decor")
	if len(rec.Selections) > 0 {
		pdf.SetFillColor(52, 152, 219)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 9)
		widths := []float64{72, 14, 26, 26, 42}
		headers := []string{"Item", "Qty", "Unit Price", "Total", "Purpose"}
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		fill := false
		for _, sel := range rec.Selections {
			pdf.SetFillColor(248, 249, 250)
			name := sel.Name
			if name == "" {
				name = "Estimated " + design.TitleWords(sel.SlotName)
			}
			pdf.CellFormat(widths[0], 7, name, "1", 0, "L", fill, 0, "")
			pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", sel.Quantity), "1", 0, "C", fill, 0, "")
			pdf.CellFormat(widths[2], 7, fmt.Sprintf("$%.2f", sel.UnitPrice), "1", 0, "R", fill, 0, "")
			pdf.CellFormat(widths[3], 7, fmt.Sprintf("$%.2f", sel.TotalPrice), "1", 0, "R", fill, 0, "")
			pdf.CellFormat(widths[4], 7, design.TitleWords(sel.SlotName), "1", 1, "C", fill, 0, "")
			fill = !fill
		}
	} else {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 5, "No specific products selected - using estimated pricing.", "", "L", false)
	}
	pdf.Ln(6)

	// Investment summary
	sectionHeading(pdf, "Investment Summary")
	categories, order := categoryTotals(rec)
	pdf.SetFillColor(232, 246, 243)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Percentage", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, category := range order {
		amount := categories[category]
		pct := 0.0
		if rec.TotalCost > 0 {
			pct = amount / rec.TotalCost * 100
		}
		pdf.CellFormat(100, 8, category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.1f%%", pct), "1", 1, "R", false, 0, "")
	}
	pdf.SetFillColor(46, 204, 113)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(100, 8, "Total Investment", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("$%.2f", rec.TotalCost), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "100.0%", "1", 1, "R", true, 0, "")
	pdf.Ln(6)

	// Notes
	sectionHeading(pdf, "Important Notes")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	notes := []string{
		"Budget Optimization: This design maximizes value within your budget range while maintaining style and quality.",
		"Flexibility: Product recommendations can be adjusted based on availability and personal preferences.",
		"Next Steps: Contact our design team to discuss implementation, delivery, and installation options.",
		"Warranty: All recommended products come with manufacturer warranties and our quality guarantee.",
	}
	for _, note := range notes {
		pdf.MultiCell(0, 5, note, "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(52, 73, 94)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// categoryTotals sums selection spend per catalog category; synthesized
// items group under Estimated Items. Returns insertion order for stable
// rendering.
func categoryTotals(rec *model.DesignRecommendation) (map[string]float64, []string) {
	totals := make(map[string]float64)
	var order []string

	add := func(category string, amount float64) {
		if _, ok := totals[category]; !ok {
			order = append(order, category)
		}
		totals[category] += amount
	}

	for _, sel := range rec.Selections {
		category := "Estimated Items"
		if sel.Product != nil && sel.Product.Category.Name != "" {
			category = sel.Product.Category.Name
		}
		add(category, sel.TotalPrice)
	}
	if rec.LaborCost > 0 {
		add("Labor & Installation", rec.LaborCost)
	}
	return totals, order
}

func dimensionLine(dims model.JSONMap) string {
	width := dimValue(dims, "width")
	height := dimValue(dims, "height")
	if width == "N/A" && height == "N/A" {
		return "N/A"
	}
	return fmt.Sprintf("%s' x %s'", width, height)
}

func areaLine(dims model.JSONMap) string {
	return dimValue(dims, "area_sqft") + " sq ft"
}

func dimValue(dims model.JSONMap, key string) string {
	if dims == nil {
		return "N/A"
	}
	if v, ok := dims[key].(float64); ok {
		if v == float64(int(v)) {
			return fmt.Sprintf("%d", int(v))
		}
		return fmt.Sprintf("%.1f", v)
	}
	return "N/A"
}
