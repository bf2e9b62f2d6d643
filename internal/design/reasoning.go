package design

import (
	"context"
	"fmt"
	"strings"

	"design-service/internal/model"

	"go.uber.org/zap"
)

// designReasoning asks the text generator for a narrative explanation of
// the design. Generation is a side channel: any failure falls back to a
// deterministic paragraph and never blocks product selection.
func (e *Engine) designReasoning(ctx context.Context, template *model.LayoutTemplate, prefs Preferences, totalBudget float64) (string, bool) {
	if e.texter == nil {
		return fallbackReasoning(template, totalBudget), true
	}

	prompt := fmt.Sprintf(`As an expert interior designer, create a detailed explanation for this design recommendation.

Selected Template: %s - %s
Room Type: %s
Style: %s
Preferred Style: %s
Budget: $%.0f

Provide a professional, engaging explanation (3-4 paragraphs) covering:
1. Why this layout and style match the user's needs and space
2. How the color palette and materials create the desired atmosphere
3. The functional benefits and flow of this design approach
4. How the budget allocation ensures maximum value and impact

Make it personal, informative, and inspiring while staying professional.`,
		template.Name, template.Description, template.RoomType, template.Style, prefs.Style, totalBudget)

	text, err := e.texter.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		e.log.Warn("text generation failed, using fallback reasoning",
			zap.String("template", template.Name),
			zap.Error(err))
		return fallbackReasoning(template, totalBudget), true
	}
	return text, false
}

// fallbackReasoning is the static paragraph used whenever the narrative
// collaborator is unavailable. It references the template name, style,
// room type and budget so the result still reads as bespoke.
func fallbackReasoning(template *model.LayoutTemplate, totalBudget float64) string {
	roomLabel := strings.ReplaceAll(template.RoomType, "_", " ")
	return fmt.Sprintf(`This %s design perfectly captures the essence of %s style while maximizing functionality for your %s.

The carefully selected color palette and materials create a harmonious environment that reflects your personal taste. Each furniture piece has been strategically placed to ensure optimal flow and usability.

With a total budget of $%.0f, this design offers exceptional value by prioritizing key pieces that make the biggest visual and functional impact. The result is a space that's both beautiful and highly livable.`,
		template.Name, template.Style, roomLabel, totalBudget)
}

// productReasoning explains why a real catalog product was chosen for a
// slot.
func productReasoning(p *model.Product, slot Slot, prefs Preferences) string {
	var reasons []string

	if prefs.Style != "" && strings.EqualFold(prefs.Style, p.Style) {
		reasons = append(reasons, fmt.Sprintf("matches your preferred %s style", p.Style))
	}
	reasons = append(reasons, fmt.Sprintf("is perfectly suited for %s functionality", strings.ReplaceAll(slot.Name, "_", " ")))
	if p.Material != "" {
		reasons = append(reasons, fmt.Sprintf("offers high-quality %s construction", p.Material))
	}
	reasons = append(reasons, "fits within the allocated budget")

	return fmt.Sprintf("This %s was selected because it %s.", p.Name, strings.Join(reasons, ", "))
}
