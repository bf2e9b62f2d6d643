package design

import (
	"fmt"
	"strings"

	"design-service/internal/model"
)

// minBaseFraction floors a synthesized unit price at this fraction of the
// profile's base price so placeholder items never look unrealistically
// cheap.
const minBaseFraction = 0.7

// slotProfile describes the placeholder item synthesized for a known slot
// name.
type slotProfile struct {
	DisplayName string
	BasePrice   float64
	Scale       float64
}

// slotProfiles is the static lookup of slot name to placeholder pricing.
// Unknown slot names fall back to a generic premium label priced directly
// at the slot's target budget.
var slotProfiles = map[string]slotProfile{
	"main_sofa":           {"Modern 3-Seat Sofa", 1200, 1.2},
	"sectional_sofa":      {"Sectional Sofa", 1600, 1.2},
	"coffee_table":        {"Glass Coffee Table", 400, 1.1},
	"wooden_coffee_table": {"Oak Coffee Table", 450, 1.1},
	"accent_chair":        {"Accent Armchair", 550, 1.1},
	"floor_lamp":          {"Modern Floor Lamp", 200, 1.0},
	"table_lamp":          {"Ceramic Table Lamp", 120, 1.0},
	"pendant_light":       {"Pendant Light", 250, 1.0},
	"pendant_lights":      {"Pendant Light Set", 320, 1.0},
	"chandelier":          {"Statement Chandelier", 480, 1.1},
	"tv_stand":            {"Media Console", 420, 1.0},
	"bookshelf":           {"Open Bookshelf", 380, 1.0},
	"platform_bed":        {"Platform Bed Frame", 900, 1.2},
	"simple_bed":          {"Low-Profile Bed Frame", 650, 1.1},
	"nightstand":          {"Bedside Table", 260, 1.0},
	"floating_nightstand": {"Floating Nightstand", 180, 1.0},
	"dresser":             {"Six-Drawer Dresser", 700, 1.1},
	"minimal_wardrobe":    {"Minimal Wardrobe", 800, 1.1},
	"bedside_lamp":        {"Bedside Lamp", 110, 1.0},
	"wall_mounted_light":  {"Wall-Mounted Light", 140, 1.0},
	"dining_table":        {"Dining Table", 1100, 1.2},
	"dining_chairs":       {"Dining Chair", 180, 1.0},
	"buffet":              {"Buffet Sideboard", 750, 1.1},
	"executive_desk":      {"Executive Desk", 800, 1.2},
	"office_chair":        {"Ergonomic Office Chair", 450, 1.1},
	"desk_lamp":           {"Architect Desk Lamp", 130, 1.0},
	"filing_cabinet":      {"Filing Cabinet", 300, 1.0},
	"kitchen_cabinet":     {"Custom Kitchen Cabinetry", 2200, 1.2},
	"kitchen_island":      {"Kitchen Island", 1400, 1.2},
	"bar_stools":          {"Counter Bar Stool", 220, 1.0},
	"kitchen_appliances":  {"Built-In Appliance Package", 900, 1.1},
	"vanity":              {"Bathroom Vanity", 950, 1.2},
	"shower_fixture":      {"Rainfall Shower Fixture", 420, 1.1},
	"bathroom_mirror":     {"Framed Bathroom Mirror", 180, 1.0},
	"towel_storage":       {"Towel Storage Unit", 240, 1.0},
}

// Synthesize builds a priced placeholder selection for a slot no catalog
// product could fill. The unit price targets targetUtilization of the slot
// budget, clamped so the placeholder neither busts the slot nor undercuts
// a realistic floor for its profile.
func (e *Engine) Synthesize(slot Slot, slotBudget float64) *model.ProductSelection {
	quantity := slot.Quantity
	if quantity < 1 {
		quantity = 1
	}

	target := slotBudget * e.cfg.TargetUtilization / float64(quantity)
	if target < 0 {
		target = 0
	}

	profile, known := slotProfiles[slot.Name]
	if !known {
		profile = slotProfile{
			DisplayName: "Premium " + TitleWords(slot.Name),
			BasePrice:   target,
			Scale:       1.0,
		}
	}

	unitPrice := profile.BasePrice * profile.Scale
	if unitPrice > target {
		unitPrice = target
	} else if floor := profile.BasePrice * minBaseFraction; unitPrice < floor {
		// Floor at a fraction of base price, but never above target.
		if floor < target {
			unitPrice = floor
		} else {
			unitPrice = target
		}
	}

	unitPrice = round2(unitPrice)

	return &model.ProductSelection{
		SlotName:    slot.Name,
		Name:        profile.DisplayName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  round2(unitPrice * float64(quantity)),
		IsEstimated: true,
		Reasoning: fmt.Sprintf(
			"Specified a %s to serve as the %s. Crafted from premium materials with a finish chosen for the space, it completes the slot's purpose within the allocated budget.",
			profile.DisplayName, TitleWords(slot.Name)),
	}
}

// TitleWords turns an identifier like "kitchen_island" into a
// human-readable label ("Kitchen Island"). Used wherever slot names,
// styles or statuses appear in user-facing text.
func TitleWords(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
