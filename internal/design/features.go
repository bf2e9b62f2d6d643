package design

import (
	"strings"

	"design-service/internal/model"
)

const maxDesignFeatures = 6

var styleFeatures = []struct {
	style    string
	features []string
}{
	{"scandinavian", []string{"Natural materials", "Light colors", "Cozy atmosphere", "Sustainable choices"}},
	{"industrial", []string{"Raw materials", "Metal accents", "Urban aesthetic", "Functional elements"}},
	{"minimalist", []string{"Clutter-free design", "Essential furniture only", "Calm environment", "Quality over quantity"}},
	{"contemporary", []string{"Current trends", "Mixed textures", "Statement pieces", "Balanced proportions"}},
	{"traditional", []string{"Classic silhouettes", "Warm wood tones", "Layered textiles", "Timeless appeal"}},
	{"rustic", []string{"Reclaimed wood", "Earthy palette", "Handcrafted character", "Natural textures"}},
	{"modern", []string{"Clean lines", "Minimalist approach", "Neutral color palette", "Functional design"}},
}

var roomFeatures = map[string][]string{
	"living_room": {"Comfortable seating arrangement", "Entertainment-focused layout", "Social interaction zones"},
	"bedroom":     {"Relaxing atmosphere", "Optimal storage solutions", "Private retreat feel"},
	"dining_room": {"Perfect for entertaining", "Elegant dining experience", "Proper lighting for meals"},
	"office":      {"Productivity-focused design", "Ergonomic furniture", "Professional appearance"},
	"kitchen":     {"Efficient work triangle", "Generous prep surfaces", "Smart appliance placement"},
	"bathroom":    {"Spa-like comfort", "Moisture-resistant finishes", "Bright task lighting"},
}

// DesignFeatures lists the key selling points of a template's style and
// room type, capped at a handful for the result record.
func DesignFeatures(template *model.LayoutTemplate) []string {
	var features []string

	style := strings.ToLower(template.Style)
	for _, entry := range styleFeatures {
		if strings.Contains(style, entry.style) {
			features = append(features, entry.features...)
			break
		}
	}

	if list, ok := roomFeatures[template.RoomType]; ok {
		features = append(features, list...)
	}

	if len(features) > maxDesignFeatures {
		features = features[:maxDesignFeatures]
	}
	return features
}
