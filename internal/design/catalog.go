package design

import (
	"context"
	"strings"

	"design-service/internal/model"
)

// Query describes one candidate lookup for a slot. The catalog must only
// return available products whose unit price does not exceed MaxUnitPrice;
// Style and RoomType are soft refinements the implementation may drop when
// they would leave no candidates.
type Query struct {
	CategoryKeywords []string
	MaxUnitPrice     float64
	Style            string
	RoomType         string
}

// CatalogQuery is the read-only product catalog collaborator.
type CatalogQuery interface {
	Find(ctx context.Context, q Query) ([]model.Product, error)
}

// TextGenerator produces narrative reasoning text. Implementations must
// bound their own latency; callers substitute a deterministic paragraph on
// any error.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// categoryKeywordTable maps a slot's category word to the catalog category
// keywords it matches. The mapping is fixed policy shared by candidate
// queries and the cost breakdown; order matters for slot-name derivation.
var categoryKeywordTable = []struct {
	key      string
	keywords []string
}{
	{"seating", []string{"chair", "sofa", "stool", "bench", "seat"}},
	{"table", []string{"table", "desk", "island"}},
	{"bed", []string{"bed", "mattress"}},
	{"lighting", []string{"light", "lamp", "chandelier", "pendant"}},
	{"storage", []string{"cabinet", "shelf", "vanity", "dresser", "wardrobe", "bookshelf"}},
	{"fixtures", []string{"fixture", "faucet", "shower", "tap"}},
	{"appliances", []string{"appliance", "refrigerator", "stove", "dishwasher", "hob", "chimney"}},
	{"accessories", []string{"mirror", "accessory", "towel", "hardware"}},
}

// CategoryKeywords resolves a slot category to its catalog keywords.
// Categories outside the table fall back to their own lowercased name so
// literal category names still match.
func CategoryKeywords(category string) []string {
	lowered := strings.ToLower(strings.TrimSpace(category))
	for _, entry := range categoryKeywordTable {
		if strings.Contains(lowered, entry.key) {
			return entry.keywords
		}
	}
	if lowered == "" {
		return nil
	}
	return []string{lowered}
}

// categoryForSlotName derives a breakdown category from a slot's name when
// the selection has no real product behind it.
func categoryForSlotName(slotName string) string {
	lowered := strings.ToLower(slotName)
	for _, entry := range categoryKeywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return titleCase(entry.key)
			}
		}
	}
	return "Miscellaneous"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
