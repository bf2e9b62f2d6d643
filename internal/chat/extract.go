package chat

import (
	"regexp"
	"strconv"
	"strings"

	"design-service/internal/model"
)

// Bounds for a believable project budget; amounts outside are ignored.
const (
	minBudgetAmount = 1000
	maxBudgetAmount = 500000
)

var knownStyles = []string{"modern", "traditional", "contemporary", "rustic", "minimalist", "industrial"}

var (
	bathroomWords = []string{"bathroom", "bath", "shower", "toilet", "vanity"}
	kitchenWords  = []string{"kitchen", "cook", "cabinet", "counter", "appliance"}

	smallWords  = []string{"small", "tiny", "compact"}
	largeWords  = []string{"large", "big", "spacious"}
	mediumWords = []string{"medium", "average"}
)

var (
	// 50k, 50K, "50 thousand"
	thousandsPattern = regexp.MustCompile(`(?i)\$?(\d+(?:\.\d+)?)\s*(?:k\b|thousand)`)
	// $50,000 / 50,000 / 50000 / 50000.00
	amountPattern = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})+(?:\.\d{2})?|\d+(?:\.\d{2})?)`)
)

// ExtractPreferences pulls structured preferences out of a free-text
// message with keyword and pattern matching only. Absent keys are simply
// not present in the returned map.
func ExtractPreferences(message string) model.JSONMap {
	extracted := model.JSONMap{}
	lower := strings.ToLower(message)

	if containsAny(lower, bathroomWords) {
		extracted["room_type"] = model.RoomBathroom
	} else if containsAny(lower, kitchenWords) {
		extracted["room_type"] = model.RoomKitchen
	}

	if amount, ok := ExtractBudgetAmount(message); ok {
		extracted["budget_amount"] = amount
	}

	for _, style := range knownStyles {
		if strings.Contains(lower, style) {
			extracted["style"] = style
			break
		}
	}

	switch {
	case containsAny(lower, smallWords):
		extracted["room_size"] = "small"
	case containsAny(lower, largeWords):
		extracted["room_size"] = "large"
	case containsAny(lower, mediumWords):
		extracted["room_size"] = "medium"
	}

	return extracted
}

// ExtractBudgetAmount finds a dollar amount in the message, accepting
// "$12,500", "12500", "50k" and "50 thousand" forms. Amounts outside the
// plausible range are rejected.
func ExtractBudgetAmount(message string) (float64, bool) {
	if m := thousandsPattern.FindStringSubmatch(message); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			return checkBudget(amount * 1000)
		}
	}

	for _, m := range amountPattern.FindAllStringSubmatch(message, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if amount, ok := checkBudget(amount); ok {
			return amount, true
		}
	}
	return 0, false
}

func checkBudget(amount float64) (float64, bool) {
	if amount < minBudgetAmount || amount > maxBudgetAmount {
		return 0, false
	}
	return amount, true
}

// ClassifyIntent tags a message with a coarse conversational intent,
// recorded alongside saved interactions.
func ClassifyIntent(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, []string{"price", "cost", "budget"}):
		return "pricing_inquiry"
	case containsAny(lower, []string{"recommend", "suggest", "show"}):
		return "product_recommendation"
	case containsAny(lower, []string{"style", "design", "look"}):
		return "style_discussion"
	default:
		return "general_conversation"
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
