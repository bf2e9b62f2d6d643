package design

import (
	"strings"

	"design-service/internal/model"
)

// Scoring rubric weights. The rubric is a fixed table of independent point
// contributions so individual weights stay tunable without touching
// selection logic.
const (
	scoreStyleMatch    = 5
	scoreRoomTypeMatch = 3
	scoreAvailable     = 2
	scoreMaterialMatch = 2
	maxRatingScore     = 3

	// Price-ratio bands reward proximity to the slot's unit budget:
	// inside the target band beats under-spending, which beats
	// over-spending.
	scorePriceBandTarget = 5 // 0.7 <= ratio <= 1.2
	scorePriceBandUnder  = 3 // 0.5 <= ratio < 0.7
	scorePriceBandOver   = 2 // ratio > 1.2
)

// Price-ratio band thresholds.
const (
	priceBandTargetLow  = 0.7
	priceBandTargetHigh = 1.2
	priceBandUnderLow   = 0.5
)

// SelectProduct scores every candidate against the slot and the user's
// preferences and returns the best match. A single candidate is returned
// without scoring; an empty candidate set returns nil and the caller must
// synthesize. Ties resolve to the first-seen candidate, so selection is
// deterministic for a fixed catalog order.
func SelectProduct(candidates []model.Product, slot Slot, prefs Preferences, slotBudget float64) *model.Product {
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 {
		return &candidates[0]
	}

	quantity := slot.Quantity
	if quantity < 1 {
		quantity = 1
	}
	maxUnitPrice := slotBudget / float64(quantity)

	best := 0
	bestScore := -1
	for i := range candidates {
		score := scoreProduct(&candidates[i], prefs, maxUnitPrice)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return &candidates[best]
}

func scoreProduct(p *model.Product, prefs Preferences, maxUnitPrice float64) int {
	score := 0

	if prefs.Style != "" && strings.EqualFold(prefs.Style, p.Style) {
		score += scoreStyleMatch
	}
	if prefs.RoomType != "" && strings.EqualFold(prefs.RoomType, p.RoomType) {
		score += scoreRoomTypeMatch
	}

	if maxUnitPrice > 0 {
		ratio := p.Price / maxUnitPrice
		switch {
		case ratio >= priceBandTargetLow && ratio <= priceBandTargetHigh:
			score += scorePriceBandTarget
		case ratio >= priceBandUnderLow && ratio < priceBandTargetLow:
			score += scorePriceBandUnder
		case ratio > priceBandTargetHigh:
			score += scorePriceBandOver
		}
	}

	// Candidates are normally pre-filtered to available products, but the
	// rubric still rewards availability so the scorer behaves uniformly
	// when reused without the filter.
	if p.IsAvailable {
		score += scoreAvailable
	}

	if p.Rating > 0 {
		rating := int(p.Rating)
		if rating > maxRatingScore {
			rating = maxRatingScore
		}
		score += rating
	}

	if prefs.Material != "" && p.Material != "" &&
		strings.Contains(strings.ToLower(p.Material), strings.ToLower(prefs.Material)) {
		score += scoreMaterialMatch
	}

	return score
}
