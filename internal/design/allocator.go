package design

import "math"

// percentEpsilon is the slack within which slot weights are treated as a
// proper percentage split.
const percentEpsilon = 1e-6

// AllocateSlotBudgets splits the material budget across the template's
// slots by weighted percentage. Weights that do not sum to 100 are
// normalized against their actual sum, so the allocations always add up to
// the material budget. A zero weight sum is a degenerate design: every
// slot gets 0 and the synthesizer fills it at minimum price.
func AllocateSlotBudgets(slots []Slot, materialBudget float64) map[string]float64 {
	budgets := make(map[string]float64, len(slots))

	var sum float64
	for _, slot := range slots {
		sum += slot.BudgetPercent
	}

	if sum == 0 {
		for _, slot := range slots {
			budgets[slot.Name] = 0
		}
		return budgets
	}

	divisor := sum
	if math.Abs(sum-100) < percentEpsilon {
		divisor = 100
	}

	for _, slot := range slots {
		budgets[slot.Name] = materialBudget * slot.BudgetPercent / divisor
	}
	return budgets
}
