package design

import (
	"design-service/internal/model"
)

// Reconcile converges the total spend of a first-pass allocation toward
// the material budget. Surplus beyond the surplus threshold is
// redistributed proportionally to each selection's share of current spend;
// overage beyond the overage tolerance scales every selection down.
// Totals already inside the band are left untouched. Selections are
// mutated in place and keep their identities.
func (e *Engine) Reconcile(selections []*model.ProductSelection, materialBudget float64) {
	if len(selections) == 0 || materialBudget <= 0 {
		return
	}

	var total float64
	for _, sel := range selections {
		total += sel.TotalPrice
	}
	if total <= 0 {
		return
	}

	remaining := materialBudget - total

	switch {
	case remaining > materialBudget*e.cfg.SurplusThreshold:
		// Distribute the surplus proportionally to each selection's
		// share of current spend.
		for _, sel := range selections {
			share := sel.TotalPrice / total
			sel.UnitPrice = round2(sel.UnitPrice + remaining*share/float64(sel.Quantity))
			sel.TotalPrice = round2(sel.UnitPrice * float64(sel.Quantity))
		}
	case total > materialBudget*e.cfg.OverageTolerance:
		factor := materialBudget / total
		for _, sel := range selections {
			sel.UnitPrice = round2(sel.UnitPrice * factor)
			sel.TotalPrice = round2(sel.UnitPrice * float64(sel.Quantity))
		}
	}
}
