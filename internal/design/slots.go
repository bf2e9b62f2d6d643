package design

import (
	"encoding/json"
	"fmt"
	"sort"

	"design-service/internal/model"
)

// Slot is a named furnishing role within a layout template. Quantity is
// always at least 1; BudgetPercent carries the slot's weight and is not
// guaranteed to sum to 100 across a template.
type Slot struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Required      bool    `json:"required"`
	Quantity      int     `json:"quantity"`
	BudgetPercent float64 `json:"budget_percentage"`
}

// Preferences carries the user inputs the scorer matches candidates
// against.
type Preferences struct {
	Style    string
	RoomType string
	Material string
}

// PreferencesFrom extracts scoring preferences out of a session's
// preference document.
func PreferencesFrom(prefs model.JSONMap) Preferences {
	get := func(key string) string {
		if prefs == nil {
			return ""
		}
		if v, ok := prefs[key].(string); ok {
			return v
		}
		return ""
	}
	return Preferences{
		Style:    get("style"),
		RoomType: get("room_type"),
		Material: get("material"),
	}
}

// NormalizeSlots decodes a template's slot configuration into the
// canonical list shape. Two encodings are tolerated: a list of slot
// objects, and an object keyed by slot name. Anything else, or an empty
// configuration, is a ConfigurationError.
func NormalizeSlots(raw model.RawJSON) ([]Slot, error) {
	if len(raw) == 0 {
		return nil, &ConfigurationError{Reason: "template has no slots"}
	}

	var list []Slot
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return validateSlots(list)
	}

	// Object-of-objects encoding: the key is the slot name unless the
	// value carries its own.
	var byName map[string]Slot
	if err := json.Unmarshal([]byte(raw), &byName); err != nil {
		return nil, &ConfigurationError{Reason: "unreadable slot encoding"}
	}

	list = make([]Slot, 0, len(byName))
	for name, slot := range byName {
		if slot.Name == "" {
			slot.Name = name
		}
		list = append(list, slot)
	}
	sortSlots(list)
	return validateSlots(list)
}

func validateSlots(slots []Slot) ([]Slot, error) {
	if len(slots) == 0 {
		return nil, &ConfigurationError{Reason: "template has no slots"}
	}
	for i := range slots {
		if slots[i].Name == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("slot %d has no name", i)}
		}
		if slots[i].BudgetPercent < 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("slot %q has a negative budget percentage", slots[i].Name)}
		}
		if slots[i].Quantity < 1 {
			slots[i].Quantity = 1
		}
	}
	return slots, nil
}

// sortSlots keeps map-encoded templates deterministic across runs.
func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i].Name < slots[j].Name })
}
