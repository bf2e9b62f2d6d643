package model

import (
	"time"
)

// LayoutTemplate is immutable reference data describing a furnished room
// layout: its dimensions, furnishing slots and budget envelope. Templates
// are seeded at startup and never mutated by request handlers.
type LayoutTemplate struct {
	ID              uint       `json:"id" gorm:"primarykey"`
	Name            string     `json:"name" gorm:"type:varchar(100);not null"`
	RoomType        string     `json:"room_type" gorm:"type:varchar(50);index"`
	Style           string     `json:"style" gorm:"type:varchar(50);index"`
	Description     string     `json:"description" gorm:"type:text"`
	Dimensions      JSONMap    `json:"dimensions" gorm:"type:jsonb"`
	Slots           RawJSON    `json:"product_slots" gorm:"type:jsonb"`
	ColorPalette    StringList `json:"color_palette" gorm:"type:jsonb"`
	EstimatedBudget JSONMap    `json:"estimated_budget" gorm:"type:jsonb"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AreaSqft reads the square footage out of the dimensions document.
func (t *LayoutTemplate) AreaSqft() float64 {
	if t.Dimensions == nil {
		return 0
	}
	if v, ok := t.Dimensions["area_sqft"].(float64); ok {
		return v
	}
	return 0
}

// MaxEstimatedBudget returns the upper bound of the template's budget
// envelope, or the provided default when the template carries none.
func (t *LayoutTemplate) MaxEstimatedBudget(def float64) float64 {
	if t.EstimatedBudget == nil {
		return def
	}
	if v, ok := t.EstimatedBudget["max"].(float64); ok && v > 0 {
		return v
	}
	return def
}
