package model

import (
	"time"
)

// Design recommendation statuses.
const (
	DesignStatusDraft     = "draft"
	DesignStatusGenerated = "generated"
	DesignStatusApproved  = "approved"
	DesignStatusRejected  = "rejected"
)

// DesignRecommendation is one assembled design run for a session. It owns
// its selections; nothing is shared across runs.
type DesignRecommendation struct {
	ID               uint    `json:"id" gorm:"primarykey"`
	SessionID        uint    `json:"session_id" gorm:"index;not null"`
	LayoutTemplateID uint    `json:"layout_template_id" gorm:"index"`
	LayoutTemplate   LayoutTemplate `json:"-" gorm:"foreignKey:LayoutTemplateID"`
	RoomDimensions   JSONMap `json:"room_dimensions" gorm:"type:jsonb"`
	UserPreferences  JSONMap `json:"user_preferences" gorm:"type:jsonb"`

	MaterialCost      float64 `json:"material_cost"`
	LaborCost         float64 `json:"labor_cost"`
	TotalCost         float64 `json:"total_cost"`
	BudgetUtilization float64 `json:"budget_utilization"`

	Reasoning string `json:"reasoning" gorm:"type:text"`
	Status    string `json:"status" gorm:"type:varchar(20);default:draft"`

	Selections []ProductSelection `json:"selections" gorm:"foreignKey:DesignID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductSelection is one filled furnishing slot of a design. ProductID is
// nil for synthesized placeholder items.
type ProductSelection struct {
	ID        uint     `json:"id" gorm:"primarykey"`
	DesignID  uint     `json:"design_id" gorm:"index;not null"`
	ProductID *uint    `json:"product_id"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID"`

	SlotName    string  `json:"slot_name" gorm:"type:varchar(100);not null"`
	Name        string  `json:"name" gorm:"type:varchar(255)"`
	Quantity    int     `json:"quantity" gorm:"default:1"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Reasoning   string  `json:"reasoning" gorm:"type:text"`
	IsEstimated bool    `json:"is_estimated" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
}
