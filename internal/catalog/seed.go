package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"design-service/internal/design"
	"design-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type templateSeed struct {
	Name            string
	RoomType        string
	Style           string
	Dimensions      model.JSONMap
	Slots           []design.Slot
	ColorPalette    model.StringList
	EstimatedBudget model.JSONMap
}

var templateSeeds = []templateSeed{
	{
		Name:     "Modern Living Room",
		RoomType: "living_room",
		Style:    "modern",
		Dimensions: model.JSONMap{"width": 14.0, "height": 12.0, "area_sqft": 168.0},
		Slots: []design.Slot{
			{Name: "main_sofa", Category: "Seating", Required: true, Quantity: 1, BudgetPercent: 35},
			{Name: "coffee_table", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 15},
			{Name: "accent_chair", Category: "Seating", Quantity: 1, BudgetPercent: 20},
			{Name: "floor_lamp", Category: "Lighting", Required: true, Quantity: 1, BudgetPercent: 10},
			{Name: "table_lamp", Category: "Lighting", Quantity: 1, BudgetPercent: 8},
			{Name: "tv_stand", Category: "Storage", Quantity: 1, BudgetPercent: 12},
		},
		ColorPalette:    model.StringList{"#2C3E50", "#ECF0F1", "#3498DB", "#E74C3C"},
		EstimatedBudget: model.JSONMap{"min": 2500.0, "max": 8000.0},
	},
	{
		Name:     "Scandinavian Living Room",
		RoomType: "living_room",
		Style:    "scandinavian",
		Dimensions: model.JSONMap{"width": 13.0, "height": 11.0, "area_sqft": 143.0},
		Slots: []design.Slot{
			{Name: "sectional_sofa", Category: "Seating", Required: true, Quantity: 1, BudgetPercent: 40},
			{Name: "wooden_coffee_table", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 18},
			{Name: "accent_chair", Category: "Seating", Quantity: 1, BudgetPercent: 15},
			{Name: "pendant_light", Category: "Lighting", Required: true, Quantity: 1, BudgetPercent: 12},
			{Name: "bookshelf", Category: "Storage", Quantity: 1, BudgetPercent: 15},
		},
		ColorPalette:    model.StringList{"#FFFFFF", "#F5F5DC", "#D2B48C", "#8FBC8F"},
		EstimatedBudget: model.JSONMap{"min": 2000.0, "max": 6500.0},
	},
	{
		Name:     "Modern Bedroom",
		RoomType: "bedroom",
		Style:    "modern",
		Dimensions: model.JSONMap{"width": 12.0, "height": 10.0, "area_sqft": 120.0},
		Slots: []design.Slot{
			{Name: "platform_bed", Category: "Beds", Required: true, Quantity: 1, BudgetPercent: 45},
			{Name: "nightstand", Category: "Tables", Required: true, Quantity: 2, BudgetPercent: 20},
			{Name: "dresser", Category: "Storage", Quantity: 1, BudgetPercent: 25},
			{Name: "bedside_lamp", Category: "Lighting", Required: true, Quantity: 2, BudgetPercent: 10},
		},
		ColorPalette:    model.StringList{"#2C3E50", "#FFFFFF", "#BDC3C7", "#E67E22"},
		EstimatedBudget: model.JSONMap{"min": 1800.0, "max": 5500.0},
	},
	{
		Name:     "Minimalist Bedroom",
		RoomType: "bedroom",
		Style:    "minimalist",
		Dimensions: model.JSONMap{"width": 11.0, "height": 9.0, "area_sqft": 99.0},
		Slots: []design.Slot{
			{Name: "simple_bed", Category: "Beds", Required: true, Quantity: 1, BudgetPercent: 50},
			{Name: "floating_nightstand", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 15},
			{Name: "wall_mounted_light", Category: "Lighting", Required: true, Quantity: 2, BudgetPercent: 20},
			{Name: "minimal_wardrobe", Category: "Storage", Quantity: 1, BudgetPercent: 15},
		},
		ColorPalette:    model.StringList{"#FFFFFF", "#F8F9FA", "#495057", "#6C757D"},
		EstimatedBudget: model.JSONMap{"min": 1200.0, "max": 3500.0},
	},
	{
		Name:     "Contemporary Dining Room",
		RoomType: "dining_room",
		Style:    "contemporary",
		Dimensions: model.JSONMap{"width": 10.0, "height": 12.0, "area_sqft": 120.0},
		Slots: []design.Slot{
			{Name: "dining_table", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 40},
			{Name: "dining_chairs", Category: "Seating", Required: true, Quantity: 6, BudgetPercent: 30},
			{Name: "buffet", Category: "Storage", Quantity: 1, BudgetPercent: 20},
			{Name: "chandelier", Category: "Lighting", Required: true, Quantity: 1, BudgetPercent: 10},
		},
		ColorPalette:    model.StringList{"#34495E", "#FFFFFF", "#F39C12", "#E74C3C"},
		EstimatedBudget: model.JSONMap{"min": 2200.0, "max": 7000.0},
	},
	{
		Name:     "Industrial Home Office",
		RoomType: "office",
		Style:    "industrial",
		Dimensions: model.JSONMap{"width": 10.0, "height": 8.0, "area_sqft": 80.0},
		Slots: []design.Slot{
			{Name: "executive_desk", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 35},
			{Name: "office_chair", Category: "Seating", Required: true, Quantity: 1, BudgetPercent: 25},
			{Name: "bookshelf", Category: "Storage", Required: true, Quantity: 1, BudgetPercent: 20},
			{Name: "desk_lamp", Category: "Lighting", Required: true, Quantity: 1, BudgetPercent: 10},
			{Name: "filing_cabinet", Category: "Storage", Quantity: 1, BudgetPercent: 10},
		},
		ColorPalette:    model.StringList{"#2C3E50", "#95A5A6", "#E67E22", "#C0392B"},
		EstimatedBudget: model.JSONMap{"min": 1500.0, "max": 4500.0},
	},
	{
		Name:     "Modern Kitchen",
		RoomType: "kitchen",
		Style:    "modern",
		Dimensions: model.JSONMap{"width": 14.0, "height": 11.0, "area_sqft": 154.0},
		Slots: []design.Slot{
			{Name: "kitchen_cabinet", Category: "Storage", Required: true, Quantity: 1, BudgetPercent: 40},
			{Name: "kitchen_island", Category: "Tables", Required: true, Quantity: 1, BudgetPercent: 25},
			{Name: "bar_stools", Category: "Seating", Quantity: 3, BudgetPercent: 15},
			{Name: "pendant_lights", Category: "Lighting", Required: true, Quantity: 2, BudgetPercent: 12},
			{Name: "kitchen_appliances", Category: "Appliances", Required: true, Quantity: 1, BudgetPercent: 8},
		},
		ColorPalette:    model.StringList{"#FFFFFF", "#2C3E50", "#95A5A6", "#1ABC9C"},
		EstimatedBudget: model.JSONMap{"min": 5000.0, "max": 15000.0},
	},
	{
		Name:     "Contemporary Bathroom",
		RoomType: "bathroom",
		Style:    "contemporary",
		Dimensions: model.JSONMap{"width": 8.0, "height": 7.0, "area_sqft": 56.0},
		Slots: []design.Slot{
			{Name: "vanity", Category: "Storage", Required: true, Quantity: 1, BudgetPercent: 35},
			{Name: "shower_fixture", Category: "Fixtures", Required: true, Quantity: 1, BudgetPercent: 30},
			{Name: "bathroom_mirror", Category: "Accessories", Required: true, Quantity: 1, BudgetPercent: 15},
			{Name: "wall_mounted_light", Category: "Lighting", Required: true, Quantity: 2, BudgetPercent: 12},
			{Name: "towel_storage", Category: "Storage", Quantity: 1, BudgetPercent: 8},
		},
		ColorPalette:    model.StringList{"#FFFFFF", "#D5DBDB", "#5D6D7E", "#48C9B0"},
		EstimatedBudget: model.JSONMap{"min": 2500.0, "max": 9000.0},
	},
}

// SeedTemplates creates the built-in layout templates if they do not
// exist yet. Templates are reference data: existing rows are never
// overwritten.
func SeedTemplates(db *gorm.DB, log *zap.Logger) error {
	for _, seed := range templateSeeds {
		slots, err := json.Marshal(seed.Slots)
		if err != nil {
			return fmt.Errorf("marshal slots for template %q: %w", seed.Name, err)
		}

		template := model.LayoutTemplate{
			Name:            seed.Name,
			RoomType:        seed.RoomType,
			Style:           seed.Style,
			Description:     fmt.Sprintf("A %s %s layout with carefully selected furniture pieces.", seed.Style, strings.ReplaceAll(seed.RoomType, "_", " ")),
			Dimensions:      seed.Dimensions,
			Slots:           model.RawJSON(slots),
			ColorPalette:    seed.ColorPalette,
			EstimatedBudget: seed.EstimatedBudget,
		}

		result := db.Where("name = ? AND room_type = ? AND style = ?", seed.Name, seed.RoomType, seed.Style).
			FirstOrCreate(&template)
		if result.Error != nil {
			return fmt.Errorf("seed template %q: %w", seed.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Info("Seeded layout template", zap.String("name", seed.Name))
		}
	}
	return nil
}
