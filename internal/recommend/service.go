package recommend

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"design-service/internal/design"
	"design-service/internal/model"
	"design-service/internal/store"
	"design-service/prometheus"

	"go.uber.org/zap"
)

// defaultBudget is used when neither the request nor the template carries
// a budget envelope.
const defaultBudget = 5000

// Service orchestrates one design generation: it resolves session and
// template, runs the engine and persists the result. It holds no per-run
// state and is safe for concurrent use.
type Service struct {
	sessions  *store.SessionStore
	templates *store.TemplateStore
	designs   *store.DesignStore
	engine    *design.Engine
	log       *zap.Logger
}

func NewService(sessions *store.SessionStore, templates *store.TemplateStore, designs *store.DesignStore, engine *design.Engine, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sessions:  sessions,
		templates: templates,
		designs:   designs,
		engine:    engine,
		log:       log,
	}
}

// GenerateRequest carries the decoded generation parameters. BudgetRange
// is kept raw: clients send a number, a JSON-encoded string or a
// {min,max} object, and all three are tolerated.
type GenerateRequest struct {
	SessionID        uint            `json:"session_id"`
	LayoutTemplateID uint            `json:"layout_template_id"`
	RoomDimensions   model.JSONMap   `json:"room_dimensions"`
	BudgetRange      json.RawMessage `json:"budget_range"`
}

// Record is the generation response payload.
type Record struct {
	DesignID          uint                       `json:"design_id"`
	Template          string                     `json:"template"`
	RoomType          string                     `json:"room_type"`
	Style             string                     `json:"style"`
	Dimensions        model.JSONMap              `json:"dimensions"`
	MaterialCost      float64                    `json:"material_cost"`
	LaborCost         float64                    `json:"labor_cost"`
	TotalCost         float64                    `json:"total_cost"`
	BudgetUtilization float64                    `json:"budget_utilization"`
	EstimatedBudget   model.JSONMap              `json:"estimated_budget"`
	ColorPalette      model.StringList           `json:"color_palette"`
	Reasoning         string                     `json:"reasoning"`
	ProductCount      int                        `json:"product_count"`
	CostBreakdown     []design.CategoryBreakdown `json:"cost_breakdown"`
	DesignFeatures    []string                   `json:"design_features"`
	Status            string                     `json:"status"`
}

// DecodeBudget extracts the budget ceiling from a tolerant budget_range
// encoding: a bare number, a numeric string, a JSON-encoded string of any
// accepted shape, or a {min,max} object. Returns false when nothing
// usable is present.
func DecodeBudget(raw json.RawMessage) (float64, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0, false
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil && number > 0 {
		return number, true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if amount, err := strconv.ParseFloat(text, 64); err == nil && amount > 0 {
			return amount, true
		}
		// string wrapping a JSON object or number
		return DecodeBudget(json.RawMessage(text))
	}

	var bounds struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(raw, &bounds); err == nil {
		if bounds.Max > 0 {
			return bounds.Max, true
		}
		if bounds.Min > 0 {
			return bounds.Min, true
		}
	}
	return 0, false
}

// Generate runs the engine for the request and persists the outcome.
// Session and template misses surface as store.ErrNotFound; malformed
// template slots surface as design.ConfigurationError.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Record, error) {
	started := time.Now()

	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	var template *model.LayoutTemplate
	if req.LayoutTemplateID != 0 {
		template, err = s.templates.Get(ctx, req.LayoutTemplateID)
	} else {
		template, err = s.templates.FindForPreferences(ctx, session.RoomType, session.StylePreference)
	}
	if err != nil {
		return nil, err
	}

	dimensions := req.RoomDimensions
	if len(dimensions) == 0 {
		dimensions = template.Dimensions
	}

	totalBudget, ok := DecodeBudget(req.BudgetRange)
	if !ok {
		totalBudget = template.MaxEstimatedBudget(defaultBudget)
	}

	prefs := design.PreferencesFrom(session.Preferences)
	result, err := s.engine.Assemble(ctx, template, prefs, totalBudget)
	if err != nil {
		prometheus.RecordDesignGeneration("error", time.Since(started))
		return nil, err
	}

	record := &model.DesignRecommendation{
		SessionID:         session.ID,
		LayoutTemplateID:  template.ID,
		RoomDimensions:    dimensions,
		UserPreferences:   session.Preferences,
		MaterialCost:      result.MaterialCost,
		LaborCost:         result.LaborCost,
		TotalCost:         result.TotalCost,
		BudgetUtilization: result.BudgetUtilization,
		Reasoning:         result.Reasoning,
		Status:            model.DesignStatusGenerated,
	}
	for _, sel := range result.Selections {
		record.Selections = append(record.Selections, *sel)
	}

	designID, err := s.designs.Save(ctx, record)
	if err != nil {
		prometheus.RecordDesignGeneration("error", time.Since(started))
		return nil, err
	}

	prometheus.RecordDesignGeneration("success", time.Since(started))
	prometheus.SynthesizedItemsCounter.Add(float64(result.SynthesizedCount))
	prometheus.BudgetUtilizationHistogram.Observe(result.BudgetUtilization)
	if result.ReasoningFallback {
		prometheus.TextGenerationFallbacks.Inc()
	}

	s.log.Info("design generated",
		zap.Uint("design_id", designID),
		zap.Uint("session_id", session.ID),
		zap.String("template", template.Name),
		zap.Float64("total_cost", result.TotalCost),
		zap.Int("synthesized", result.SynthesizedCount))

	return &Record{
		DesignID:          designID,
		Template:          template.Name,
		RoomType:          template.RoomType,
		Style:             template.Style,
		Dimensions:        dimensions,
		MaterialCost:      result.MaterialCost,
		LaborCost:         result.LaborCost,
		TotalCost:         result.TotalCost,
		BudgetUtilization: result.BudgetUtilization,
		EstimatedBudget:   template.EstimatedBudget,
		ColorPalette:      template.ColorPalette,
		Reasoning:         result.Reasoning,
		ProductCount:      len(result.Selections),
		CostBreakdown:     result.OrderedBreakdown(),
		DesignFeatures:    result.DesignFeatures,
		Status:            "success",
	}, nil
}
