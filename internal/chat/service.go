package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"design-service/internal/catalog"
	"design-service/internal/design"
	"design-service/internal/model"
	"design-service/internal/store"
	"design-service/pkg/config"
	"design-service/prometheus"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// questioning stops once the conversation is this long even if
	// essentials are still missing
	maxQuestioningMessages = 6
	// conversation context keeps this many recent exchanges for prompts
	recentExchanges = 2
	maxSuggestions  = 3
)

// budgetBandFeatures describes what a budget band typically buys, used to
// ground the assistant's prompts.
var budgetBandFeatures = map[string]map[string]string{
	model.RoomKitchen: {
		"low":    "Cosmetic upgrades, DIY work, repainting, refacing cabinets, basic appliances",
		"medium": "Semi-custom cabinets, new countertops, mid-range appliances and finishes",
		"high":   "Custom cabinets, structural changes, high-end materials & appliances, full redesign",
	},
	model.RoomBathroom: {
		"low":    "Cosmetic changes, painting, basic fixtures, DIY upgrades",
		"medium": "New fixtures, cabinets, moderate tile/finish upgrades, professional installation",
		"high":   "Complete overhaul, luxury finishes, expansions, custom work",
	},
}

// Service runs the preference-gathering conversation. Response text comes
// from the text generator; preference extraction is purely lexical so a
// generator outage degrades wording, never data collection.
type Service struct {
	sessions *store.SessionStore
	catalog  *catalog.Repository
	texter   design.TextGenerator
	cache    *redis.Client
	cfg      config.RedisConfig
	log      *zap.Logger
}

func NewService(sessions *store.SessionStore, cat *catalog.Repository, texter design.TextGenerator, cache *redis.Client, cfg config.RedisConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sessions: sessions,
		catalog:  cat,
		texter:   texter,
		cache:    cache,
		cfg:      cfg,
		log:      log,
	}
}

// StartResult is the payload of a session start, cached per client IP for
// the rate-limit window.
type StartResult struct {
	SessionID  uint   `json:"session_id"`
	SessionKey string `json:"session_key"`
	Message    string `json:"message"`
	Reused     bool   `json:"reused"`
}

const welcomeMessage = "Hi! I'm your interior design assistant, specializing in bathroom and kitchen projects. Which space are you looking to renovate, and what's your budget range?"

// Start creates a session for the client, or returns the session created
// within the rate-limit window for the same IP.
func (s *Service) Start(ctx context.Context, clientIP string) (*StartResult, error) {
	key := "session_start:" + clientIP

	if s.cache != nil && clientIP != "" {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var result StartResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				result.Reused = true
				prometheus.SessionsRateLimitCounter.Inc()
				return &result, nil
			}
		} else if err != nil && err != redis.Nil {
			s.log.Warn("session cache unavailable", zap.Error(err))
		}
	}

	session, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, err
	}
	prometheus.SessionsStartedCounter.Inc()

	result := &StartResult{
		SessionID:  session.ID,
		SessionKey: session.SessionKey,
		Message:    welcomeMessage,
	}

	if s.cache != nil && clientIP != "" {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cfg.SessionTTL).Err(); err != nil {
				s.log.Warn("session cache write failed", zap.Error(err))
			}
		}
	}
	return result, nil
}

// Suggestion is a budget-checked product hint surfaced mid-conversation.
type Suggestion struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Style    string  `json:"style"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Response is the result of processing one user message.
type Response struct {
	Response           string        `json:"response"`
	Preferences        model.JSONMap `json:"preferences"`
	ProductSuggestions []Suggestion  `json:"product_suggestions"`
	SessionPhase       string        `json:"session_phase"`
	Progress           int           `json:"progress"`
}

// conversationContext is the cached per-session summary fed into prompts.
type conversationContext struct {
	MessageCount   int64      `json:"message_count"`
	RecentMessages []exchange `json:"recent_messages"`
	HasBudget      bool       `json:"has_budget"`
	BudgetInfo     string     `json:"budget_info"`
}

type exchange struct {
	User string `json:"user"`
	AI   string `json:"ai"`
}

// ProcessMessage runs one turn of the conversation: respond, extract,
// persist, optionally suggest products.
func (s *Service) ProcessMessage(ctx context.Context, sessionID uint, message string) (*Response, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	convCtx := s.conversationContext(ctx, session)

	var aiResponse string
	if s.shouldContinueQuestioning(session, convCtx) {
		aiResponse = s.targetedQuestion(ctx, session, message, convCtx)
	} else {
		aiResponse = s.finalResponse(ctx, session, message, convCtx)
	}

	extracted := ExtractPreferences(message)
	if err := s.applyPreferences(ctx, session, extracted); err != nil {
		return nil, err
	}

	var suggestions []Suggestion
	if s.shouldSuggestProducts(session, message, convCtx) {
		suggestions = s.budgetAwareSuggestions(ctx, session)
	}

	prometheus.ChatMessagesCounter.Inc()

	// every second exchange is persisted; the count includes this turn
	if (convCtx.MessageCount+1)%2 == 0 {
		interaction := &model.ChatInteraction{
			SessionID:            session.ID,
			UserMessage:          message,
			AIResponse:           aiResponse,
			ExtractedPreferences: extracted,
			Intent:               ClassifyIntent(message),
		}
		if err := s.sessions.SaveInteraction(ctx, interaction); err != nil {
			s.log.Error("failed to save interaction", zap.Uint("session_id", session.ID), zap.Error(err))
		}
	}

	return &Response{
		Response:           aiResponse,
		Preferences:        extracted,
		ProductSuggestions: suggestions,
		SessionPhase:       sessionPhase(session),
		Progress:           session.CompletionPercent,
	}, nil
}

func (s *Service) conversationContext(ctx context.Context, session *model.UserSession) *conversationContext {
	cacheKey := fmt.Sprintf("conversation_context_%d", session.ID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var convCtx conversationContext
			if json.Unmarshal([]byte(cached), &convCtx) == nil {
				return &convCtx
			}
		}
	}

	convCtx := &conversationContext{
		BudgetInfo: budgetContext(session),
		HasBudget:  session.BudgetAmount > 0,
	}
	if count, err := s.sessions.InteractionCount(ctx, session.ID); err == nil {
		convCtx.MessageCount = count
	}
	if recent, err := s.sessions.RecentInteractions(ctx, session.ID, recentExchanges); err == nil {
		for i := len(recent) - 1; i >= 0; i-- {
			convCtx.RecentMessages = append(convCtx.RecentMessages, exchange{
				User: recent[i].UserMessage,
				AI:   recent[i].AIResponse,
			})
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(convCtx); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cfg.ContextTTL).Err(); err != nil {
				s.log.Warn("context cache write failed", zap.Error(err))
			}
		}
	}
	return convCtx
}

func budgetContext(session *model.UserSession) string {
	if session.BudgetAmount <= 0 || session.RoomType == "" {
		return ""
	}
	if features, ok := budgetBandFeatures[session.RoomType][session.BudgetRange]; ok {
		return fmt.Sprintf("Budget: $%.0f (%s range for %s). Features: %s",
			session.BudgetAmount, session.BudgetRange, session.RoomType, features)
	}
	return fmt.Sprintf("Budget: $%.0f", session.BudgetAmount)
}

func (s *Service) shouldContinueQuestioning(session *model.UserSession, convCtx *conversationContext) bool {
	roomType := session.RoomType
	if roomType != model.RoomBathroom && roomType != model.RoomKitchen {
		return true
	}
	missing := session.MissingEssentials()
	return len(missing) > 0 && convCtx.MessageCount < maxQuestioningMessages
}

func (s *Service) targetedQuestion(ctx context.Context, session *model.UserSession, message string, convCtx *conversationContext) string {
	roomType := session.RoomType
	if roomType != model.RoomBathroom && roomType != model.RoomKitchen {
		return identifyRoomResponse(message)
	}

	missing := session.MissingEssentials()
	if len(missing) == 0 {
		return designOffer(session)
	}

	if s.texter != nil {
		prompt := questionPrompt(session, missing[0], convCtx.BudgetInfo, message)
		if text, err := s.texter.Generate(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			s.log.Warn("text generation failed, using fallback question", zap.Error(err))
			prometheus.TextGenerationFallbacks.Inc()
		}
	}
	return fallbackQuestion(missing[0], roomType)
}

func (s *Service) finalResponse(ctx context.Context, session *model.UserSession, message string, convCtx *conversationContext) string {
	if s.texter != nil {
		prompt := advicePrompt(session, convCtx.BudgetInfo, message)
		if text, err := s.texter.Generate(ctx, prompt); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		} else if err != nil {
			s.log.Warn("text generation failed, using fallback response", zap.Error(err))
			prometheus.TextGenerationFallbacks.Inc()
		}
	}
	return "I'd love to help you with your design project! What specific aspect would you like to discuss?"
}

func identifyRoomResponse(message string) string {
	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, bathroomWords):
		return "Great! I specialize in bathroom design. What's your budget range for this bathroom project?"
	case containsAny(lower, kitchenWords):
		return "Perfect! I love working on kitchen projects. What's your budget for this kitchen renovation?"
	default:
		return "I specialize in bathroom and kitchen design! Which space are you looking to renovate, and what's your budget range?"
	}
}

func designOffer(session *model.UserSession) string {
	budgetInfo := ""
	if session.BudgetAmount > 0 {
		budgetInfo = fmt.Sprintf(" with your $%.0f budget", session.BudgetAmount)
	}
	return fmt.Sprintf("Perfect! I have all the details I need for your %s%s. Would you like me to create a design recommendation now, or do you have any specific questions about materials, layouts, or features?",
		session.RoomType, budgetInfo)
}

func questionPrompt(session *model.UserSession, missingKey, budgetInfo, message string) string {
	prefs, _ := json.Marshal(session.Preferences)
	return fmt.Sprintf(`You are a %s design specialist.

Current info: %s
%s

Focus on asking about: %s

Question guides:
- room_size: Ask about space dimensions (small/medium/large)
- style: Ask about preferred design style considering their budget
- budget_range: Ask for specific budget amount in dollars

Ask ONE focused question (1-2 sentences). Consider budget constraints if known.

User message: %s`, session.RoomType, prefs, budgetInfo, missingKey, message)
}

func advicePrompt(session *model.UserSession, budgetInfo, message string) string {
	return fmt.Sprintf(`You are a helpful interior design assistant specializing in bathrooms and kitchens.

Current user info: Room: %s, Style: %s, Size: %s
%s

Provide helpful, concise advice. Keep responses under 150 words and be conversational.
If discussing products or recommendations, always consider the user's budget range.

User message: %s`, session.RoomType, session.StylePreference, session.RoomSize, budgetInfo, message)
}

func fallbackQuestion(missingKey, roomType string) string {
	switch missingKey {
	case "room_size":
		return fmt.Sprintf("What size %s are you working with - small, medium, or large?", roomType)
	case "style":
		return fmt.Sprintf("What design style do you prefer for your %s?", roomType)
	case "budget_range":
		return fmt.Sprintf("What's your budget range for this %s project?", roomType)
	default:
		return fmt.Sprintf("Tell me more about your %s project!", roomType)
	}
}

func (s *Service) applyPreferences(ctx context.Context, session *model.UserSession, extracted model.JSONMap) error {
	if len(extracted) == 0 {
		return nil
	}
	if session.Preferences == nil {
		session.Preferences = model.JSONMap{}
	}

	updated := false
	for key, value := range extracted {
		if value == nil || value == "" {
			continue
		}
		if session.Preferences[key] != value {
			session.Preferences[key] = value
			updated = true
		}
	}
	if !updated {
		return nil
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, fmt.Sprintf("conversation_context_%d", session.ID)).Err(); err != nil {
			s.log.Warn("context cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func (s *Service) shouldSuggestProducts(session *model.UserSession, message string, convCtx *conversationContext) bool {
	lower := strings.ToLower(message)
	if containsAny(lower, []string{"recommend", "suggest", "show", "options", "design"}) {
		return true
	}
	if session.RoomType != "" && session.StylePreference != "" {
		return true
	}
	return convCtx.MessageCount >= 4
}

func (s *Service) budgetAwareSuggestions(ctx context.Context, session *model.UserSession) []Suggestion {
	if s.catalog == nil {
		return nil
	}
	products, err := s.catalog.SuggestWithinBudget(ctx, session.RoomType, session.StylePreference, session.BudgetAmount, maxSuggestions)
	if err != nil {
		s.log.Warn("product suggestions unavailable", zap.Error(err))
		return nil
	}

	suggestions := make([]Suggestion, 0, len(products))
	for _, p := range products {
		suggestions = append(suggestions, Suggestion{
			ID:       p.ID,
			Name:     p.Name,
			Style:    p.Style,
			Price:    p.Price,
			Category: p.Category.Name,
		})
	}
	return suggestions
}

func sessionPhase(session *model.UserSession) string {
	roomType := session.RoomType
	if roomType == "" {
		return "room_identification"
	}
	if roomType != model.RoomBathroom && roomType != model.RoomKitchen {
		return "general"
	}

	missing := len(session.MissingEssentials())
	switch {
	case missing > 2:
		return "basic_info"
	case missing > 0:
		return "detailed_info"
	default:
		return "design_ready"
	}
}
