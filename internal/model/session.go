package model

import (
	"time"
)

// Room types a session can settle on.
const (
	RoomBathroom = "bathroom"
	RoomKitchen  = "kitchen"
)

// UserSession tracks one visitor's conversation and collected preferences.
// The Preferences document is the source of truth; the quick-access columns
// are denormalized from it on every save for querying.
type UserSession struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	SessionKey      string    `json:"session_key" gorm:"type:varchar(100);uniqueIndex;not null"`
	Preferences     JSONMap   `json:"preferences" gorm:"type:jsonb"`
	IsActive        bool      `json:"is_active" gorm:"default:true;index"`
	RoomType        string    `json:"room_type" gorm:"type:varchar(20)"`
	StylePreference string    `json:"style_preference" gorm:"type:varchar(20)"`
	BudgetRange     string    `json:"budget_range" gorm:"type:varchar(10)"`
	BudgetAmount    float64   `json:"budget_amount"`
	RoomSize        string    `json:"room_size" gorm:"type:varchar(10)"`

	TotalInteractions int `json:"total_interactions" gorm:"default:0"`
	CompletionPercent int `json:"completion_percentage" gorm:"default:0"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastActivity time.Time `json:"last_activity" gorm:"index"`
}

// SyncFromPreferences refreshes the quick-access columns from the
// preference document and recomputes completion.
func (s *UserSession) SyncFromPreferences() {
	if s.Preferences == nil {
		return
	}
	s.RoomType = prefString(s.Preferences, "room_type")
	s.StylePreference = prefString(s.Preferences, "style")
	s.BudgetRange = prefString(s.Preferences, "budget_range")
	s.RoomSize = prefString(s.Preferences, "room_size")

	if amount, ok := s.Preferences["budget_amount"].(float64); ok && amount > 0 {
		s.BudgetAmount = amount
		s.BudgetRange = s.categorizeBudget()
		if s.BudgetRange != "" {
			s.Preferences["budget_range"] = s.BudgetRange
		}
	}
	s.CompletionPercent = s.calculateCompletion()
	s.LastActivity = time.Now()
}

// categorizeBudget maps a concrete budget amount into the low/medium/high
// band for the session's room type.
func (s *UserSession) categorizeBudget() string {
	if s.BudgetAmount <= 0 || s.RoomType == "" {
		return s.BudgetRange
	}

	switch s.RoomType {
	case RoomKitchen:
		switch {
		case s.BudgetAmount < 15000:
			return "low"
		case s.BudgetAmount <= 30000:
			return "medium"
		default:
			return "high"
		}
	case RoomBathroom:
		switch {
		case s.BudgetAmount < 7000:
			return "low"
		case s.BudgetAmount <= 25000:
			return "medium"
		default:
			return "high"
		}
	}
	return "medium"
}

// EssentialPreferenceKeys are the answers the conversation needs before a
// design can be generated.
var EssentialPreferenceKeys = []string{"room_type", "style", "room_size", "budget_range"}

func (s *UserSession) calculateCompletion() int {
	roomType := prefString(s.Preferences, "room_type")
	if roomType != RoomBathroom && roomType != RoomKitchen {
		if roomType != "" {
			return 10
		}
		return 0
	}

	completed := 0
	for _, key := range EssentialPreferenceKeys {
		if prefString(s.Preferences, key) != "" {
			completed++
		}
	}
	pct := completed * 100 / len(EssentialPreferenceKeys)
	if pct > 90 {
		pct = 90
	}
	return pct
}

// MissingEssentials lists the essential preference keys still unanswered.
func (s *UserSession) MissingEssentials() []string {
	var missing []string
	for _, key := range EssentialPreferenceKeys {
		if prefString(s.Preferences, key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func prefString(prefs JSONMap, key string) string {
	if prefs == nil {
		return ""
	}
	if v, ok := prefs[key].(string); ok {
		return v
	}
	return ""
}

// ChatInteraction is one user message / assistant response exchange.
type ChatInteraction struct {
	ID                   uint      `json:"id" gorm:"primarykey"`
	SessionID            uint      `json:"session_id" gorm:"index;not null"`
	UserMessage          string    `json:"user_message" gorm:"type:text"`
	AIResponse           string    `json:"ai_response" gorm:"type:text"`
	ExtractedPreferences JSONMap   `json:"extracted_preferences" gorm:"type:jsonb"`
	Intent               string    `json:"intent" gorm:"type:varchar(30)"`
	Timestamp            time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
