package chat

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"design-service/internal/model"
	"design-service/pkg/config"
	"design-service/prometheus"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "test"},
	})
	os.Exit(m.Run())
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestStartRateLimitWindow(t *testing.T) {
	mr, client := newTestCache(t)
	cfg := config.RedisConfig{SessionTTL: 5 * time.Minute}

	// sessions is nil on purpose: a cached entry must short-circuit
	// before any store access
	svc := NewService(nil, nil, nil, client, cfg, nil)

	cached := StartResult{SessionID: 42, SessionKey: "abc", Message: welcomeMessage}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, mr.Set("session_start:10.0.0.1", string(payload)))

	result, err := svc.Start(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Reused)
	assert.Equal(t, uint(42), result.SessionID)
	assert.Equal(t, "abc", result.SessionKey)
}

func TestStartCacheExpiry(t *testing.T) {
	mr, client := newTestCache(t)
	cfg := config.RedisConfig{SessionTTL: 5 * time.Minute}
	svc := NewService(nil, nil, nil, client, cfg, nil)

	payload, err := json.Marshal(StartResult{SessionID: 7})
	require.NoError(t, err)
	require.NoError(t, mr.Set("session_start:10.0.0.2", string(payload)))
	mr.SetTTL("session_start:10.0.0.2", cfg.SessionTTL)

	// inside the window the cached session is reused
	result, err := svc.Start(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, result.Reused)

	// past the window the key is gone
	mr.FastForward(6 * time.Minute)
	assert.False(t, mr.Exists("session_start:10.0.0.2"))
}

func TestBudgetContext(t *testing.T) {
	t.Run("band features when room and band known", func(t *testing.T) {
		session := &model.UserSession{
			RoomType:     model.RoomKitchen,
			BudgetRange:  "medium",
			BudgetAmount: 20000,
		}

		got := budgetContext(session)

		assert.Contains(t, got, "$20000")
		assert.Contains(t, got, "medium range for kitchen")
		assert.Contains(t, got, "Semi-custom cabinets")
	})

	t.Run("amount only when band unknown", func(t *testing.T) {
		session := &model.UserSession{
			RoomType:     model.RoomBathroom,
			BudgetRange:  "",
			BudgetAmount: 9000,
		}

		got := budgetContext(session)

		assert.Equal(t, "Budget: $9000", got)
	})

	t.Run("empty without amount or room", func(t *testing.T) {
		assert.Empty(t, budgetContext(&model.UserSession{BudgetAmount: 5000}))
		assert.Empty(t, budgetContext(&model.UserSession{RoomType: model.RoomKitchen}))
	})
}

func TestSessionPhase(t *testing.T) {
	tests := []struct {
		name    string
		session *model.UserSession
		want    string
	}{
		{"no room type", &model.UserSession{}, "room_identification"},
		{"unsupported room", &model.UserSession{RoomType: "garage"}, "general"},
		{
			"only room known",
			&model.UserSession{
				RoomType:    model.RoomKitchen,
				Preferences: model.JSONMap{"room_type": "kitchen"},
			},
			"basic_info",
		},
		{
			"one essential missing",
			&model.UserSession{
				RoomType: model.RoomKitchen,
				Preferences: model.JSONMap{
					"room_type": "kitchen", "style": "modern", "room_size": "small",
				},
			},
			"detailed_info",
		},
		{
			"all essentials answered",
			&model.UserSession{
				RoomType: model.RoomKitchen,
				Preferences: model.JSONMap{
					"room_type": "kitchen", "style": "modern",
					"room_size": "small", "budget_range": "medium",
				},
			},
			"design_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sessionPhase(tt.session))
		})
	}
}
