package store

import (
	"context"
	"errors"

	"design-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionStore persists user sessions and chat interactions.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore builds a session store on the given database handle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create starts a new active session with a fresh session key.
func (s *SessionStore) Create(ctx context.Context) (*model.UserSession, error) {
	session := &model.UserSession{
		SessionKey:  uuid.New().String(),
		Preferences: model.JSONMap{},
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a session by ID.
func (s *SessionStore) Get(ctx context.Context, id uint) (*model.UserSession, error) {
	var session model.UserSession
	err := s.db.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save persists the session after syncing its quick-access columns from
// the preference document.
func (s *SessionStore) Save(ctx context.Context, session *model.UserSession) error {
	session.SyncFromPreferences()
	return s.db.WithContext(ctx).Save(session).Error
}

// SaveInteraction records one chat exchange and bumps the session's
// interaction count.
func (s *SessionStore) SaveInteraction(ctx context.Context, interaction *model.ChatInteraction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interaction).Error; err != nil {
			return err
		}
		return tx.Model(&model.UserSession{}).
			Where("id = ?", interaction.SessionID).
			UpdateColumn("total_interactions", gorm.Expr("total_interactions + 1")).Error
	})
}

// InteractionCount returns how many chat exchanges a session has stored.
func (s *SessionStore) InteractionCount(ctx context.Context, sessionID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ChatInteraction{}).
		Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}

// RecentInteractions returns the latest chat exchanges, newest first.
func (s *SessionStore) RecentInteractions(ctx context.Context, sessionID uint, limit int) ([]model.ChatInteraction, error) {
	var interactions []model.ChatInteraction
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&interactions).Error
	return interactions, err
}
