package store

import (
	"context"
	"errors"

	"design-service/internal/model"

	"gorm.io/gorm"
)

// TemplateStore reads layout templates. Templates are immutable reference
// data seeded at startup, so the store only exposes lookups.
type TemplateStore struct {
	db *gorm.DB
}

// NewTemplateStore builds a template store on the given database handle.
func NewTemplateStore(db *gorm.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// Get loads a template by ID.
func (s *TemplateStore) Get(ctx context.Context, id uint) (*model.LayoutTemplate, error) {
	var template model.LayoutTemplate
	err := s.db.WithContext(ctx).First(&template, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// List returns all templates.
func (s *TemplateStore) List(ctx context.Context) ([]model.LayoutTemplate, error) {
	var templates []model.LayoutTemplate
	if err := s.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// FindForPreferences picks the template best matching a session's room
// type and style: exact match first, then room type, then style, then any.
func (s *TemplateStore) FindForPreferences(ctx context.Context, roomType, style string) (*model.LayoutTemplate, error) {
	var template model.LayoutTemplate

	attempts := []*gorm.DB{
		s.db.WithContext(ctx).Where("room_type = ? AND style = ?", roomType, style),
		s.db.WithContext(ctx).Where("room_type = ?", roomType),
		s.db.WithContext(ctx).Where("style = ?", style),
		s.db.WithContext(ctx),
	}

	for _, attempt := range attempts {
		err := attempt.Order("id").First(&template).Error
		if err == nil {
			return &template, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}
