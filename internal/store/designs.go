package store

import (
	"context"
	"errors"

	"design-service/internal/model"

	"gorm.io/gorm"
)

// DesignStore persists design recommendations and their selections. It is
// the result sink of the engine: the engine itself never writes.
type DesignStore struct {
	db *gorm.DB
}

// NewDesignStore builds a design store on the given database handle.
func NewDesignStore(db *gorm.DB) *DesignStore {
	return &DesignStore{db: db}
}

// Save persists a design and its selections in one transaction and
// returns the design's identifier.
func (s *DesignStore) Save(ctx context.Context, design *model.DesignRecommendation) (uint, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(design).Error
	})
	if err != nil {
		return 0, err
	}
	return design.ID, nil
}

// Get loads a design with its template and selections.
func (s *DesignStore) Get(ctx context.Context, id uint) (*model.DesignRecommendation, error) {
	var design model.DesignRecommendation
	err := s.db.WithContext(ctx).
		Preload("LayoutTemplate").
		Preload("Selections").
		Preload("Selections.Product").
		Preload("Selections.Product.Category").
		First(&design, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &design, nil
}

// ListBySession returns a session's designs, newest first.
func (s *DesignStore) ListBySession(ctx context.Context, sessionID uint) ([]model.DesignRecommendation, error) {
	var designs []model.DesignRecommendation
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&designs).Error
	return designs, err
}
