// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// IDGenerator issues ids for new records.
type IDGenerator interface {
	Generate() string
}

type criteriaService struct {
	repository store.CriteriaRepository
	ids        IDGenerator
	logger     *logger.Logger
}

// NewCriteriaService returns the repository-backed [CriteriaService]. It
// assumes its input was validated; wrap it with
// [NewCriteriaValidationService] when it faces the network.
func NewCriteriaService(repository store.CriteriaRepository, logger *logger.Logger) CriteriaService {
	return &criteriaService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (s *criteriaService) Get(ctx context.Context, userID int64, viewName string) (models.CriteriaRecord, error) {
	found, err := s.repository.FindByView(ctx, userID, viewName)
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("get criteria: %w", err)
	}

	return found.Record(), nil
}

func (s *criteriaService) Create(ctx context.Context, userID int64, rec models.CriteriaRecord) (models.CriteriaRecord, error) {
	saved, err := s.repository.Upsert(ctx, models.StoredCriteria{
		ID:       s.ids.Generate(),
		UserID:   userID,
		ViewName: rec.ViewName,
		Criteria: rec.Criteria,
	})
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("create criteria: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", userID).
		Str("view", saved.ViewName).
		Str("id", saved.ID).
		Msg("criteria saved")

	return saved.Record(), nil
}

// Update replaces the criteria of an existing record. The record must
// belong to the user and be stored under rec.ViewName.
func (s *criteriaService) Update(ctx context.Context, userID int64, id string, rec models.CriteriaRecord) (models.CriteriaRecord, error) {
	existing, err := s.repository.FindByID(ctx, userID, id)
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("update criteria: %w", err)
	}
	if existing.ViewName != rec.ViewName {
		return models.CriteriaRecord{}, fmt.Errorf("%w: stored %q, got %q", ErrViewMismatch, existing.ViewName, rec.ViewName)
	}

	updated, err := s.repository.Update(ctx, models.StoredCriteria{
		ID:       id,
		UserID:   userID,
		ViewName: rec.ViewName,
		Criteria: rec.Criteria,
	})
	if err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("update criteria: %w", err)
	}

	return updated.Record(), nil
}

func (s *criteriaService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete criteria: %w", err)
	}

	return nil
}
