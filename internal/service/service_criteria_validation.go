// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/internal/validators"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// CriteriaValidationService rejects malformed input before it reaches the
// wrapped [CriteriaService]. Ids that are not UUIDs cannot exist, so they
// are reported as not found.
type CriteriaValidationService struct {
	inner     CriteriaService
	validator validators.Validator
}

func NewCriteriaValidationService() CriteriaServiceWrapper {
	return &CriteriaValidationService{
		validator: validators.NewCriteriaValidator(),
	}
}

func (v *CriteriaValidationService) Get(ctx context.Context, userID int64, viewName string) (models.CriteriaRecord, error) {
	if userID <= 0 {
		return models.CriteriaRecord{}, validators.ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, viewName); err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("error during view name validation: %w", err)
	}

	return v.inner.Get(ctx, userID, viewName)
}

func (v *CriteriaValidationService) Create(ctx context.Context, userID int64, rec models.CriteriaRecord) (models.CriteriaRecord, error) {
	if userID <= 0 {
		return models.CriteriaRecord{}, validators.ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, rec, validators.FieldViewName, validators.FieldCriteria); err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("error during criteria validation before saving: %w", err)
	}

	return v.inner.Create(ctx, userID, rec)
}

func (v *CriteriaValidationService) Update(ctx context.Context, userID int64, id string, rec models.CriteriaRecord) (models.CriteriaRecord, error) {
	if userID <= 0 {
		return models.CriteriaRecord{}, validators.ErrInvalidUserID
	}
	if !utils.IsUUID(id) {
		return models.CriteriaRecord{}, store.ErrCriteriaNotFound
	}
	if err := v.validator.Validate(ctx, rec, validators.FieldViewName, validators.FieldCriteria); err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("error during criteria validation before update: %w", err)
	}

	return v.inner.Update(ctx, userID, id, rec)
}

func (v *CriteriaValidationService) Delete(ctx context.Context, userID int64, id string) error {
	if userID <= 0 {
		return validators.ErrInvalidUserID
	}
	if !utils.IsUUID(id) {
		return store.ErrCriteriaNotFound
	}

	return v.inner.Delete(ctx, userID, id)
}

func (v *CriteriaValidationService) Wrap(wrapped CriteriaService) CriteriaService {
	v.inner = wrapped
	return v
}
