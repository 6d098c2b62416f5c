// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-filter-keeper/models"
)

// Field names accepted by [CriteriaValidator.Validate]. With no fields the
// validator checks everything the value carries.
const (
	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldViewName = "view_name"
	FieldCriteria = "criteria"
)

// MaxCriteriaSize bounds the encoded size of one criteria payload.
const MaxCriteriaSize = 64 << 10

var viewNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)

// CriteriaValidator checks view names, record ids and criteria payloads.
type CriteriaValidator struct{}

func NewCriteriaValidator() Validator {
	return &CriteriaValidator{}
}

// Validate accepts a view name (string), a [models.CriteriaRecord] or a
// [models.StoredCriteria], by value or pointer.
func (v *CriteriaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return ValidateViewName(value)

	case models.CriteriaRecord:
		return v.validateRecord(value, fields...)
	case *models.CriteriaRecord:
		return v.validateRecord(*value, fields...)

	case models.StoredCriteria:
		return v.validateStored(value, fields...)
	case *models.StoredCriteria:
		return v.validateStored(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CriteriaValidator) validateRecord(rec models.CriteriaRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldViewName, FieldCriteria}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldID:
			err = validateRecordID(rec.ID)
		case FieldViewName:
			err = ValidateViewName(rec.ViewName)
		case FieldCriteria:
			err = validateCriteria(rec.Criteria)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *CriteriaValidator) validateStored(s models.StoredCriteria, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldViewName, FieldCriteria}
	}

	for _, field := range fields {
		if field == FieldUserID {
			if s.UserID <= 0 {
				return ErrInvalidUserID
			}
			continue
		}
		if err := v.validateRecord(s.Record(), field); err != nil {
			return err
		}
	}

	return nil
}

// ValidateViewName reports whether name is 1-128 characters of
// [A-Za-z0-9_.-].
func ValidateViewName(name string) error {
	if !viewNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidViewName, name)
	}
	return nil
}

func validateRecordID(id string) error {
	if id == "" || len(id) > 64 {
		return ErrInvalidRecordID
	}
	return nil
}

func validateCriteria(c models.Criteria) error {
	if c.IsEmpty() {
		return ErrEmptyCriteria
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCriteriaNotObject, err)
	}
	if len(raw) > MaxCriteriaSize {
		return fmt.Errorf("%w: %d bytes", ErrCriteriaTooLarge, len(raw))
	}

	return nil
}
