// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-filter-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=CriteriaServiceWrapper

// CriteriaService is the server side of the remote store: one criteria
// record per (user, view).
type CriteriaService interface {
	Get(ctx context.Context, userID int64, viewName string) (models.CriteriaRecord, error)

	// Create stores rec for the user. A record that already exists for the
	// view is overwritten and keeps its id.
	Create(ctx context.Context, userID int64, rec models.CriteriaRecord) (models.CriteriaRecord, error)

	Update(ctx context.Context, userID int64, id string, rec models.CriteriaRecord) (models.CriteriaRecord, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CriteriaServiceWrapper defines middleware composition for CriteriaService.
// Implementations wrap an existing CriteriaService to add behavior such as
// validation.
type CriteriaServiceWrapper interface {
	Wrap(CriteriaService) CriteriaService
}
