// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/mock"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestCriteriaService(t *testing.T) (*criteriaService, *mock.MockCriteriaRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCriteriaRepository(ctrl)

	svc := NewCriteriaService(repo, logger.Nop()).(*criteriaService)
	svc.ids = fixedIDs("0192f0c4-0000-7000-8000-000000000001")
	return svc, repo
}

func TestCriteriaService_Get(t *testing.T) {
	svc, repo := newTestCriteriaService(t)
	ctx := context.Background()

	repo.EXPECT().FindByView(ctx, int64(7), "contacts").Return(models.StoredCriteria{
		ID: "r1", UserID: 7, ViewName: "contacts", Criteria: models.Criteria{"a": 1}, CreatedAt: time.Now(),
	}, nil)

	got, err := svc.Get(ctx, 7, "contacts")
	require.NoError(t, err)
	assert.Equal(t, models.CriteriaRecord{ID: "r1", ViewName: "contacts", Criteria: models.Criteria{"a": 1}}, got)

	repo.EXPECT().FindByView(ctx, int64(7), "orders").Return(models.StoredCriteria{}, store.ErrCriteriaNotFound)
	_, err = svc.Get(ctx, 7, "orders")
	require.ErrorIs(t, err, store.ErrCriteriaNotFound)
}

func TestCriteriaService_CreateUsesGeneratedIDAndReturnsStoredOne(t *testing.T) {
	svc, repo := newTestCriteriaService(t)
	ctx := context.Background()

	repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.StoredCriteria) (models.StoredCriteria, error) {
			assert.Equal(t, "0192f0c4-0000-7000-8000-000000000001", c.ID)
			assert.Equal(t, int64(7), c.UserID)
			assert.Equal(t, "contacts", c.ViewName)
			c.ID = "existing-id"
			return c, nil
		})

	got, err := svc.Create(ctx, 7, models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 1}})
	require.NoError(t, err)
	assert.Equal(t, "existing-id", got.ID)
}

func TestCriteriaService_Update(t *testing.T) {
	ctx := context.Background()
	rec := models.CriteriaRecord{ViewName: "contacts", Criteria: models.Criteria{"a": 2}}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestCriteriaService(t)
		gomock.InOrder(
			repo.EXPECT().FindByID(ctx, int64(7), "r1").Return(models.StoredCriteria{ID: "r1", UserID: 7, ViewName: "contacts"}, nil),
			repo.EXPECT().Update(ctx, models.StoredCriteria{ID: "r1", UserID: 7, ViewName: "contacts", Criteria: rec.Criteria}).
				Return(models.StoredCriteria{ID: "r1", UserID: 7, ViewName: "contacts", Criteria: rec.Criteria}, nil),
		)

		got, err := svc.Update(ctx, 7, "r1", rec)
		require.NoError(t, err)
		assert.Equal(t, "r1", got.ID)
	})

	t.Run("other view", func(t *testing.T) {
		svc, repo := newTestCriteriaService(t)
		repo.EXPECT().FindByID(ctx, int64(7), "r1").Return(models.StoredCriteria{ID: "r1", UserID: 7, ViewName: "orders"}, nil)

		_, err := svc.Update(ctx, 7, "r1", rec)
		require.ErrorIs(t, err, ErrViewMismatch)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newTestCriteriaService(t)
		repo.EXPECT().FindByID(ctx, int64(7), "r1").Return(models.StoredCriteria{}, store.ErrCriteriaNotFound)

		_, err := svc.Update(ctx, 7, "r1", rec)
		require.ErrorIs(t, err, store.ErrCriteriaNotFound)
	})
}

func TestCriteriaService_Delete(t *testing.T) {
	svc, repo := newTestCriteriaService(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(7), "r1").Return(nil)
	require.NoError(t, svc.Delete(ctx, 7, "r1"))

	repo.EXPECT().Delete(ctx, int64(7), "r2").Return(store.ErrCriteriaNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 7, "r2"), store.ErrCriteriaNotFound)
}
