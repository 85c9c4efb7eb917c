package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

func TestBakeryService_GetBakery_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mockBakeryRepository{}
	repo.On("FindByID", ctx, uint(3)).Return(domain.Bakery{}, ErrBakeryNotFound)

	_, err := NewBakeryService(repo).GetBakery(ctx, 3)
	assert.ErrorIs(t, err, ErrBakeryNotFound)
}

func TestBakeryService_GetBakeries(t *testing.T) {
	ctx := context.Background()
	repo := &mockBakeryRepository{}
	repo.On("FindAll", ctx).Return([]domain.Bakery{{ID: 1}, {ID: 2}}, nil)

	bakeries, err := NewBakeryService(repo).GetBakeries(ctx)
	require.NoError(t, err)
	assert.Len(t, bakeries, 2)
}

func TestBakeryService_UpdateBakery_Name(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"
	repo := &mockBakeryRepository{}
	repo.On("Exists", ctx, uint(1)).Return(true, nil)
	repo.On("UpdateName", ctx, uint(1), "Renamed").Return(nil)
	repo.On("FindByID", ctx, uint(1)).Return(domain.Bakery{ID: 1, Name: "Renamed"}, nil)

	bakery, err := NewBakeryService(repo).UpdateBakery(ctx, 1, domain.BakeryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", bakery.Name)
	repo.AssertExpectations(t)
}

func TestBakeryService_UpdateBakery_NoFieldsLeavesNameUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := &mockBakeryRepository{}
	repo.On("Exists", ctx, uint(1)).Return(true, nil)
	repo.On("FindByID", ctx, uint(1)).Return(domain.Bakery{ID: 1, Name: "Original"}, nil)

	bakery, err := NewBakeryService(repo).UpdateBakery(ctx, 1, domain.BakeryUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Original", bakery.Name)
	repo.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
}

func TestBakeryService_UpdateBakery_NotFound(t *testing.T) {
	ctx := context.Background()
	name := "Renamed"
	repo := &mockBakeryRepository{}
	repo.On("Exists", ctx, uint(8)).Return(false, nil)

	_, err := NewBakeryService(repo).UpdateBakery(ctx, 8, domain.BakeryUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrBakeryNotFound)
	repo.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything, mock.Anything)
}

func TestBakeryService_UpdateBakery_RepositoryError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	repo := &mockBakeryRepository{}
	repo.On("Exists", ctx, uint(1)).Return(false, boom)

	_, err := NewBakeryService(repo).UpdateBakery(ctx, 1, domain.BakeryUpdate{})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBakeryNotFound)
}

func TestBakeryService_DeleteBakery(t *testing.T) {
	ctx := context.Background()
	repo := &mockBakeryRepository{}
	repo.On("Delete", ctx, uint(1)).Return(nil)
	repo.On("Delete", ctx, uint(2)).Return(ErrBakeryHasBakedGoods)
	repo.On("Delete", ctx, uint(3)).Return(ErrBakeryNotFound)

	svc := NewBakeryService(repo)

	assert.NoError(t, svc.DeleteBakery(ctx, 1))
	assert.ErrorIs(t, svc.DeleteBakery(ctx, 2), ErrBakeryHasBakedGoods)
	assert.ErrorIs(t, svc.DeleteBakery(ctx, 3), ErrBakeryNotFound)
}
