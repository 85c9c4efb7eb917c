package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

type mockBakeryRepository struct {
	mock.Mock
}

func (m *mockBakeryRepository) FindAll(ctx context.Context) ([]domain.Bakery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bakery), args.Error(1)
}

func (m *mockBakeryRepository) FindByID(ctx context.Context, id uint) (domain.Bakery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Bakery), args.Error(1)
}

func (m *mockBakeryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBakeryRepository) UpdateName(ctx context.Context, id uint, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *mockBakeryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockBakedGoodRepository struct {
	mock.Mock
}

func (m *mockBakedGoodRepository) Create(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error) {
	args := m.Called(ctx, good)
	return args.Get(0).(domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockBakedGoodRepository) FindAll(ctx context.Context) ([]domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodRepository) FindAllByPrice(ctx context.Context) ([]domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodRepository) FindMostExpensive(ctx context.Context) (domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
