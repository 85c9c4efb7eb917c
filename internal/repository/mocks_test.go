package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/bakery-api/internal/repository/dao"
)

type mockBakeryDAO struct {
	mock.Mock
}

func (m *mockBakeryDAO) Insert(ctx context.Context, bakery dao.Bakery) (dao.Bakery, error) {
	args := m.Called(ctx, bakery)
	return args.Get(0).(dao.Bakery), args.Error(1)
}

func (m *mockBakeryDAO) FindAll(ctx context.Context) ([]dao.Bakery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Bakery), args.Error(1)
}

func (m *mockBakeryDAO) FindByID(ctx context.Context, id uint) (dao.Bakery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.Bakery), args.Error(1)
}

func (m *mockBakeryDAO) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBakeryDAO) UpdateName(ctx context.Context, id uint, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *mockBakeryDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockBakedGoodDAO struct {
	mock.Mock
}

func (m *mockBakedGoodDAO) Insert(ctx context.Context, good dao.BakedGood) (dao.BakedGood, error) {
	args := m.Called(ctx, good)
	return args.Get(0).(dao.BakedGood), args.Error(1)
}

func (m *mockBakedGoodDAO) FindByID(ctx context.Context, id uint) (dao.BakedGood, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dao.BakedGood), args.Error(1)
}

func (m *mockBakedGoodDAO) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockBakedGoodDAO) FindAll(ctx context.Context) ([]dao.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.BakedGood), args.Error(1)
}

func (m *mockBakedGoodDAO) FindAllByPrice(ctx context.Context) ([]dao.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.BakedGood), args.Error(1)
}

func (m *mockBakedGoodDAO) FindMostExpensive(ctx context.Context) (dao.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).(dao.BakedGood), args.Error(1)
}

func (m *mockBakedGoodDAO) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
