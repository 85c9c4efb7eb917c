package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/bakery-api/internal/domain"
	"github.com/vietanh2810/bakery-api/internal/repository/dao"
)

var (
	ErrBakeryNotFound      = dao.ErrBakeryNotFound
	ErrBakeryHasBakedGoods = dao.ErrBakeryHasBakedGoods
)

type BakeryDAO interface {
	Insert(ctx context.Context, bakery dao.Bakery) (dao.Bakery, error)
	FindAll(ctx context.Context) ([]dao.Bakery, error)
	FindByID(ctx context.Context, id uint) (dao.Bakery, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type BakeryRepository struct {
	dao BakeryDAO
}

func NewBakeryRepository(dao BakeryDAO) *BakeryRepository {
	return &BakeryRepository{
		dao: dao,
	}
}

func (r *BakeryRepository) Create(ctx context.Context, bakery domain.Bakery) (domain.Bakery, error) {
	created, err := r.dao.Insert(ctx, dao.Bakery{
		Name: bakery.Name,
	})
	if err != nil {
		return domain.Bakery{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return bakeryDaoToDomain(created), nil
}

func (r *BakeryRepository) FindAll(ctx context.Context) ([]domain.Bakery, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	bakeries := make([]domain.Bakery, len(found))
	for i, b := range found {
		bakeries[i] = bakeryDaoToDomain(b)
	}

	return bakeries, nil
}

func (r *BakeryRepository) FindByID(ctx context.Context, id uint) (domain.Bakery, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Bakery{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return bakeryDaoToDomain(found), nil
}

func (r *BakeryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := r.dao.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *BakeryRepository) UpdateName(ctx context.Context, id uint, name string) error {
	if err := r.dao.UpdateName(ctx, id, name); err != nil {
		return fmt.Errorf("r.dao.UpdateName -> %w", err)
	}

	return nil
}

func (r *BakeryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func bakeryDaoToDomain(b dao.Bakery) domain.Bakery {
	bakery := domain.Bakery{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if len(b.BakedGoods) > 0 {
		bakery.BakedGoods = make([]domain.BakedGood, len(b.BakedGoods))
		for i, g := range b.BakedGoods {
			bakery.BakedGoods[i] = bakedGoodDaoToDomain(g)
		}
	}

	return bakery
}
