package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/bakery-api/internal/domain"
	"github.com/vietanh2810/bakery-api/internal/repository/dao"
)

var (
	ErrBakedGoodNotFound   = dao.ErrBakedGoodNotFound
	ErrBakedGoodNameExists = dao.ErrBakedGoodNameExists
)

type BakedGoodDAO interface {
	Insert(ctx context.Context, good dao.BakedGood) (dao.BakedGood, error)
	FindByID(ctx context.Context, id uint) (dao.BakedGood, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]dao.BakedGood, error)
	FindAllByPrice(ctx context.Context) ([]dao.BakedGood, error)
	FindMostExpensive(ctx context.Context) (dao.BakedGood, error)
	Delete(ctx context.Context, id uint) error
}

type BakedGoodRepository struct {
	dao BakedGoodDAO
}

func NewBakedGoodRepository(dao BakedGoodDAO) *BakedGoodRepository {
	return &BakedGoodRepository{
		dao: dao,
	}
}

func (r *BakedGoodRepository) Create(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error) {
	created, err := r.dao.Insert(ctx, dao.BakedGood{
		Name:     good.Name,
		Price:    good.Price,
		BakeryID: good.BakeryID,
	})
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return bakedGoodDaoToDomain(created), nil
}

func (r *BakedGoodRepository) FindByID(ctx context.Context, id uint) (domain.BakedGood, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return bakedGoodDaoToDomain(found), nil
}

func (r *BakedGoodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ok, err := r.dao.ExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByName -> %w", err)
	}

	return ok, nil
}

func (r *BakedGoodRepository) FindAll(ctx context.Context) ([]domain.BakedGood, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return bakedGoodsDaoToDomain(found), nil
}

func (r *BakedGoodRepository) FindAllByPrice(ctx context.Context) ([]domain.BakedGood, error) {
	found, err := r.dao.FindAllByPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByPrice -> %w", err)
	}

	return bakedGoodsDaoToDomain(found), nil
}

func (r *BakedGoodRepository) FindMostExpensive(ctx context.Context) (domain.BakedGood, error) {
	found, err := r.dao.FindMostExpensive(ctx)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("r.dao.FindMostExpensive -> %w", err)
	}

	return bakedGoodDaoToDomain(found), nil
}

func (r *BakedGoodRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func bakedGoodDaoToDomain(g dao.BakedGood) domain.BakedGood {
	good := domain.BakedGood{
		ID:        g.ID,
		Name:      g.Name,
		Price:     g.Price,
		BakeryID:  g.BakeryID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}

	// Only the bakery's own columns are copied so the two sides never nest
	// into each other.
	if g.Bakery != nil {
		good.Bakery = &domain.Bakery{
			ID:        g.Bakery.ID,
			Name:      g.Bakery.Name,
			CreatedAt: g.Bakery.CreatedAt,
			UpdatedAt: g.Bakery.UpdatedAt,
		}
	}

	return good
}

func bakedGoodsDaoToDomain(found []dao.BakedGood) []domain.BakedGood {
	goods := make([]domain.BakedGood, len(found))
	for i, g := range found {
		goods[i] = bakedGoodDaoToDomain(g)
	}

	return goods
}
