package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/bakery-api/internal/domain"
	"github.com/vietanh2810/bakery-api/internal/repository"
)

var (
	ErrBakeryNotFound      = repository.ErrBakeryNotFound
	ErrBakeryHasBakedGoods = repository.ErrBakeryHasBakedGoods
)

type BakeryRepository interface {
	FindAll(ctx context.Context) ([]domain.Bakery, error)
	FindByID(ctx context.Context, id uint) (domain.Bakery, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type BakeryService struct {
	repo BakeryRepository
}

func NewBakeryService(repo BakeryRepository) *BakeryService {
	return &BakeryService{
		repo: repo,
	}
}

func (s *BakeryService) GetBakeries(ctx context.Context) ([]domain.Bakery, error) {
	bakeries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bakeries, nil
}

func (s *BakeryService) GetBakery(ctx context.Context, id uint) (domain.Bakery, error) {
	bakery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bakery{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return bakery, nil
}

// UpdateBakery applies the non-nil fields of update and returns the stored
// bakery. An update with no fields still succeeds.
func (s *BakeryService) UpdateBakery(ctx context.Context, id uint, update domain.BakeryUpdate) (domain.Bakery, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return domain.Bakery{}, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if !ok {
		return domain.Bakery{}, ErrBakeryNotFound
	}

	if update.Name != nil {
		if err = s.repo.UpdateName(ctx, id, *update.Name); err != nil {
			return domain.Bakery{}, fmt.Errorf("s.repo.UpdateName -> %w", err)
		}
	}

	bakery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Bakery{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return bakery, nil
}

func (s *BakeryService) DeleteBakery(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
