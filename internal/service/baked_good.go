package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/bakery-api/internal/domain"
	"github.com/vietanh2810/bakery-api/internal/repository"
)

var (
	ErrBakedGoodNotFound   = repository.ErrBakedGoodNotFound
	ErrBakedGoodNameExists = repository.ErrBakedGoodNameExists
)

type BakedGoodRepository interface {
	Create(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]domain.BakedGood, error)
	FindAllByPrice(ctx context.Context) ([]domain.BakedGood, error)
	FindMostExpensive(ctx context.Context) (domain.BakedGood, error)
	Delete(ctx context.Context, id uint) error
}

type BakedGoodService struct {
	repo       BakedGoodRepository
	bakeryRepo BakeryRepository
}

func NewBakedGoodService(repo BakedGoodRepository, bakeryRepo BakeryRepository) *BakedGoodService {
	return &BakedGoodService{
		repo:       repo,
		bakeryRepo: bakeryRepo,
	}
}

// CreateBakedGood rejects a name already in use and a bakery that does not
// exist. The name check is repeated by the unique index at insert time.
func (s *BakedGoodService) CreateBakedGood(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error) {
	taken, err := s.repo.ExistsByName(ctx, good.Name)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("s.repo.ExistsByName -> %w", err)
	}
	if taken {
		return domain.BakedGood{}, ErrBakedGoodNameExists
	}

	ok, err := s.bakeryRepo.Exists(ctx, good.BakeryID)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("s.bakeryRepo.Exists -> %w", err)
	}
	if !ok {
		return domain.BakedGood{}, ErrBakeryNotFound
	}

	created, err := s.repo.Create(ctx, good)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *BakedGoodService) GetBakedGoods(ctx context.Context) ([]domain.BakedGood, error) {
	goods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return goods, nil
}

func (s *BakedGoodService) GetBakedGoodsByPrice(ctx context.Context) ([]domain.BakedGood, error) {
	goods, err := s.repo.FindAllByPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByPrice -> %w", err)
	}

	return goods, nil
}

func (s *BakedGoodService) GetMostExpensiveBakedGood(ctx context.Context) (domain.BakedGood, error) {
	good, err := s.repo.FindMostExpensive(ctx)
	if err != nil {
		return domain.BakedGood{}, fmt.Errorf("s.repo.FindMostExpensive -> %w", err)
	}

	return good, nil
}

func (s *BakedGoodService) DeleteBakedGood(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
