package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type BakedGood struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;uniqueIndex"`
	Price     float64 `gorm:"not null"`
	BakeryID  uint    `gorm:"not null;index"`
	Bakery    *Bakery `gorm:"foreignKey:BakeryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BakedGoodDAO struct {
	db *gorm.DB
}

func NewBakedGoodDAO(db *gorm.DB) *BakedGoodDAO {
	return &BakedGoodDAO{
		db: db,
	}
}

// Insert stores good. A name taken by a concurrent writer between the
// caller's check and this insert is caught by the unique index.
func (d *BakedGoodDAO) Insert(ctx context.Context, good BakedGood) (BakedGood, error) {
	result := d.db.WithContext(ctx).Omit("Bakery").Create(&good)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return BakedGood{}, ErrBakedGoodNameExists
		}
		if isForeignKeyViolation(result.Error) {
			return BakedGood{}, ErrBakeryNotFound
		}

		return BakedGood{}, result.Error
	}

	return good, nil
}

func (d *BakedGoodDAO) FindByID(ctx context.Context, id uint) (BakedGood, error) {
	var good BakedGood

	result := d.db.WithContext(ctx).Preload("Bakery").First(&good, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BakedGood{}, ErrBakedGoodNotFound
		}

		return BakedGood{}, result.Error
	}

	return good, nil
}

func (d *BakedGoodDAO) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&BakedGood{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *BakedGoodDAO) FindAll(ctx context.Context) ([]BakedGood, error) {
	return d.find(ctx, "id")
}

// FindAllByPrice orders ascending by price; equal prices keep insertion order.
func (d *BakedGoodDAO) FindAllByPrice(ctx context.Context) ([]BakedGood, error) {
	return d.find(ctx, "price ASC, id ASC")
}

// FindMostExpensive returns the highest-priced good. Ties go to the lowest id.
func (d *BakedGoodDAO) FindMostExpensive(ctx context.Context) (BakedGood, error) {
	var good BakedGood

	result := d.db.WithContext(ctx).Preload("Bakery").Order("price DESC, id ASC").Limit(1).Take(&good)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BakedGood{}, ErrBakedGoodNotFound
		}

		return BakedGood{}, result.Error
	}

	return good, nil
}

func (d *BakedGoodDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&BakedGood{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBakedGoodNotFound
	}

	return nil
}

func (d *BakedGoodDAO) find(ctx context.Context, order string) ([]BakedGood, error) {
	var goods []BakedGood

	result := d.db.WithContext(ctx).Preload("Bakery").Order(order).Find(&goods)
	if result.Error != nil {
		return nil, result.Error
	}

	return goods, nil
}
