package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Bakery struct {
	ID         uint        `gorm:"primaryKey"`
	Name       string      `gorm:"not null"`
	BakedGoods []BakedGood `gorm:"foreignKey:BakeryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BakeryDAO struct {
	db *gorm.DB
}

func NewBakeryDAO(db *gorm.DB) *BakeryDAO {
	return &BakeryDAO{
		db: db,
	}
}

func (d *BakeryDAO) Insert(ctx context.Context, bakery Bakery) (Bakery, error) {
	result := d.db.WithContext(ctx).Create(&bakery)
	if result.Error != nil {
		return Bakery{}, result.Error
	}

	return bakery, nil
}

func (d *BakeryDAO) FindAll(ctx context.Context) ([]Bakery, error) {
	var bakeries []Bakery

	result := d.db.WithContext(ctx).
		Preload("BakedGoods", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&bakeries)
	if result.Error != nil {
		return nil, result.Error
	}

	return bakeries, nil
}

func (d *BakeryDAO) FindByID(ctx context.Context, id uint) (Bakery, error) {
	var bakery Bakery

	result := d.db.WithContext(ctx).
		Preload("BakedGoods", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&bakery, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Bakery{}, ErrBakeryNotFound
		}

		return Bakery{}, result.Error
	}

	return bakery, nil
}

func (d *BakeryDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Bakery{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// UpdateName sets the name column only, leaving every other field as stored.
func (d *BakeryDAO) UpdateName(ctx context.Context, id uint, name string) error {
	result := d.db.WithContext(ctx).Model(&Bakery{ID: id}).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBakeryNotFound
	}

	return nil
}

// Delete removes the bakery. Baked goods reference it with ON DELETE RESTRICT,
// so a bakery that still owns goods is refused with ErrBakeryHasBakedGoods.
func (d *BakeryDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&BakedGood{}).Where("bakery_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrBakeryHasBakedGoods
		}

		result := tx.Delete(&Bakery{}, id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return ErrBakeryHasBakedGoods
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBakeryNotFound
		}

		return nil
	})
}
