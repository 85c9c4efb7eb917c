package response

import (
	"time"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

// BakerySummary is a bakery without its baked goods, as nested in a BakedGood.
type BakerySummary struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Delightful donuts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Bakery struct {
	BakerySummary
	BakedGoods []BakedGoodSummary `json:"baked_goods"`
}

func NewBakerySummary(b domain.Bakery) BakerySummary {
	return BakerySummary{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBakery(b domain.Bakery) Bakery {
	goods := make([]BakedGoodSummary, len(b.BakedGoods))
	for i, g := range b.BakedGoods {
		goods[i] = NewBakedGoodSummary(g)
	}

	return Bakery{
		BakerySummary: NewBakerySummary(b),
		BakedGoods:    goods,
	}
}

func NewBakeries(bakeries []domain.Bakery) []Bakery {
	out := make([]Bakery, len(bakeries))
	for i, b := range bakeries {
		out[i] = NewBakery(b)
	}

	return out
}
