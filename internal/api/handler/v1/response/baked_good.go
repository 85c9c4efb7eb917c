package response

import (
	"time"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

// BakedGoodSummary is a baked good without its bakery, as nested in a Bakery.
type BakedGoodSummary struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Chocolate dipped donut"`
	Price     float64   `json:"price" example:"2.75"`
	BakeryID  uint      `json:"bakery_id" example:"1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BakedGood struct {
	BakedGoodSummary
	Bakery *BakerySummary `json:"bakery"`
}

// CreatedBakedGood echoes the submitted fields of a new baked good.
type CreatedBakedGood struct {
	Name     string  `json:"name" example:"Chocolate dipped donut"`
	Price    float64 `json:"price" example:"2.75"`
	BakeryID uint    `json:"bakery_id" example:"1"`
}

type Message struct {
	Message string `json:"message" example:"Baked good deleted successfully."`
}

func NewBakedGoodSummary(g domain.BakedGood) BakedGoodSummary {
	return BakedGoodSummary{
		ID:        g.ID,
		Name:      g.Name,
		Price:     g.Price,
		BakeryID:  g.BakeryID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func NewBakedGood(g domain.BakedGood) BakedGood {
	good := BakedGood{
		BakedGoodSummary: NewBakedGoodSummary(g),
	}
	if g.Bakery != nil {
		bakery := NewBakerySummary(*g.Bakery)
		good.Bakery = &bakery
	}

	return good
}

func NewBakedGoods(goods []domain.BakedGood) []BakedGood {
	out := make([]BakedGood, len(goods))
	for i, g := range goods {
		out[i] = NewBakedGood(g)
	}

	return out
}

func NewCreatedBakedGood(g domain.BakedGood) CreatedBakedGood {
	return CreatedBakedGood{
		Name:     g.Name,
		Price:    g.Price,
		BakeryID: g.BakeryID,
	}
}
