package domain

import "time"

type BakedGood struct {
	ID        uint
	Name      string
	Price     float64
	BakeryID  uint
	Bakery    *Bakery // Owning bakery, populated on reads only.
	CreatedAt time.Time
	UpdatedAt time.Time
}
