package domain

import "time"

type Bakery struct {
	ID         uint
	Name       string
	BakedGoods []BakedGood
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BakeryUpdate carries the fields of a partial update. A nil field is left
// unchanged.
type BakeryUpdate struct {
	Name *string
}
