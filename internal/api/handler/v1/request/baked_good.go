package request

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

var (
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidBakeryID = errors.New("id must be a positive integer")
)

// CreateBakedGoodRequest accepts form or JSON input. Numbers are kept as
// json.Number so a missing field can be told apart from a malformed one.
type CreateBakedGoodRequest struct {
	Name     string      `form:"name" json:"name" example:"Chocolate dipped donut"`
	Price    json.Number `form:"price" json:"price" swaggertype:"number" example:"2.75"`
	BakeryID json.Number `form:"id" json:"id" swaggertype:"integer" example:"1"`
}

// Validate checks presence only. A price of 0 is present.
func (req *CreateBakedGoodRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Price, validation.Required),
		validation.Field(&req.BakeryID, validation.Required),
	)
}

// ToDomain parses the numeric fields.
func (req *CreateBakedGoodRequest) ToDomain() (domain.BakedGood, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(req.Price.String()), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.BakedGood{}, ErrInvalidPrice
	}

	bakeryID, err := strconv.ParseUint(strings.TrimSpace(req.BakeryID.String()), 10, 64)
	if err != nil || bakeryID == 0 {
		return domain.BakedGood{}, ErrInvalidBakeryID
	}

	return domain.BakedGood{
		Name:     req.Name,
		Price:    price,
		BakeryID: uint(bakeryID),
	}, nil
}
