package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

// UpdateBakeryRequest is a partial update. Absent or blank fields are left
// unchanged.
type UpdateBakeryRequest struct {
	Name *string `form:"name" json:"name" example:"Delightful donuts"`
}

func (req *UpdateBakeryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(0, 255)),
	)
}

func (req *UpdateBakeryRequest) ToDomain() domain.BakeryUpdate {
	var update domain.BakeryUpdate

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			update.Name = &name
		}
	}

	return update
}
