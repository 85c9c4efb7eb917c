package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/bakery-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/bakery-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/bakery-api/internal/domain"
	"github.com/vietanh2810/bakery-api/internal/service"
)

const (
	msgInvalidBakeryID     = "Invalid bakery ID."
	msgBakeryNotFound      = "Bakery not found."
	msgBakeryHasBakedGoods = "Bakery still has baked goods."
	msgBakeryDeleted       = "Bakery deleted successfully."
)

type BakeryService interface {
	GetBakeries(ctx context.Context) ([]domain.Bakery, error)
	GetBakery(ctx context.Context, id uint) (domain.Bakery, error)
	UpdateBakery(ctx context.Context, id uint, update domain.BakeryUpdate) (domain.Bakery, error)
	DeleteBakery(ctx context.Context, id uint) error
}

type BakeryHandler struct {
	svc BakeryService
}

func NewBakeryHandler(svc BakeryService) *BakeryHandler {
	return &BakeryHandler{
		svc: svc,
	}
}

// HandleGetBakeries godoc
// @Summary      List bakeries
// @Tags         bakeries
// @Produce      json
// @Success      200  {array}   response.Bakery
// @Failure      500  {object}  response.Err
// @Router       /bakeries [get]
func (h *BakeryHandler) HandleGetBakeries(ctx *gin.Context) {
	bakeries, err := h.svc.GetBakeries(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetBakeries -> h.svc.GetBakeries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakeries(bakeries))
}

// HandleGetBakery godoc
// @Summary      Get a bakery
// @Tags         bakeries
// @Produce      json
// @Param        bakeryID  path      int  true  "Bakery ID"
// @Success      200  {object}  response.Bakery
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bakeries/{bakeryID} [get]
func (h *BakeryHandler) HandleGetBakery(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bakeryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput(msgInvalidBakeryID))
		return
	}

	bakery, err := h.svc.GetBakery(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBakeryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgBakeryNotFound))
			return
		}

		err = fmt.Errorf("HandleGetBakery -> h.svc.GetBakery -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakery(bakery))
}

// HandleUpdateBakery godoc
// @Summary      Update a bakery
// @Description  Partial update. Fields that are absent or blank are left unchanged.
// @Tags         bakeries
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        bakeryID  path      int                          true  "Bakery ID"
// @Param        input     body      request.UpdateBakeryRequest  true  "Fields to change"
// @Success      200  {object}  response.Bakery
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bakeries/{bakeryID} [patch]
func (h *BakeryHandler) HandleUpdateBakery(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bakeryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput(msgInvalidBakeryID))
		return
	}

	var req request.UpdateBakeryRequest
	if err = ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bakery, err := h.svc.UpdateBakery(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrBakeryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgBakeryNotFound))
			return
		}

		err = fmt.Errorf("HandleUpdateBakery -> h.svc.UpdateBakery -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakery(bakery))
}

// HandleDeleteBakery godoc
// @Summary      Delete a bakery
// @Description  Refused with 409 while the bakery still owns baked goods.
// @Tags         bakeries
// @Produce      json
// @Param        bakeryID  path      int  true  "Bakery ID"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bakeries/{bakeryID} [delete]
func (h *BakeryHandler) HandleDeleteBakery(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bakeryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput(msgInvalidBakeryID))
		return
	}

	err = h.svc.DeleteBakery(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBakeryNotFound):
			response.RenderErr(ctx, response.ErrNotFound(msgBakeryNotFound))
		case errors.Is(err, service.ErrBakeryHasBakedGoods):
			response.RenderErr(ctx, response.ErrConflict(msgBakeryHasBakedGoods))
		default:
			err = fmt.Errorf("HandleDeleteBakery -> h.svc.DeleteBakery -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: msgBakeryDeleted})
}
