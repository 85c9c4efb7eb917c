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
	msgInvalidBakedGoodID  = "Invalid baked good ID."
	msgRequiredFields      = "Name, price, and bakery_id are required."
	msgBakedGoodNameExists = "A baked good with this name already exists."
	msgBakedGoodNotFound   = "Baked good not found."
	msgNoBakedGoods        = "No baked goods found."
	msgBakedGoodDeleted    = "Baked good deleted successfully."
)

type BakedGoodService interface {
	CreateBakedGood(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error)
	GetBakedGoods(ctx context.Context) ([]domain.BakedGood, error)
	GetBakedGoodsByPrice(ctx context.Context) ([]domain.BakedGood, error)
	GetMostExpensiveBakedGood(ctx context.Context) (domain.BakedGood, error)
	DeleteBakedGood(ctx context.Context, id uint) error
}

type BakedGoodHandler struct {
	svc BakedGoodService
}

func NewBakedGoodHandler(svc BakedGoodService) *BakedGoodHandler {
	return &BakedGoodHandler{
		svc: svc,
	}
}

// HandleCreateBakedGood godoc
// @Summary      Create a baked good
// @Description  The bakery is given by the "id" field. Names are unique.
// @Tags         baked_goods
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        input  body      request.CreateBakedGoodRequest  true  "Baked good"
// @Success      201    {object}  response.CreatedBakedGood
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /baked_goods [post]
func (h *BakedGoodHandler) HandleCreateBakedGood(ctx *gin.Context) {
	var req request.CreateBakedGoodRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput(msgRequiredFields))
		return
	}

	good, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateBakedGood(ctx.Request.Context(), good)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBakedGoodNameExists):
			response.RenderErr(ctx, response.ErrInvalidInput(msgBakedGoodNameExists))
		case errors.Is(err, service.ErrBakeryNotFound):
			response.RenderErr(ctx, response.ErrInvalidInput(msgBakeryNotFound))
		default:
			err = fmt.Errorf("HandleCreateBakedGood -> h.svc.CreateBakedGood -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCreatedBakedGood(created))
}

// HandleGetBakedGoods godoc
// @Summary      List baked goods
// @Tags         baked_goods
// @Produce      json
// @Success      200  {array}   response.BakedGood
// @Failure      500  {object}  response.Err
// @Router       /baked_goods [get]
func (h *BakedGoodHandler) HandleGetBakedGoods(ctx *gin.Context) {
	goods, err := h.svc.GetBakedGoods(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetBakedGoods -> h.svc.GetBakedGoods -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakedGoods(goods))
}

// HandleGetBakedGoodsByPrice godoc
// @Summary      List baked goods by price
// @Description  Ascending by price. Equal prices are ordered by ID.
// @Tags         baked_goods
// @Produce      json
// @Success      200  {array}   response.BakedGood
// @Failure      500  {object}  response.Err
// @Router       /baked_goods/by_price [get]
func (h *BakedGoodHandler) HandleGetBakedGoodsByPrice(ctx *gin.Context) {
	goods, err := h.svc.GetBakedGoodsByPrice(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetBakedGoodsByPrice -> h.svc.GetBakedGoodsByPrice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakedGoods(goods))
}

// HandleGetMostExpensiveBakedGood godoc
// @Summary      Get the most expensive baked good
// @Description  When several goods share the top price the one with the lowest ID is returned.
// @Tags         baked_goods
// @Produce      json
// @Success      200  {object}  response.BakedGood
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /baked_goods/most_expensive [get]
func (h *BakedGoodHandler) HandleGetMostExpensiveBakedGood(ctx *gin.Context) {
	good, err := h.svc.GetMostExpensiveBakedGood(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBakedGoodNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgNoBakedGoods))
			return
		}

		err = fmt.Errorf("HandleGetMostExpensiveBakedGood -> h.svc.GetMostExpensiveBakedGood -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewBakedGood(good))
}

// HandleDeleteBakedGood godoc
// @Summary      Delete a baked good
// @Tags         baked_goods
// @Produce      json
// @Param        bakedGoodID  path      int  true  "Baked good ID"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /baked_goods/{bakedGoodID} [delete]
func (h *BakedGoodHandler) HandleDeleteBakedGood(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bakedGoodID")
	if err != nil {
		response.RenderErr(ctx, response.ErrInvalidInput(msgInvalidBakedGoodID))
		return
	}

	err = h.svc.DeleteBakedGood(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBakedGoodNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgBakedGoodNotFound))
			return
		}

		err = fmt.Errorf("HandleDeleteBakedGood -> h.svc.DeleteBakedGood -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: msgBakedGoodDeleted})
}
