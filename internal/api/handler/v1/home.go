package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/bakery-api/internal/api/handler/v1/response"
)

const homePage = "<h1>Bakery GET-POST-PATCH-DELETE API</h1>"

const pingTimeout = 2 * time.Second

// HandleHome godoc
// @Summary      Landing page
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func HandleHome(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Description  Reports whether the database answers a ping.
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  response.Err
// @Router       /healthz [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(pingCtx); err != nil {
		err = fmt.Errorf("HandleHealthcheck -> h.db.PingContext -> %w", err)
		response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
