package v1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/bakery-api/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockBakeryService struct {
	mock.Mock
}

func (m *mockBakeryService) GetBakeries(ctx context.Context) ([]domain.Bakery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bakery), args.Error(1)
}

func (m *mockBakeryService) GetBakery(ctx context.Context, id uint) (domain.Bakery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Bakery), args.Error(1)
}

func (m *mockBakeryService) UpdateBakery(ctx context.Context, id uint, update domain.BakeryUpdate) (domain.Bakery, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Bakery), args.Error(1)
}

func (m *mockBakeryService) DeleteBakery(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockBakedGoodService struct {
	mock.Mock
}

func (m *mockBakedGoodService) CreateBakedGood(ctx context.Context, good domain.BakedGood) (domain.BakedGood, error) {
	args := m.Called(ctx, good)
	return args.Get(0).(domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodService) GetBakedGoods(ctx context.Context) ([]domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodService) GetBakedGoodsByPrice(ctx context.Context) ([]domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodService) GetMostExpensiveBakedGood(ctx context.Context) (domain.BakedGood, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BakedGood), args.Error(1)
}

func (m *mockBakedGoodService) DeleteBakedGood(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPinger struct {
	err error
}

func (p mockPinger) PingContext(context.Context) error {
	return p.err
}

func newTestRouter(bakeries BakeryService, goods BakedGoodService, pinger Pinger) *gin.Engine {
	r := gin.New()

	bh := NewBakeryHandler(bakeries)
	gh := NewBakedGoodHandler(goods)
	hh := NewHealthHandler(pinger)

	r.GET("/", HandleHome)
	r.GET("/healthz", hh.HandleHealthcheck)
	r.GET("/bakeries", bh.HandleGetBakeries)
	r.GET("/bakeries/:bakeryID", bh.HandleGetBakery)
	r.PATCH("/bakeries/:bakeryID", bh.HandleUpdateBakery)
	r.DELETE("/bakeries/:bakeryID", bh.HandleDeleteBakery)
	r.GET("/baked_goods", gh.HandleGetBakedGoods)
	r.POST("/baked_goods", gh.HandleCreateBakedGood)
	r.GET("/baked_goods/by_price", gh.HandleGetBakedGoodsByPrice)
	r.GET("/baked_goods/most_expensive", gh.HandleGetMostExpensiveBakedGood)
	r.DELETE("/baked_goods/:bakedGoodID", gh.HandleDeleteBakedGood)

	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func formRequest(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
