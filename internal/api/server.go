package api

import (
	"context"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/bakery-api/docs"
	v1 "github.com/vietanh2810/bakery-api/internal/api/handler/v1"
	"github.com/vietanh2810/bakery-api/internal/api/middleware"
	"github.com/vietanh2810/bakery-api/internal/config"
	"github.com/vietanh2810/bakery-api/internal/repository"
	"github.com/vietanh2810/bakery-api/internal/repository/dao"
	"github.com/vietanh2810/bakery-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	bakeryHandler := s.initBakeryHandler(db)
	bakedGoodHandler := s.initBakedGoodHandler(db)
	healthHandler := v1.NewHealthHandler(gormPinger{db: db})
	s.MountHandlers(bakeryHandler, bakedGoodHandler, healthHandler)

	return s
}

func (s *Server) initBakeryHandler(db *gorm.DB) *v1.BakeryHandler {
	bakeryDAO := dao.NewBakeryDAO(db)
	repo := repository.NewBakeryRepository(bakeryDAO)
	svc := service.NewBakeryService(repo)
	handler := v1.NewBakeryHandler(svc)

	return handler
}

func (s *Server) initBakedGoodHandler(db *gorm.DB) *v1.BakedGoodHandler {
	repo := repository.NewBakedGoodRepository(dao.NewBakedGoodDAO(db))
	bakeryRepo := repository.NewBakeryRepository(dao.NewBakeryDAO(db))
	svc := service.NewBakedGoodService(repo, bakeryRepo)
	handler := v1.NewBakedGoodHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Recovery turns a handler panic into a 500 instead of a dropped connection.
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(middleware.Metrics())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(bakeryHandler *v1.BakeryHandler, bakedGoodHandler *v1.BakedGoodHandler, healthHandler *v1.HealthHandler) {
	s.Router.GET("/", v1.HandleHome)

	bakeries := s.Router.Group("/bakeries")
	{
		bakeries.GET("", bakeryHandler.HandleGetBakeries)
		bakeries.GET("/:bakeryID", bakeryHandler.HandleGetBakery)
		bakeries.PATCH("/:bakeryID", bakeryHandler.HandleUpdateBakery)
		bakeries.DELETE("/:bakeryID", bakeryHandler.HandleDeleteBakery)
	}

	bakedGoods := s.Router.Group("/baked_goods")
	{
		bakedGoods.GET("", bakedGoodHandler.HandleGetBakedGoods)
		bakedGoods.POST("", bakedGoodHandler.HandleCreateBakedGood)
		bakedGoods.GET("/by_price", bakedGoodHandler.HandleGetBakedGoodsByPrice)
		bakedGoods.GET("/most_expensive", bakedGoodHandler.HandleGetMostExpensiveBakedGood)
		bakedGoods.DELETE("/:bakedGoodID", bakedGoodHandler.HandleDeleteBakedGood)
	}

	s.Router.GET("/healthz", healthHandler.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("p.db.DB -> %w", err)
	}

	return sqlDB.PingContext(ctx)
}
