package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/roguecreek/quartermaster/internal/api/handler/v1"
	"github.com/roguecreek/quartermaster/internal/api/middleware"
	"github.com/roguecreek/quartermaster/internal/config"
	"github.com/roguecreek/quartermaster/internal/repository"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
	"github.com/roguecreek/quartermaster/internal/service"
)

// Server is the HTTP status surface: a health check plus read-only
// stock snapshots. It fills the keep-alive role some hosts require.
type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	db     *gorm.DB
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		db:     db,
	}

	s.MountMiddlewares()

	stockHandler := s.initStockHandler(db)
	s.MountHandlers(stockHandler)

	return s
}

func (s *Server) initStockHandler(db *gorm.DB) *v1.StockHandler {
	stockDAO := dao.NewStockDAO(db)
	repo := repository.NewStockRepository(stockDAO)
	svc := service.NewLedgerService(repo)
	handler := v1.NewStockHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(stockHandler *v1.StockHandler) {
	s.Router.GET("/healthz", s.handleHealthz)

	api := s.Router.Group("/api/v1")
	{
		api.GET("/stocks/:domain", stockHandler.HandleGetStocks)
	}
}

func (s *Server) handleHealthz(ctx *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
