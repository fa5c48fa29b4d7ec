package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tradeloghq/tradelog/internal/config"
	"github.com/tradeloghq/tradelog/internal/observability/logger"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.Logger

	salesReportSvc salesreportdomain.Service
	salesExportSvc salesreportdomain.ExportService

	engine *gin.Engine
}

type ServerParam struct {
	fx.In

	Cfg    *config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	Engine *gin.Engine

	SalesReportSvc salesreportdomain.Service
	SalesExportSvc salesreportdomain.ExportService
}

func NewEngine(cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware())
	return engine
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg: p.Cfg,
		db:  p.DB,
		log: p.Log.Named("server"),

		salesReportSvc: p.SalesReportSvc,
		salesExportSvc: p.SalesExportSvc,

		engine: p.Engine,
	}
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.Health)
	if s.cfg.MetricsEnabled {
		s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := s.engine.Group("/api/v1")
	v1.GET("/sales/snapshot", s.GetSalesSnapshot)
	v1.GET("/sales/export", s.ExportSalesReport)
}

// RunHTTP binds the HTTP listener to the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
