package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	billdomain "github.com/smallbiznis/stockroom/internal/bill/domain"
	"github.com/smallbiznis/stockroom/internal/config"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/observability"
	obsmiddleware "github.com/smallbiznis/stockroom/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/stockroom/internal/observability/metrics"
	obstracing "github.com/smallbiznis/stockroom/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(log, obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	addr := cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	inventorySvc inventorydomain.Service
	billSvc      billdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB `optional:"true"`
	Log          *zap.Logger
	InventorySvc inventorydomain.Service
	BillSvc      billdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("http.server"),
		inventorySvc: p.InventorySvc,
		billSvc:      p.BillSvc,
	}
	svc.registerHealthRoutes()
	svc.registerAPIRoutes()
	svc.registerFallback()
	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHealthRoutes() {
	s.engine.GET("/health", s.Health)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Inventory --------
	api.GET("/inventory", s.ListInventory)
	api.POST("/inventory", s.AddInventoryItem)
	api.PUT("/inventory/:id", s.UpdateInventoryItem)
	api.DELETE("/inventory/:id", s.DeleteInventoryItem)

	// -------- Bills --------
	api.POST("/bills/quote", s.QuoteBill)
	api.POST("/bills", s.CreateBill)
	api.GET("/bills", s.ListRecentBills)
	api.GET("/bills/:id", s.GetBill)
	api.GET("/bills/:id/pdf", s.GetBillPDF)
}

func (s *Server) registerFallback() {
	s.engine.NoRoute(func(c *gin.Context) {
		AbortWithError(c, ErrNotFound)
	})
}

// Health reports liveness and, when a database handle is wired, whether it answers a ping.
func (s *Server) Health(c *gin.Context) {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			s.log.Warn("database ping failed", zap.Error(err))
			AbortWithError(c, ErrServiceUnavailable)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
