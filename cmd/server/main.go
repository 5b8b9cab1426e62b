package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mrp/backend/internal/application/catalog"
	mrpapp "github.com/mrp/backend/internal/application/mrp"
	partnerapp "github.com/mrp/backend/internal/application/partner"
	planningapp "github.com/mrp/backend/internal/application/planning"
	tradeapp "github.com/mrp/backend/internal/application/trade"
	"github.com/mrp/backend/internal/domain/mrp"
	"github.com/mrp/backend/internal/infrastructure/config"
	"github.com/mrp/backend/internal/infrastructure/event"
	"github.com/mrp/backend/internal/infrastructure/logger"
	"github.com/mrp/backend/internal/infrastructure/persistence"
	"github.com/mrp/backend/internal/interfaces/http/handler"
	"github.com/mrp/backend/internal/interfaces/http/middleware"
	"github.com/mrp/backend/internal/interfaces/http/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting MRP Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	jobRepo := persistence.NewGormProductionJobRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)

	// Event bus with an audit trail of every domain event
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	// Report engine configured from the report section
	thresholds := mrp.Thresholds{
		Green:    decimal.NewFromFloat(cfg.Report.ThresholdGreen),
		Yellow:   decimal.NewFromFloat(cfg.Report.ThresholdYellow),
		Orange:   decimal.NewFromFloat(cfg.Report.ThresholdOrange),
		LightRed: decimal.NewFromFloat(cfg.Report.ThresholdLightRed),
	}
	reportEngine := mrp.NewEngineWith(thresholds, cfg.Report.LookaheadDays)

	// Application services
	productService := catalogapp.NewProductService(productRepo, supplierRepo, eventBus)
	supplierService := partnerapp.NewSupplierService(supplierRepo, eventBus)
	jobService := planningapp.NewProductionJobService(jobRepo, productRepo, eventBus)
	reportService := mrpapp.NewReportService(
		reportEngine, productRepo, supplierRepo, jobRepo, orderRepo,
		mrpapp.WithSnapshotPageSize(cfg.Report.SnapshotPageSize),
	)
	orderService := tradeapp.NewPurchaseOrderService(orderRepo, reportService, eventBus)

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	jobHandler := handler.NewProductionJobHandler(jobService)
	orderHandler := handler.NewPurchaseOrderHandler(orderService)
	mrpHandler := handler.NewMRPHandler(reportService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, db.Ping)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.Metrics())

	// Report generation gets its own, longer deadline below; everything
	// else uses the standard request timeout.
	requestTimeout := middleware.Timeout(cfg.HTTP.RequestTimeout)

	// Operational endpoints outside API versioning
	engine.GET("/health", systemHandler.Health)
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.Use(requestTimeout)
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.PUT("/products/:id/stock-levels", productHandler.UpdateStockLevels)
	catalogRoutes.PATCH("/products/:id/po-placed", productHandler.SetPOPlaced)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	r.Register(catalogRoutes)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.Use(requestTimeout)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.POST("/suppliers/:id/activate", supplierHandler.Activate)
	partnerRoutes.POST("/suppliers/:id/deactivate", supplierHandler.Deactivate)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	r.Register(partnerRoutes)

	planningRoutes := router.NewDomainGroup("planning", "/planning")
	planningRoutes.Use(requestTimeout)
	planningRoutes.POST("/jobs", jobHandler.Create)
	planningRoutes.GET("/jobs", jobHandler.List)
	planningRoutes.GET("/jobs/:id", jobHandler.GetByID)
	planningRoutes.POST("/jobs/:id/commitments", jobHandler.AddCommitment)
	planningRoutes.POST("/jobs/:id/start", jobHandler.Start)
	planningRoutes.POST("/jobs/:id/complete", jobHandler.Complete)
	planningRoutes.POST("/jobs/:id/cancel", jobHandler.Cancel)
	r.Register(planningRoutes)

	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.Use(requestTimeout)
	tradeRoutes.GET("/purchase-orders", orderHandler.List)
	tradeRoutes.GET("/purchase-orders/:id", orderHandler.GetByID)
	tradeRoutes.POST("/purchase-orders/draft", orderHandler.DraftFromReport)
	tradeRoutes.POST("/purchase-orders/:id/send", orderHandler.Send)
	tradeRoutes.POST("/purchase-orders/:id/confirm", orderHandler.Confirm)
	tradeRoutes.POST("/purchase-orders/:id/deliver", orderHandler.Deliver)
	tradeRoutes.POST("/purchase-orders/:id/cancel", orderHandler.Cancel)
	r.Register(tradeRoutes)

	mrpRoutes := router.NewDomainGroup("mrp", "/mrp")
	mrpRoutes.Use(middleware.Timeout(cfg.Report.GenerationTimeout))
	mrpRoutes.GET("/report", mrpHandler.GetReport)
	mrpRoutes.GET("/report/export", mrpHandler.ExportReport)
	r.Register(mrpRoutes)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
