package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aminebenfraj/novares-sub003/internal/config"
	inventoryentity "github.com/aminebenfraj/novares-sub003/internal/inventory/entity"
	inventoryhandler "github.com/aminebenfraj/novares-sub003/internal/inventory/handler"
	inventoryrepo "github.com/aminebenfraj/novares-sub003/internal/inventory/repository"
	inventorysvc "github.com/aminebenfraj/novares-sub003/internal/inventory/service"
	"github.com/aminebenfraj/novares-sub003/internal/middleware"
	"github.com/aminebenfraj/novares-sub003/internal/storage"
	workflowentity "github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	workflowhandler "github.com/aminebenfraj/novares-sub003/internal/workflow/handler"
	workflowrepo "github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	workflowsvc "github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting novares tracking service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		// workflow
		&workflowentity.User{},
		&workflowentity.Task{},
		&workflowentity.Validation{},
		&workflowentity.Stage{},
		&workflowentity.StageCheck{},
		&workflowentity.Checkin{},
		&workflowentity.Feasibility{},
		&workflowentity.FeasibilityDetail{},
		&workflowentity.Readiness{},
		&workflowentity.MassProduction{},
		&workflowentity.OkForLaunch{},
		&workflowentity.ValidationForOffer{},
		// inventory
		&inventoryentity.Supplier{},
		&inventoryentity.Location{},
		&inventoryentity.Category{},
		&inventoryentity.Solicitante{},
		&inventoryentity.TableStatus{},
		&inventoryentity.Material{},
		&inventoryentity.MaterialHistory{},
		&inventoryentity.ReferenceHistory{},
		&inventoryentity.Machine{},
		&inventoryentity.MachineMaterial{},
		&inventoryentity.MachineMaterialHistory{},
		&inventoryentity.Pedido{},
		&inventoryentity.Call{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	rdb := initRedis(cfg.Redis)

	store, err := storage.New(storage.Options{
		Endpoint:  cfg.MinIO.Endpoint,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		zapLogger.Warn("Attachment store unavailable", zap.Error(err))
		store, _ = storage.New(storage.Options{Bucket: cfg.MinIO.Bucket})
	}

	workflowRepos := workflowrepo.NewRepositories(db)
	workflowServices := workflowsvc.NewServices(workflowRepos, db, rdb, workflowsvc.AuthParams{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		AccessExpire:  cfg.JWT.AccessTokenExpire,
		RefreshExpire: cfg.JWT.RefreshTokenExpire,
	})
	workflowHandlers := workflowhandler.NewHandlers(workflowServices, store)

	inventoryRepos := inventoryrepo.NewRepositories(db)
	inventoryServices := inventorysvc.NewServices(inventoryRepos, db, zapLogger)
	inventoryHandlers := inventoryhandler.NewHandlers(inventoryServices)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	inventoryServices.Call.StartSweeper(sweepCtx, cfg.Calls.SweepInterval)
	zapLogger.Info("Call sweeper started", zap.Duration("interval", cfg.Calls.SweepInterval))

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS(cfg.Server.FrontendURL))
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, workflowHandlers, inventoryHandlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, wf *workflowhandler.Handlers, inv *inventoryhandler.Handlers, cfg *config.Config) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", wf.Auth.Login)
			auth.POST("/refresh", wf.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", wf.Auth.Me)
			authorized.POST("/auth/logout", wf.Auth.Logout)
			authorized.POST("/auth/register", middleware.RequireRole("admin"), wf.Auth.Register)

			// Workflow checklists; every kind shares the same routes.
			stages := authorized.Group("/stages")
			{
				stages.GET("", wf.Stage.Kinds)
				stages.GET("/:kind", wf.Stage.List)
				stages.POST("/:kind", wf.Stage.Create)
				stages.GET("/:kind/:id", wf.Stage.Get)
				stages.PUT("/:kind/:id", wf.Stage.Update)
				stages.DELETE("/:kind/:id", wf.Stage.Delete)
			}

			checkins := authorized.Group("/checkins")
			{
				checkins.GET("", wf.Checkin.List)
				checkins.POST("", wf.Checkin.Create)
				checkins.GET("/:id", wf.Checkin.Get)
				checkins.PUT("/:id", wf.Checkin.Update)
				checkins.DELETE("/:id", wf.Checkin.Delete)
			}

			feasibilities := authorized.Group("/feasibilities")
			{
				feasibilities.GET("", wf.Feasibility.List)
				feasibilities.POST("", wf.Feasibility.Create)
				feasibilities.GET("/:id", wf.Feasibility.Get)
				feasibilities.PUT("/:id", wf.Feasibility.Update)
				feasibilities.DELETE("/:id", wf.Feasibility.Delete)
			}

			massProductions := authorized.Group("/mass-productions")
			{
				massProductions.GET("", wf.MassProduction.List)
				massProductions.POST("", wf.MassProduction.Create)
				massProductions.GET("/:id", wf.MassProduction.Get)
				massProductions.PUT("/:id", wf.MassProduction.Update)
				massProductions.PUT("/:id/stages/:slot", wf.MassProduction.AttachStage)
				massProductions.DELETE("/:id", wf.MassProduction.Delete)
			}

			readinesses := authorized.Group("/readinesses")
			{
				readinesses.GET("", wf.Readiness.List)
				readinesses.POST("", wf.Readiness.Create)
				readinesses.GET("/:id", wf.Readiness.Get)
				readinesses.PUT("/:id", wf.Readiness.Update)
				readinesses.DELETE("/:id", wf.Readiness.Delete)
			}

			okForLaunch := authorized.Group("/ok-for-launch")
			{
				okForLaunch.GET("", wf.Offer.ListOkForLaunch)
				okForLaunch.POST("", wf.Offer.CreateOkForLaunch)
				okForLaunch.GET("/:id", wf.Offer.GetOkForLaunch)
				okForLaunch.PUT("/:id", wf.Offer.UpdateOkForLaunch)
				okForLaunch.DELETE("/:id", wf.Offer.DeleteOkForLaunch)
				okForLaunch.POST("/:id/file", wf.Upload.UploadOkForLaunchFile)
			}

			validationForOffers := authorized.Group("/validation-for-offers")
			{
				validationForOffers.GET("", wf.Offer.ListValidationForOffer)
				validationForOffers.POST("", wf.Offer.CreateValidationForOffer)
				validationForOffers.GET("/:id", wf.Offer.GetValidationForOffer)
				validationForOffers.PUT("/:id", wf.Offer.UpdateValidationForOffer)
				validationForOffers.DELETE("/:id", wf.Offer.DeleteValidationForOffer)
				validationForOffers.POST("/:id/file", wf.Upload.UploadValidationForOfferFile)
			}

			authorized.POST("/tasks/:id/file", wf.Upload.UploadTaskFile)
			authorized.GET("/files/*path", wf.Upload.Download)

			// Inventory
			materials := authorized.Group("/materials")
			{
				materials.GET("", inv.Material.List)
				materials.POST("", inv.Material.Create)
				materials.GET("/:id", inv.Material.Get)
				materials.PUT("/:id", inv.Material.Update)
				materials.DELETE("/:id", inv.Material.Delete)
				materials.GET("/:id/allocations", inv.Material.Allocations)
				materials.POST("/:id/allocations", inv.Material.Allocate)
			}

			machines := authorized.Group("/machines")
			{
				machines.GET("", inv.Machine.List)
				machines.POST("", inv.Machine.Create)
				machines.GET("/:id", inv.Machine.Get)
				machines.PUT("/:id", inv.Machine.Update)
				machines.DELETE("/:id", inv.Machine.Delete)
				machines.GET("/:id/allocations", inv.Machine.Allocations)
				machines.PUT("/:id/allocations/:materialId", inv.Machine.UpdateAllocation)
				machines.DELETE("/:id/allocations/:materialId", inv.Machine.ReleaseAllocation)
			}

			pedidos := authorized.Group("/pedidos")
			{
				pedidos.GET("", inv.Pedido.List)
				pedidos.POST("", inv.Pedido.Create)
				pedidos.GET("/:id", inv.Pedido.Get)
				pedidos.PUT("/:id", inv.Pedido.Update)
				pedidos.PUT("/:id/received", inv.Pedido.MarkReceived)
				pedidos.DELETE("/:id", inv.Pedido.Delete)
			}

			calls := authorized.Group("/calls")
			{
				calls.GET("", inv.Call.List)
				calls.POST("", inv.Call.Create)
				calls.GET("/:id", inv.Call.Get)
				calls.PUT("/:id/complete", inv.Call.Complete)
				calls.DELETE("/:id", inv.Call.Delete)
			}

			exports := authorized.Group("/exports")
			{
				exports.GET("/pedidos.csv", inv.Export.PedidosCSV)
				exports.GET("/pedidos.xlsx", inv.Export.PedidosXLSX)
				exports.GET("/materials.csv", inv.Export.MaterialsCSV)
				exports.GET("/materials.xlsx", inv.Export.MaterialsXLSX)
				exports.GET("/calls.csv", inv.Export.CallsCSV)
				exports.GET("/calls.xlsx", inv.Export.CallsXLSX)
			}

			suppliers := authorized.Group("/suppliers")
			{
				suppliers.GET("", inv.Master.ListSuppliers)
				suppliers.POST("", inv.Master.CreateSupplier)
				suppliers.PUT("/:id", inv.Master.UpdateSupplier)
				suppliers.DELETE("/:id", inv.Master.DeleteSupplier)
			}

			locations := authorized.Group("/locations")
			{
				locations.GET("", inv.Master.ListLocations)
				locations.POST("", inv.Master.CreateLocation)
				locations.PUT("/:id", inv.Master.UpdateLocation)
				locations.DELETE("/:id", inv.Master.DeleteLocation)
			}

			categories := authorized.Group("/categories")
			{
				categories.GET("", inv.Master.ListCategories)
				categories.POST("", inv.Master.CreateCategory)
				categories.PUT("/:id", inv.Master.UpdateCategory)
				categories.DELETE("/:id", inv.Master.DeleteCategory)
			}

			solicitantes := authorized.Group("/solicitantes")
			{
				solicitantes.GET("", inv.Master.ListSolicitantes)
				solicitantes.POST("", inv.Master.CreateSolicitante)
				solicitantes.PUT("/:id", inv.Master.UpdateSolicitante)
				solicitantes.DELETE("/:id", inv.Master.DeleteSolicitante)
			}

			tableStatuses := authorized.Group("/table-statuses")
			{
				tableStatuses.GET("", inv.Master.ListTableStatuses)
				tableStatuses.POST("", inv.Master.CreateTableStatus)
				tableStatuses.PUT("/:id", inv.Master.UpdateTableStatus)
				tableStatuses.DELETE("/:id", inv.Master.DeleteTableStatus)
			}
		}
	}
}
