package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"teateach_backend/internal/config"
	"teateach_backend/internal/controller"
	"teateach_backend/internal/repository"
	"teateach_backend/internal/service"
	"teateach_backend/pkg/configwatcher"
	"teateach_backend/pkg/database"
	"teateach_backend/pkg/logger"
	"teateach_backend/pkg/monitoring"
	"teateach_backend/pkg/security"
	"teateach_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client

	catalog         *repository.CachedQuestionCatalog
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	question  *repository.QuestionRepository
	testPaper *repository.TestPaperRepository
	catalog   *repository.CachedQuestionCatalog
}

type services struct {
	storage   service.ObjectStore
	question  *service.QuestionService
	testPaper *service.TestPaperService
}

type controllers struct {
	question  *controller.QuestionController
	testPaper *controller.TestPaperController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// catalogTTLReloader 配置热更新时同步题库快照的缓存时长
func catalogTTLReloader(catalog *repository.CachedQuestionCatalog) func(*config.Config) {
	return func(newCfg *config.Config) {
		ttl := newCfg.Assembly.CatalogCacheTTL()
		catalog.SetTTL(ttl)
		logger.Log.Info("Question catalog cache TTL updated", zap.Duration("ttl", ttl))
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	question := repository.NewQuestionRepository(db)

	// redis 不可用时不启用快照缓存
	var cache redis.UniversalClient
	if rdb != nil {
		cache = rdb
	}

	return &repositories{
		question:  question,
		testPaper: repository.NewTestPaperRepository(db),
		catalog:   repository.NewCachedQuestionCatalog(question, cache, cfg.Assembly.CatalogCacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewObjectStore(&cfg.Storage)
	s.question = service.NewQuestionService(repos.question, repos.catalog, cfg.Assembly.DefaultPageSize)
	s.testPaper = service.NewTestPaperService(repos.testPaper, repos.catalog, repos.question, s.storage, cfg.Assembly.DefaultPageSize)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	var cache redis.UniversalClient
	if rdb != nil {
		cache = rdb
	}
	return &controllers{
		question:  controller.NewQuestionController(s.question),
		testPaper: controller.NewTestPaperController(s.testPaper),
		health:    controller.NewHealthController(db, cache),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if cfg.RateLimit.MaxRequests > 0 && window > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		DB:        db,
	}
	if cfg.MigrateOnly {
		return app
	}

	// 缓存不可用时直接读库
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, question catalog cache disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db, rdb, cfg)
	app.catalog = repos.catalog
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	app.RegisterConfigCallback(catalogTTLReloader(app.catalog))

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("teateach-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		err := configwatcher.WatchConfig(ctx, a.ConfigDir, func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		})
		if err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Close 释放数据库、缓存和追踪资源
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
