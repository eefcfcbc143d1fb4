package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/controller"
	"gradtrak_backend/internal/repository"
	"gradtrak_backend/internal/service"
	"gradtrak_backend/pkg/database"
	"gradtrak_backend/pkg/logger"
	"gradtrak_backend/pkg/monitoring"
	"gradtrak_backend/pkg/security"
	"gradtrak_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	student  *repository.StudentRepository
	course   *repository.CourseRepository
	category *repository.CategoryRepository
	note     *repository.NoteRepository
}

type services struct {
	calendar  *service.PeriodResolver
	storage   *service.StorageService
	mail      *service.MailService
	report    *service.ReportService
	student   *service.StudentService
	note      *service.NoteService
	dashboard *service.DashboardService
	export    *service.ExportService
	importer  *service.ImportService
}

type controllers struct {
	student   *controller.StudentController
	category  *controller.CategoryController
	note      *controller.NoteController
	dashboard *controller.DashboardController
	report    *controller.ReportController
	export    *controller.ExportController
	importer  *controller.ImportController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a freshly loaded config to the running app.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:  repository.NewStudentRepository(db),
		course:   repository.NewCourseRepository(db),
		category: repository.NewCategoryRepository(db),
		note:     repository.NewNoteRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	calendar, err := service.NewPeriodResolver(&cfg.Calendar)
	if err != nil {
		return nil, err
	}
	s.calendar = calendar

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.mail = service.NewMailService(cfg)
	s.report = service.NewReportService(repos.student, repos.category, s.calendar, rdb, cfg.Pathways)
	s.student = service.NewStudentService(repos.student, repos.course, repos.category, s.report)
	s.note = service.NewNoteService(repos.note, repos.student)
	s.dashboard = service.NewDashboardService(repos.student, repos.category, repos.note, s.calendar)
	s.export = service.NewExportService(repos.student, repos.category, s.calendar, s.storage, cfg.School)
	s.importer = service.NewImportService(repos.student, repos.course, repos.category, s.report)

	return s, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		student:   controller.NewStudentController(s.student),
		category:  controller.NewCategoryController(s.student),
		note:      controller.NewNoteController(s.note),
		dashboard: controller.NewDashboardController(s.dashboard, s.mail),
		report:    controller.NewReportController(s.report),
		export:    controller.NewExportController(s.export),
		importer:  controller.NewImportController(s.importer),
		health:    controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// reports fall back to uncached evaluation without Redis
		logger.Log.Warn("Redis unavailable, report caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("gradtrak", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(fresh *config.Config) {
		if err := services.calendar.Reload(&fresh.Calendar); err != nil {
			logger.Log.Error("calendar reload rejected", zap.Error(err))
		}
		services.mail.Reload(fresh)
		logger.Log.Info("configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
