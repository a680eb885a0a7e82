package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseadmin/internal/app/controllers"
	appMigrations "github.com/yigit/courseadmin/internal/app/migrations"
	appRepos "github.com/yigit/courseadmin/internal/app/repositories"
	appRoutes "github.com/yigit/courseadmin/internal/app/routes"
	appServices "github.com/yigit/courseadmin/internal/app/services"
	"github.com/yigit/courseadmin/internal/config"
	"github.com/yigit/courseadmin/internal/db"
	appMiddleware "github.com/yigit/courseadmin/internal/middleware"
	pkgAuth "github.com/yigit/courseadmin/internal/pkg/auth"
	"github.com/yigit/courseadmin/internal/pkg/helpers"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"github.com/yigit/courseadmin/internal/pkg/viewcache"
	"github.com/yigit/courseadmin/internal/seed"
)

const redisKeyPrefix = "courseadmin:view:"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos           *appRepos.Repositories
	JWTService      *pkgAuth.JWTService
	Views           *viewcache.Cache
	CourseService   *appServices.CourseService
	InvoiceService  *appServices.InvoiceService
	OverviewService *appServices.OverviewService
	AuthService     *appServices.AuthService
	Controllers     appRoutes.Controllers
	AuthMiddleware  *appMiddleware.AuthMiddleware
	LoginLimiter    *appMiddleware.RateLimiter
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath, envPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath, envPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and applies pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !cfg.Database.AutoMigrate {
		return database.Pool, nil
	}

	if err := runMigrations(cfg, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database.Pool, nil
}

func runMigrations(cfg *config.Config, lgr zerolog.Logger) error {
	migrator, err := appMigrations.NewMigrator(cfg.GetMigrateConnectionString(), logger.Component("migrate"))
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			lgr.Warn().Err(closeErr).Msg("Failed to close migrator")
		}
	}()

	lgr.Info().Msg("Running database migrations...")
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	lgr.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations successfully applied.")
	return nil
}

// SetupViewCache builds the listing cache on the configured backend. The returned close
// function releases the backend connection.
func SetupViewCache(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*viewcache.Cache, func() error, error) {
	ttl := helpers.ParseDuration(cfg.Cache.TTL, 5*time.Minute)
	log := logger.Component("viewcache")

	if cfg.Cache.Driver != "redis" {
		lgr.Info().Int("size", cfg.Cache.Size).Dur("ttl", ttl).Msg("Using in-memory view cache")
		return viewcache.New(viewcache.NewMemoryStore(cfg.Cache.Size, ttl), log), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Cache.RedisAddr, err)
	}

	lgr.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", ttl).Msg("Using redis view cache")
	return viewcache.New(viewcache.NewRedisStore(client, redisKeyPrefix, ttl), log), client.Close, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, views *viewcache.Cache, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Views: views}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, views)
	deps.InvoiceService = appServices.NewInvoiceService(deps.Repos.Invoices, views)
	deps.OverviewService = appServices.NewOverviewService(deps.Repos, views)
	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, cfg.Auth.CookieName, appRoutes.PublicPaths...)
	deps.LoginLimiter = appMiddleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)

	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(deps.AuthService, appControllers.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}, logger.Component("auth_controller")),
		Courses:  appControllers.NewCourseController(deps.CourseService, logger.Component("course_controller")),
		Invoices: appControllers.NewInvoiceController(deps.InvoiceService, logger.Component("invoice_controller")),
		Overview: appControllers.NewOverviewController(deps.OverviewService),
	}

	if cfg.Seed.Enabled {
		seeder := seed.New(dbPool, cfg.Seed.BcryptCost, logger.Component("seed"))
		deps.Controllers.Seed = appControllers.NewSeedController(seedAndRevalidate{seeder, views}, logger.Component("seed_controller"))
		lgr.Warn().Msg("Seed endpoint enabled at GET /seed")
	}

	return deps
}

// seedAndRevalidate runs the seeder and then drops every cached view
type seedAndRevalidate struct {
	seeder *seed.Seeder
	views  *viewcache.Cache
}

func (s seedAndRevalidate) Run(ctx context.Context) error {
	err := s.seeder.Run(ctx)
	s.views.Revalidate(ctx,
		appServices.AdminPath,
		appServices.AdminCoursesPath,
		appServices.AdminInvoicesPath,
		appServices.AdminCustomerPath,
		appServices.DashboardPath,
	)
	return err
}

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRouter configures the Gin engine with middleware and routes and wraps it with CORS.
func SetupRouter(cfg *config.Config, deps *Dependencies, database Pinger, lgr zerolog.Logger) http.Handler {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter, healthHandler(database))

	if len(cfg.CORS.AllowedOrigins) == 0 {
		return router
	}
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router)
}

func healthHandler(database Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

var _ appMiddleware.SessionResolver = (*appServices.AuthService)(nil)
