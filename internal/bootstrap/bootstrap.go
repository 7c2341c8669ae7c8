// Package bootstrap wires configuration, database, repositories, services,
// controllers and routes into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/devansh/hostelhub/docs" // Import generated swagger docs
	appControllers "github.com/devansh/hostelhub/internal/app/controllers"
	appMigrations "github.com/devansh/hostelhub/internal/app/migrations"
	appRepos "github.com/devansh/hostelhub/internal/app/repositories"
	appRoutes "github.com/devansh/hostelhub/internal/app/routes"
	appServices "github.com/devansh/hostelhub/internal/app/services"
	"github.com/devansh/hostelhub/internal/config"
	"github.com/devansh/hostelhub/internal/db"
	appMiddleware "github.com/devansh/hostelhub/internal/middleware"
	pkgAuth "github.com/devansh/hostelhub/internal/pkg/auth"
	"github.com/devansh/hostelhub/internal/pkg/logger"
	"github.com/devansh/hostelhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EnrollmentService appServices.IEnrollmentService
	AuthService       appServices.IAuthService
	UserService       appServices.IUserService
	StudentService    appServices.IStudentService
	RoomService       appServices.IRoomService
	HostelService     appServices.IHostelService

	UserController         *appControllers.UserController
	StudentController      *appControllers.StudentController
	RoomController         *appControllers.RoomController
	HostelController       *appControllers.HostelController
	LeaveController        *appControllers.LeaveRequestController
	DisciplinaryController *appControllers.DisciplinaryController
	IssueController        *appControllers.IssueController
	PaymentController      *appControllers.PaymentController
	AnnouncementController *appControllers.AnnouncementController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	defaultCapacity := cfg.Rooms.DefaultCapacity
	defaultRent := cfg.Rooms.DefaultRent

	authService := appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		lgr,
	)
	userService := appServices.NewUserService(deps.Repos.UserRepository, lgr)
	enrollmentService := appServices.NewEnrollmentService(
		database,
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RoomRepository,
		defaultCapacity,
		defaultRent,
		lgr,
	)
	studentService := appServices.NewStudentService(
		database,
		deps.Repos.StudentRepository,
		deps.Repos.RoomRepository,
		defaultCapacity,
		defaultRent,
		lgr,
	)
	roomService := appServices.NewRoomService(deps.Repos.RoomRepository, defaultCapacity, defaultRent, lgr)
	hostelService := appServices.NewHostelService(deps.Repos.HostelRepository, lgr)
	leaveService := appServices.NewLeaveRequestService(
		deps.Repos.LeaveRequestRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	disciplinaryService := appServices.NewDisciplinaryService(
		deps.Repos.DisciplinaryRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	issueService := appServices.NewIssueService(
		deps.Repos.IssueRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	issueCommentService := appServices.NewIssueCommentService(
		deps.Repos.IssueCommentRepository,
		deps.Repos.IssueRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	paymentService := appServices.NewPaymentService(
		deps.Repos.PaymentRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	announcementService := appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, lgr)

	deps.EnrollmentService = enrollmentService
	deps.AuthService = authService
	deps.UserService = userService
	deps.StudentService = studentService
	deps.RoomService = roomService
	deps.HostelService = hostelService

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	cookieTTL := int(accessTokenExp / time.Second)
	deps.UserController = appControllers.NewUserController(authService, userService, cookieTTL, lgr)
	deps.StudentController = appControllers.NewStudentController(enrollmentService, studentService, lgr)
	deps.RoomController = appControllers.NewRoomController(roomService, lgr)
	deps.HostelController = appControllers.NewHostelController(hostelService, lgr)
	deps.LeaveController = appControllers.NewLeaveRequestController(leaveService, lgr)
	deps.DisciplinaryController = appControllers.NewDisciplinaryController(disciplinaryService, lgr)
	deps.IssueController = appControllers.NewIssueController(issueService, issueCommentService, lgr)
	deps.PaymentController = appControllers.NewPaymentController(paymentService, lgr)
	deps.AnnouncementController = appControllers.NewAnnouncementController(announcementService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.StudentController,
		deps.RoomController,
		deps.HostelController,
		deps.LeaveController,
		deps.DisciplinaryController,
		deps.IssueController,
		deps.PaymentController,
		deps.AnnouncementController,
		deps.AuthMiddleware,
	)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
