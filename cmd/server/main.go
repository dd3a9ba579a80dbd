package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/intervue-backend/internal/config"
	"github.com/fadilmartias/intervue-backend/internal/domain/fiber/handler"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/middleware"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/fadilmartias/intervue-backend/internal/repository"
	"github.com/fadilmartias/intervue-backend/internal/service"
	"github.com/fadilmartias/intervue-backend/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	appLog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer appLog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.CORSOrigins,
		AllowCredentials: true,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(appLog)

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	gemini, err := service.NewGeminiService(ctx, appLog)
	if err != nil {
		appLog.Fatal("failed to init gemini service", "error", err)
	}
	drafter := service.NewReportDraftService(gemini, appLog)
	github := service.NewGithubService(appLog)

	updater := usecase.NewAggregateUpdater(userRepo, appLog)
	authUC := usecase.NewAuthUsecase(userRepo, appLog)
	userUC := usecase.NewUserUsecase(userRepo, github, appLog)
	reportUC := usecase.NewReportUsecase(reportRepo, updater, drafter, appLog)

	requireAuth := middleware.RequireAuth(authUC)
	handler.NewAuthHandler(authUC).RegisterRoutes(app, requireAuth)
	handler.NewUserHandler(userUC).RegisterRoutes(app, requireAuth)
	handler.NewReportHandler(reportUC).RegisterRoutes(app, requireAuth)

	appLog.Info("server running", "port", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}

func ConnectDB(appLog *logger.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		appLog.Fatal("could not connect to database", "error", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		appLog.Fatal("could not get database instance", "error", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Report{}); err != nil {
		appLog.Fatal("migration failed", "error", err)
	}
	return db
}
