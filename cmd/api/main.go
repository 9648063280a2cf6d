package main

import (
	"context"
	"reurb/cmd/internal/config"
	"reurb/cmd/internal/domain/database"
	"reurb/cmd/internal/domain/database/repository"
	"reurb/cmd/internal/domain/entity"
	"reurb/cmd/internal/domain/policy"
	"reurb/cmd/internal/http/handler"
	authmw "reurb/cmd/internal/http/middleware"
	"reurb/cmd/internal/infrastructure/aws/storage"
	"reurb/cmd/internal/metrics"
	"reurb/cmd/internal/service"
	"reurb/cmd/internal/utils"
	"reurb/cmd/internal/utils/validators"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()
	validate := validators.New()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err = database.SeedAdministrator(db, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed administrator: %v", err)
	}

	// Optional import archive
	var archive service.FileArchiver
	if cfg.ArchiveEnabled() {
		s3Client, err := storage.NewStorageClient(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("failed to init S3 client: %v", err)
		}
		archive = s3Client
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	fields := entity.MustFieldSet(&entity.Registration{})
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userPolicy := policy.NewUserPolicy()

	// Getting repos
	regRepo := repository.NewRegistrationRepository(db)
	constructionRepo := repository.NewConstructionRepository(db)
	userRepo := repository.NewUserRepository(db)
	valuePlanRepo := repository.NewReferenceRepository[entity.ValuePlanEntry](db)
	standardRepo := repository.NewReferenceRepository[entity.ConstructionStandardEntry](db)
	streetRepo := repository.NewReferenceRepository[entity.StreetValueEntry](db)
	taxRateRepo := repository.NewReferenceRepository[entity.TaxRateEntry](db)

	// Getting services
	registrationService := service.NewRegistrationService(regRepo, streetRepo, standardRepo, taxRateRepo, fields, m)
	constructionService := service.NewConstructionService(constructionRepo, regRepo, validate)
	referenceService := service.NewReferenceService(valuePlanRepo, standardRepo, streetRepo, taxRateRepo, validate)
	transferService := service.NewTransferService(regRepo, fields, validate, archive, m)
	userService := service.NewUserService(userRepo, validate, tokens, userPolicy)
	healthService := service.NewHealthService(service.PingFunc(func() error { return database.Ping(db) }))

	// Getting handlers
	registrationRoutes := handler.NewRegistrationDefault(registrationService)
	constructionRoutes := handler.NewConstructionDefault(constructionService)
	referenceRoutes := handler.NewReferenceDefault(referenceService)
	transferRoutes := handler.NewTransferDefault(transferService)
	userRoutes := handler.NewUserDefault(userService)
	utilRoutes := handler.NewUtilRoute(healthService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(authmw.NewMetricsMiddleware(m))

	api := e.Group("/api")

	// Registrations
	api.POST("/registrations", registrationRoutes.CreateRegistration)
	api.GET("/registrations/list", registrationRoutes.ListRegistrations)
	api.GET("/registrations/:id", registrationRoutes.GetRegistration)
	api.PUT("/registrations/:id", registrationRoutes.UpdateRegistration)
	api.DELETE("/registrations/:id", registrationRoutes.DeleteRegistration)

	// Constructions
	api.POST("/constructions/:id", constructionRoutes.CreateConstruction)
	api.GET("/constructions/:id", constructionRoutes.GetConstructions)
	api.DELETE("/constructions/:id", constructionRoutes.DeleteConstruction)

	// Reference tables
	api.GET("/reference/:variant", referenceRoutes.ListEntries)
	api.POST("/reference/:variant", referenceRoutes.CreateEntry)
	api.DELETE("/reference/:variant/:id", referenceRoutes.DeleteEntry)

	// Bulk transfer
	api.POST("/import", transferRoutes.ImportFile)
	api.POST("/export", transferRoutes.ExportFile)

	// Users
	api.POST("/login", userRoutes.CreateLogin)
	users := api.Group("/users",
		authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Tokens: tokens, UserRepo: userRepo}),
		authmw.NewUserManagerMiddleware(userPolicy),
	)
	users.GET("", userRoutes.GetUsers)
	users.POST("", userRoutes.CreateUser)
	users.GET("/:id", userRoutes.GetUser)
	users.PUT("/:id", userRoutes.UpdateUser)
	users.DELETE("/:id", userRoutes.DeleteUser)

	// Health, also used by the Docker Compose healthcheck
	api.GET("/health", utilRoutes.HealthCheck)
	e.GET("/health", utilRoutes.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
