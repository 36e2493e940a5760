package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"salonbook/internal/config"
	"salonbook/internal/database"
	"salonbook/internal/middleware"
	"salonbook/internal/modules/auth"
	"salonbook/internal/modules/booking"
	"salonbook/internal/modules/catalog"
	jwtsvc "salonbook/internal/pkg/jwt"
	"salonbook/internal/pkg/response"
	"salonbook/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Cannot load config: %s", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("DB connection failed: %s", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Migration failed: %s", err)
	}

	userRepo := repository.NewUserRepository(db)
	salonRepo := repository.NewSalonRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(salonRepo, serviceRepo, workerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, workerRepo, salonRepo, cfg.SlotStepMinutes)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), middleware.CORS())

	r.GET("/api/health", func(c *gin.Context) {
		response.Success(c, 200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)

		// admin (catalog mutations, booking administration)
		admin := v1.Group("/")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
		}
	}

	logrus.Infof("API listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatal(err)
	}
}
