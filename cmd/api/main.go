package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tablebook/internal/config"
	"tablebook/internal/database"
	"tablebook/internal/middleware"
	"tablebook/internal/modules/admin"
	"tablebook/internal/modules/auth"
	"tablebook/internal/modules/booking"
	"tablebook/internal/modules/catalog"
	"tablebook/internal/modules/notification"
	"tablebook/internal/modules/payment"
	jwtsvc "tablebook/internal/pkg/jwt"
	"tablebook/internal/pkg/logger"
	"tablebook/internal/pkg/validator"
	"tablebook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.Get()
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("database migrate failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(restaurantRepo, tableRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	notificationService := notification.NewService(notificationRepo, zlog)
	notificationHandler := notification.NewHandler(notificationService)

	ledger := admin.NewLedger(commissionRepo, cfg.CommissionFee)

	bookingService := booking.NewService(
		reservationRepo,
		tableRepo,
		restaurantRepo,
		notificationService,
		ledger,
		booking.Options{
			SlotGranularityMinutes: cfg.SlotGranularityMinutes,
			AllowDegradedFit:       cfg.AllowDegradedFit,
		},
		zlog,
	)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(reservationRepo, notificationService, zlog)
	paymentHandler := payment.NewHandler(paymentService)

	adminService := admin.NewService(commissionRepo)
	adminHandler := admin.NewHandler(adminService, bookingService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		// any authenticated actor
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			notificationHandler.RegisterRoutes(protected)
		}

		customer := v1.Group("/")
		customer.Use(middleware.Auth(j), middleware.RequireRole("customer"))
		{
			bookingHandler.RegisterCustomerRoutes(customer)
		}

		vendor := v1.Group("/")
		vendor.Use(middleware.Auth(j), middleware.RequireRole("vendor", "admin"))
		{
			catalogHandler.RegisterVendorRoutes(vendor)
			bookingHandler.RegisterVendorRoutes(vendor)
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}

		// server-to-server callback from the payment provider
		internal := v1.Group("/internal")
		internal.Use(middleware.InternalTokenAuth(cfg.PaymentWebhookToken))
		{
			paymentHandler.RegisterRoutes(internal)
		}
	}

	zlog.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
