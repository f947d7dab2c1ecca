package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"concierge/internal/config"
	"concierge/internal/database"
	"concierge/internal/middleware"
	"concierge/internal/modules/auth"
	"concierge/internal/modules/catalog"
	"concierge/internal/modules/lead"
	"concierge/internal/modules/notification"
	"concierge/internal/modules/report"
	"concierge/internal/modules/request"
	"concierge/internal/modules/reservation"
	jwtsvc "concierge/internal/pkg/jwt"
	"concierge/internal/pkg/mailer"
	"concierge/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.Server.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var mail mailer.Mailer
	if cfg.Email.DevMode {
		mail = mailer.NewDevMailer()
	} else {
		mail = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass)
	}

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService, hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	leadService := lead.NewService(leadRepo, userRepo, notificationService, mail, cfg.Email.StaffInbox)
	leadHandler := lead.NewHandler(leadService)

	catalogService := catalog.NewService(serviceRepo, propertyRepo, providerRepo, userRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, serviceRepo, providerRepo, userRepo, notificationService, mail)
	reservationHandler := reservation.NewHandler(reservationService)

	requestService := request.NewService(requestRepo, serviceRepo, propertyRepo, userRepo, userRepo, reservationService, notificationService, mail)
	requestHandler := request.NewHandler(requestService)

	reportService := report.NewService(reservationRepo, expenseRepo, userRepo)
	reportHandler := report.NewHandler(reportService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))

	notificationHandler.RegisterWSRoute(r)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		leadHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		// protected (any authenticated user)
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			notificationHandler.RegisterProtectedRoutes(protected)
			reportHandler.RegisterProtectedRoutes(protected)
		}

		// client only; admins manage requests and reservations under /admin
		client := api.Group("/")
		client.Use(middleware.JWTAuth(j), middleware.ClientOnly())
		{
			requestHandler.RegisterProtectedRoutes(client)
			reservationHandler.RegisterProtectedRoutes(client)
		}

		// admin only
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			leadHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			requestHandler.RegisterAdminRoutes(admin)
			reservationHandler.RegisterAdminRoutes(admin)
			reportHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
