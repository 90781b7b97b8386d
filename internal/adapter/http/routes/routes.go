package routes

import (
	"context"
	"fmt"
	"time"

	_ "atelier_backend/docs" // swagger generated docs
	"atelier_backend/internal/adapter/http/handlers"
	"atelier_backend/internal/adapter/http/middleware"
	"atelier_backend/internal/adapter/persistence/repository"
	"atelier_backend/internal/config"
	"atelier_backend/internal/infrastructure/database"
	"atelier_backend/internal/infrastructure/mail"
	"atelier_backend/internal/infrastructure/payments"
	"atelier_backend/internal/usecase"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the whole application together and starts the server.
func Run(cfg *config.Config, log *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	router.Use(middleware.CSRF())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories share the pool; transactional flows go through the
	// unit of work instead.
	orderRepo := repository.NewOrderPostgresRepository(pool, log)
	productRepo := repository.NewProductPostgresRepository(pool, log)
	deviceRepo := repository.NewDevicePostgresRepository(pool, log)
	appointmentRepo := repository.NewAppointmentPostgresRepository(pool, log)
	quoteRepo := repository.NewQuotePostgresRepository(pool)
	scheduleRepo := repository.NewSchedulePostgresRepository(pool)
	userRepo := repository.NewUserPostgresRepository(pool)
	reviewRepo := repository.NewReviewPostgresRepository(pool)
	deliveryRepo := repository.NewDeliveryPostgresRepository(pool)
	auditRepo := repository.NewAuditPostgresRepository(pool)
	uow := repository.NewPgxUnitOfWork(pool, log)

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom, log)

	var gateway interfaces.IPaymentGateway
	gateway, err = payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, log)
	if err != nil {
		return fmt.Errorf("configuring payment gateway: %w", err)
	}

	orderUC := usecase.NewOrderUseCase(uow, orderRepo, mailer, gateway, log)
	productUC := usecase.NewProductUseCase(productRepo, deviceRepo)
	repairUC := usecase.NewRepairUseCase(uow, appointmentRepo, quoteRepo, userRepo, mailer, log)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, appointmentRepo)
	userUC := usecase.NewUserUseCase(uow, userRepo, auditRepo, cfg.JWTSecret, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, productRepo)
	paymentUC := usecase.NewPaymentUseCase(orderRepo, gateway, log)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, orderRepo)

	orderHandler := handlers.NewOrderHandler(orderUC)
	productHandler := handlers.NewProductHandler(productUC, cfg.UploadDir)
	repairHandler := handlers.NewRepairHandler(repairUC, scheduleUC)
	userHandler := handlers.NewUserHandler(userUC)
	reviewHandler := handlers.NewReviewHandler(reviewUC)
	paymentHandler := handlers.NewPaymentHandler(paymentUC)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryUC)

	auth := middleware.RequireAuth(cfg.JWTSecret)
	staffOnly := middleware.RequireRole("admin", "employee")
	adminAudit := middleware.AdminAudit(auditRepo, log)

	api := router.Group("/api")
	addPingRoutes(api)
	addUserRoutes(api, userHandler, auth)
	addShopRoutes(api, productHandler, reviewHandler, auth, staffOnly, adminAudit)
	addOrderRoutes(api, orderHandler, paymentHandler, deliveryHandler, auth, staffOnly, adminAudit)
	addRepairRoutes(api, repairHandler, auth, staffOnly, adminAudit)

	return router.Run(fmt.Sprintf(":%d", cfg.Port))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
