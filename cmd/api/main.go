package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/rcampos/vinylstore-backend/internal/domain/entities"
	"github.com/rcampos/vinylstore-backend/internal/handlers/middleware"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/auth"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/config"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/discogs"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/i18n"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/logging"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/mail"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/oauth"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/payment"
	"github.com/rcampos/vinylstore-backend/internal/infrastructure/persistence/postgres"
	"github.com/rcampos/vinylstore-backend/internal/services"

	httphandlers "github.com/rcampos/vinylstore-backend/internal/handlers/http"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger, err := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	logger.Info("starting vinylstore backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewDefault()
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	recordRepo := postgres.NewVinylRecordRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	purchaseRepo := postgres.NewPurchaseRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar integrações externas
	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	identityProvider := oauth.NewGoogleProvider(&cfg.OAuth)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Server.BaseURL, logger)
	mailer := mail.NewGomailSender(&cfg.SMTP)
	catalogSource := discogs.NewClient(cfg.Discogs.Token)
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))

	// Inicializar services
	catalogService := services.NewCatalogService(recordRepo, catalogSource, uow, logger)
	reviewService := services.NewReviewService(reviewRepo, recordRepo, logger)
	userService := services.NewUserService(userRepo, reviewRepo, purchaseRepo, logger)
	authService := services.NewAuthService(userRepo, tokens, logger)
	purchaseService := services.NewPurchaseService(purchaseRepo, recordRepo, userRepo, gateway, mailer, logger)
	activityService := services.NewActivityService(cfg.Logging.File)

	// Inicializar handlers
	recordHandler := httphandlers.NewVinylRecordHandler(catalogService)
	reviewHandler := httphandlers.NewReviewHandler(reviewService)
	userHandler := httphandlers.NewUserHandler(userService)
	authHandler := httphandlers.NewAuthHandler(authService, identityProvider, sessionStore, logger)
	purchaseHandler := httphandlers.NewPurchaseHandler(purchaseService, logger)
	activityHandler := httphandlers.NewActivityHandler(activityService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization", "Accept-Language")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação (aplicado por rota)
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Catálogo (reviews aninhadas sob o disco)
	records := router.Group("/vinyl-records")
	{
		records.GET("", recordHandler.List)
		records.GET("/search", recordHandler.Search)
		records.GET("/:id", recordHandler.Get)
		records.POST("", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionCatalogWrite), recordHandler.Create)
		records.PATCH("/:id", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionCatalogWrite), recordHandler.Update)
		records.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionCatalogWrite), recordHandler.Delete)
		records.POST("/import", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionCatalogImport), recordHandler.Import)
		records.POST("/:id/reviews", authMiddleware.RequireAuth(), reviewHandler.Create)
		records.GET("/:id/reviews", reviewHandler.ListByRecord)
	}

	// Reviews
	reviews := router.Group("/reviews")
	{
		reviews.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionReviewDelete), reviewHandler.Delete)
	}

	// Perfil do usuário
	user := router.Group("/user", authMiddleware.RequireAuth())
	{
		user.GET("/profile", userHandler.GetProfile)
		user.PATCH("/profile", userHandler.UpdateProfile)
		user.DELETE("/profile", userHandler.DeleteProfile)
		user.GET("/reviews", userHandler.ListReviews)
		user.GET("/purchases", userHandler.ListPurchases)
	}

	// Autenticação
	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/google", authHandler.GoogleLogin)
		authRoutes.GET("/google/redirect", authHandler.GoogleCallback)
		authRoutes.GET("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// Compras
	purchase := router.Group("/purchase")
	{
		purchase.POST("/checkout/:vinylRecordId", authMiddleware.RequireAuth(), purchaseHandler.Checkout)
		purchase.POST("/webhook", purchaseHandler.Webhook)
		purchase.GET("/success", purchaseHandler.Success)
		purchase.GET("/cancel", purchaseHandler.Cancel)
	}

	// Log de atividade
	router.GET("/activity", authMiddleware.RequireAuth(), authMiddleware.RequirePermission(entities.PermissionActivityRead), activityHandler.Get)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
