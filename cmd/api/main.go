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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/contactpro-backend/docs"
	httphandlers "github.com/rafabene/contactpro-backend/internal/handlers/http"
	"github.com/rafabene/contactpro-backend/internal/handlers/middleware"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/ai"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/config"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/i18n"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/logging"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/storage"
	"github.com/rafabene/contactpro-backend/internal/services"
	"github.com/rafabene/contactpro-backend/internal/ws"
)

//	@title			ContactPro API
//	@version		1.0
//	@description	API de gerenciamento de relacionamentos profissionais.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting contactpro backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Object storage
	objectStorage, err := storage.NewMinioStorage(&cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		log.Fatal(err)
	}

	// Serviço de completion (drafting)
	drafter, err := ai.NewGeminiDrafter(context.Background(), &cfg.AI, logger)
	if err != nil {
		logger.Error("failed to initialize drafter", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	conversationRepo := postgres.NewConversationRepository(db)
	attachmentRepo := postgres.NewAttachmentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	contactService := services.NewContactService(contactRepo, conversationRepo, uow, logger)
	draftService := services.NewDraftService(templateRepo, contactRepo, drafter, logger)
	conversationService := services.NewConversationService(conversationRepo, contactRepo, logger)
	attachmentService := services.NewAttachmentService(attachmentRepo, objectStorage, logger)

	// Hub de eventos para o frontend
	hub := ws.NewHub(firstOrigin(cfg.CORS.AllowedOrigins), logger)
	go hub.Run()

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	contactHandler := httphandlers.NewContactHandler(contactService, hub)
	draftHandler := httphandlers.NewDraftHandler(draftService)
	conversationHandler := httphandlers.NewConversationHandler(conversationService)
	attachmentHandler := httphandlers.NewAttachmentHandler(attachmentService, hub)

	// Guard de autenticação
	verifier := auth.NewJWTVerifier(cfg.JWT.Secret)
	authMiddleware := middleware.NewAuthMiddleware(verifier, userService, logger)

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
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Headers de segurança
	router.Use(middleware.SecureHeaders())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Eventos (websocket). O handshake exige o mesmo token das rotas
	// da API; cada conexão fica chaveada ao dono autenticado.
	router.GET("/ws", authMiddleware.RequireAuthWS(), func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		hub.ServeWS(user.ID, c.Writer, c.Request)
	})

	// Rate limit por cliente na API autenticada
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Limit())
	v1.Use(authMiddleware.RequireAuth())
	{
		// Perfil
		v1.GET("/me", userHandler.Me)
		v1.PUT("/me", userHandler.UpdateProfile)

		// Contatos
		contacts := v1.Group("/contacts")
		{
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("", contactHandler.ListContacts)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)

			// Histórico de correspondência
			contacts.POST("/:id/conversations", conversationHandler.RecordConversation)
			contacts.GET("/:id/conversations", conversationHandler.ListConversations)
		}

		// Anexos
		attachments := v1.Group("/attachments")
		{
			attachments.POST("/presigned-url", attachmentHandler.CreatePresignedURL)
			attachments.DELETE("/*key", attachmentHandler.DeleteAttachment)
		}

		// Rascunhos assistidos e templates salvos
		v1.POST("/drafts/template", draftHandler.GenerateTemplate)
		v1.POST("/drafts/polish", draftHandler.PolishDraft)
		templates := v1.Group("/templates")
		{
			templates.GET("", draftHandler.ListTemplates)
			templates.GET("/:id", draftHandler.GetTemplate)
			templates.DELETE("/:id", draftHandler.DeleteTemplate)
		}
	}

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

// firstOrigin retorna a primeira origem configurada (usada no
// handshake do websocket)
func firstOrigin(origins string) string {
	parts := strings.Split(origins, ",")
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}
