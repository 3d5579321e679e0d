package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/nurture-api/internal/config"
	"github.com/yourusername/nurture-api/internal/handler"
	"github.com/yourusername/nurture-api/internal/middleware"
	pgRepo "github.com/yourusername/nurture-api/internal/repository/postgres"
	"github.com/yourusername/nurture-api/internal/service"
	"github.com/yourusername/nurture-api/pkg/auth"
	"github.com/yourusername/nurture-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis is optional: without it the rate limiter keeps per-process
	// windows, which is acceptable for a single instance.
	rateLimiter := middleware.NewRateLimiter(nil)
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")
		rateLimiter = middleware.NewRateLimiter(redisClient)
	} else {
		log.Println("[RateLimit] No Redis address configured, using in-process counters")
	}

	// Repositories
	userRepo := pgRepo.NewUserRepo(db)
	babyRepo := pgRepo.NewBabyRepo(db)
	scheduleRepo := pgRepo.NewScheduleRepo(db)
	expenseRepo := pgRepo.NewExpenseRepo(db)
	milestoneRepo := pgRepo.NewMilestoneRepo(db)
	dailyReadRepo := pgRepo.NewDailyReadRepo(db)
	scriptureRepo := pgRepo.NewScriptureRepo(db)
	contactRepo := pgRepo.NewContactMessageRepo(db)

	// Token service
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenExpiry())
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Email delivery
	emailService, err := service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.SupportTo)
	if err != nil {
		log.Printf("Failed to initialize email service: %v", err)
		os.Exit(1)
	}

	// Services
	authService, err := service.NewAuthService(userRepo, emailService, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	babyService := service.NewBabyService(babyRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, babyRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	milestoneService := service.NewMilestoneService(milestoneRepo, babyRepo)
	contentService := service.NewContentService(dailyReadRepo, scriptureRepo)
	contactService := service.NewContactService(contactRepo, emailService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	babyHandler := handler.NewBabyHandler(babyService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	contentHandler := handler.NewContentHandler(contentService)
	contactHandler := handler.NewContactHandler(contactService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	sensitiveLimit := rateLimiter.Limit(middleware.RateLimitConfig{
		MaxRequests: cfg.RateLimit.MaxRequests,
		Window:      time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute,
		KeyPrefix:   "rl:sensitive",
	})

	isProduction := gin.Mode() == gin.ReleaseMode

	router := gin.Default()

	// In production: do not trust proxy headers to keep c.ClientIP()
	// spoof-resistant for the rate limiter. Behind a load balancer,
	// replace nil with the balancer's address.
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://nurture-app.vercel.app", "http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(sensitiveLimit)
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/verify-email", authHandler.VerifyEmail)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/resend-code", authHandler.ResendCode)
		}

		api.POST("/contact", sensitiveLimit, contactHandler.Submit)

		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", authHandler.GetMe)
		}

		babies := api.Group("/babies")
		babies.Use(authMiddleware.RequireAuth())
		{
			babies.POST("", babyHandler.Create)
			babies.GET("", babyHandler.List)

			babyWithID := babies.Group("/:id")
			babyWithID.Use(middleware.ExtractUUIDParam("id", "babyID"))
			{
				babyWithID.GET("", babyHandler.Get)
			}
		}

		schedules := api.Group("/schedules")
		schedules.Use(authMiddleware.RequireAuth())
		{
			schedules.POST("", scheduleHandler.Create)
			schedules.GET("", scheduleHandler.List)
		}

		expenses := api.Group("/expenses")
		expenses.Use(authMiddleware.RequireAuth())
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
		}

		milestones := api.Group("/milestones")
		milestones.Use(authMiddleware.RequireAuth())
		{
			milestones.POST("", milestoneHandler.Create)
			milestones.GET("", milestoneHandler.List)
		}

		reads := api.Group("/reads")
		reads.Use(authMiddleware.RequireAuth())
		{
			reads.POST("", contentHandler.CreateRead)
			reads.GET("", contentHandler.ListReads)
			reads.GET("/today", contentHandler.TodayRead)
		}

		scriptures := api.Group("/scriptures")
		scriptures.Use(authMiddleware.RequireAuth())
		{
			scriptures.POST("", contentHandler.CreateScripture)
			scriptures.GET("", contentHandler.ListScriptures)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
