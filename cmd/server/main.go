package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslib/backend/docs"
	"github.com/campuslib/backend/internal/config"
	"github.com/campuslib/backend/internal/handlers"
	mW "github.com/campuslib/backend/internal/middleware"
	"github.com/campuslib/backend/internal/registry"
	"github.com/campuslib/backend/internal/services"
	"github.com/campuslib/backend/internal/workers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Library Circulation Backend API
// @version 1.0
// @description API for library cataloguing and circulation management
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	// Set environment variable prefix
	viper.SetEnvPrefix("")

	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")
	viper.BindEnv("argon2.time", "ARGON2_TIME")
	viper.BindEnv("argon2.memory", "ARGON2_MEMORY")
	viper.BindEnv("argon2.threads", "ARGON2_THREADS")
	viper.BindEnv("argon2.key_length", "ARGON2_KEY_LENGTH")
	viper.BindEnv("argon2.salt_length", "ARGON2_SALT_LENGTH")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "Library Circulation Backend API"
	docs.SwaggerInfo.Description = "API for library cataloguing and circulation management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	circConfig := config.LoadCirculationConfig()

	// Initialize registries and seed demo data
	books := registry.NewBookRegistry()
	borrowers := registry.NewBorrowerRegistry()
	librarians := registry.NewLibrarianRegistry()
	registry.SeedBooks(books)
	registry.SeedBorrowers(borrowers)

	// Initialize services
	circulationService := services.NewCirculationService(books, borrowers, circConfig)
	catalogService := services.NewCatalogService(books)
	notificationService := services.NewNotificationService()
	authService := services.NewAuthService(librarians)

	circulationHandler := handlers.NewCirculationHandler(circulationService, notificationService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	borrowerHandler := handlers.NewBorrowerHandler(borrowers)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Background overdue sweeper
	sweeper := workers.NewSweeper(circulationService, notificationService, circConfig.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Static file server for book covers
	r.Handle("/static/covers/*", http.StripPrefix("/static/covers/",
		mW.StaticFileServer("./static/covers")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/register", authService.Register)
		r.Post("/auth/login", authService.Login)
		r.Post("/auth/logout", authService.Logout)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/auth/account", authService.GetAccount)

			// Catalog endpoints
			r.Get("/books", catalogHandler.ListBooks)
			r.Post("/books", catalogHandler.AddBook)
			r.Get("/books/statistics", catalogHandler.Statistics)
			r.Post("/books/bulk-delete", catalogHandler.BulkDelete)
			r.Get("/books/{bookId}", catalogHandler.GetBook)
			r.Put("/books/{bookId}", catalogHandler.UpdateBook)
			r.Delete("/books/{bookId}", catalogHandler.DeleteBook)

			// Borrower endpoints
			r.Get("/borrowers", borrowerHandler.ListBorrowers)
			r.Post("/borrowers", borrowerHandler.AddBorrower)

			// Circulation endpoints
			r.Get("/loans", circulationHandler.ListLoans)
			r.Post("/loans", circulationHandler.IssueLoan)
			r.Get("/loans/statistics", circulationHandler.Statistics)
			r.Post("/loans/sweep", circulationHandler.Sweep)
			r.Get("/loans/{loanId}", circulationHandler.GetLoan)
			r.Post("/loans/{loanId}/return", circulationHandler.ReturnLoan)
			r.Post("/loans/{loanId}/renew", circulationHandler.RenewLoan)

			// Notification endpoints
			r.Get("/notifications", notificationHandler.ListNotifications)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
