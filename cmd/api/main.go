//	@title			Recette API
//	@version		1.0
//	@description	Media-asset ingestion service: image upload, retrieval, and deletion over pluggable storage backends.
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/recette/api/internal/config"
	"github.com/recette/api/internal/db"
	"github.com/recette/api/internal/image"
	appMiddleware "github.com/recette/api/internal/middleware"
	"github.com/recette/api/internal/status"
	"github.com/recette/api/internal/storage"

	_ "github.com/recette/api/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewBackend(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	imageSvc := image.NewService(store)
	imageHandler := image.NewHandler(imageSvc)

	statusRepo := status.NewRepository(pool)
	statusSvc := status.NewService(statusRepo)
	statusHandler := status.NewHandler(statusSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Liveness probe
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		// Asset management, optionally behind the access guard
		r.Group(func(r chi.Router) {
			if cfg.AuthEnabled {
				r.Use(appMiddleware.RequireAuth(cfg.JWTSecret))
			}
			r.Post("/upload-image", imageHandler.Upload)
			r.Delete("/delete-image", imageHandler.Delete)
			if imageSvc.ServesFiles() {
				r.Delete("/images/{filename}", imageHandler.DeleteByPath)
			}
		})

		// Read-back path exists only for the filesystem backend; remote
		// assets are fetched from their CDN URL directly.
		if imageSvc.ServesFiles() {
			r.Get("/images/{filename}", imageHandler.Serve)
		}

		// Status checks
		r.Post("/status", statusHandler.Create)
		r.Get("/status", statusHandler.List)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, storage=%s, auth=%v)",
			cfg.Port, cfg.AppEnv, cfg.StorageBackend, cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
