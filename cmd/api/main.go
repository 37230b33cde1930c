// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/cipherhaven/cipherhaven/internal/auth"
	"github.com/cipherhaven/cipherhaven/internal/config"
	"github.com/cipherhaven/cipherhaven/internal/email"
	"github.com/cipherhaven/cipherhaven/internal/handler"
	"github.com/cipherhaven/cipherhaven/internal/middleware"
	"github.com/cipherhaven/cipherhaven/internal/model"
	"github.com/cipherhaven/cipherhaven/internal/repository"
	"github.com/cipherhaven/cipherhaven/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	grantRepo := repository.NewGrantRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// One lock keyed by organization serializes every membership mutation.
	locker := service.NewOrgLocker()

	// Initialize services
	orgService := service.NewOrganizationService(orgRepo, membershipRepo, userRepo, passwordHasher, locker)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, orgRepo, collectionRepo, emailService, locker)
	collectionService := service.NewCollectionService(collectionRepo, grantRepo, membershipRepo, orgRepo)

	// Initialize handlers
	orgHandler := handler.NewOrganizationHandler(orgService)
	membershipHandler := handler.NewMembershipHandler(membershipService, collectionService)
	collectionHandler := handler.NewCollectionHandler(collectionService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Use(middleware.AuthMiddleware(tokenManager))

		r.Post("/organizations", orgHandler.Create)
		r.Get("/collections", collectionHandler.ListMine)

		r.Route("/organizations/{orgID}", func(r chi.Router) {
			// The invitee accepts their own invitation; they hold no
			// confirmed role yet, so no organization scoping here.
			r.Post("/users/{membershipID}/accept", membershipHandler.Accept)

			// Owner-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOrgMember(membershipRepo, model.RoleOwner))

				r.Get("/", orgHandler.Get)
				r.Post("/", orgHandler.Update)
				r.Post("/delete", orgHandler.Delete)
			})

			// Admin-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOrgMember(membershipRepo, model.RoleAdmin))

				r.Get("/users", orgHandler.ListUsers)
				r.Post("/users/invite", membershipHandler.Invite)
				r.Get("/users/{membershipID}", membershipHandler.Get)
				r.Post("/users/{membershipID}", membershipHandler.Update)
				r.Post("/users/{membershipID}/role", membershipHandler.SetRole)
				r.Post("/users/{membershipID}/grants", membershipHandler.ReplaceGrants)
				r.Post("/users/{membershipID}/confirm", membershipHandler.Confirm)
				r.Post("/users/{membershipID}/delete", membershipHandler.Delete)

				r.Get("/collections", collectionHandler.ListOrg)
				r.Post("/collections", collectionHandler.Create)
				r.Post("/collections/{collectionID}", collectionHandler.Update)
				r.Post("/collections/{collectionID}/delete", collectionHandler.Delete)
				r.Get("/collections/{collectionID}/details", collectionHandler.Detail)
				r.Get("/collections/{collectionID}/users", collectionHandler.Users)
				r.Post("/collections/{collectionID}/delete-user/{membershipID}", collectionHandler.DeleteUser)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"error", errors.New("panic recovered"),
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
