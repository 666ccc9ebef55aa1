package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yamsoo/internal/config"
	"yamsoo/internal/database"
	"yamsoo/internal/handlers"
	"yamsoo/internal/relation"
	"yamsoo/internal/repository"
	"yamsoo/internal/security"
	"yamsoo/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed the relationship type catalog for display
	catalog := relation.DefaultCatalog()
	if err := db.SeedRelationshipTypes(catalog); err != nil {
		log.Printf("Warning: Failed to seed relationship types: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	authService := service.NewAuthService(userRepo, profileRepo, cfg.SessionDuration)
	profileService := service.NewProfileService(profileRepo)
	inferenceService := service.NewInferenceService(profileRepo)
	relationshipService := service.NewRelationshipService(db, userRepo, profileRepo, relationshipRepo,
		requestRepo, catalog, inferenceService, emailService)
	suggestionService := service.NewSuggestionService(suggestionRepo, relationshipRepo, profileRepo, relationshipService)

	oauthProviders := buildOAuthProviders(cfg)

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	loginLimiter := security.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	middleware := handlers.NewMiddleware(authService, csrf)
	authHandler := handlers.NewAuthHandler(authService, emailService, csrf, oauthProviders, cfg.OAuthRedirectBaseURL)
	profileHandler := handlers.NewProfileHandler(profileService)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipService, cfg.DefaultLocale)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/register", handlers.RateLimit(loginLimiter, authHandler.Register))
	mux.HandleFunc("POST /api/login", handlers.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/oauth/providers", authHandler.Providers)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Account routes
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(profileHandler.Get))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(middleware.CSRFProtect(profileHandler.Update)))
	mux.HandleFunc("GET /api/users/search", middleware.RequireAuth(relationshipHandler.SearchUsers))

	// Relationship routes
	mux.HandleFunc("GET /api/relationships", middleware.RequireAuth(relationshipHandler.ListRelationships))
	mux.HandleFunc("GET /api/relationships/tree", middleware.RequireAuth(relationshipHandler.FamilyTree))
	mux.HandleFunc("POST /api/relationships/requests", middleware.RequireAuth(middleware.CSRFProtect(relationshipHandler.CreateRequest)))
	mux.HandleFunc("GET /api/relationships/requests/received", middleware.RequireAuth(relationshipHandler.ListReceivedRequests))
	mux.HandleFunc("GET /api/relationships/requests/sent", middleware.RequireAuth(relationshipHandler.ListSentRequests))
	mux.HandleFunc("POST /api/relationships/requests/{id}/accept", middleware.RequireAuth(middleware.CSRFProtect(relationshipHandler.AcceptRequest)))
	mux.HandleFunc("POST /api/relationships/requests/{id}/reject", middleware.RequireAuth(middleware.CSRFProtect(relationshipHandler.RejectRequest)))
	mux.HandleFunc("DELETE /api/relationships/requests/{id}", middleware.RequireAuth(middleware.CSRFProtect(relationshipHandler.CancelRequest)))

	// Suggestion routes
	mux.HandleFunc("GET /api/suggestions", middleware.RequireAuth(suggestionHandler.List))
	mux.HandleFunc("POST /api/suggestions/{id}/accept", middleware.RequireAuth(middleware.CSRFProtect(suggestionHandler.Accept)))
	mux.HandleFunc("POST /api/suggestions/{id}/reject", middleware.RequireAuth(middleware.CSRFProtect(suggestionHandler.Reject)))
	mux.HandleFunc("POST /api/suggestions/generate", middleware.RequireAdmin(middleware.CSRFProtect(suggestionHandler.Generate)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// buildOAuthProviders assembles provider configs. Providers with
// missing credentials stay in the map but are treated as disabled.
func buildOAuthProviders(cfg *config.Config) map[string]handlers.OAuthProvider {
	appleClientSecret, err := handlers.BuildAppleClientSecret(cfg.AppleTeamID, cfg.AppleKeyID, cfg.AppleClientID, cfg.ApplePrivateKey)
	if err != nil {
		log.Printf("Warning: Apple sign-in disabled: %v", err)
		appleClientSecret = ""
	}

	return map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"facebook": {
			Name:  "facebook",
			Label: "Facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email", "public_profile"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		},
		"apple": {
			Name:  "apple",
			Label: "Apple",
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: appleClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://appleid.apple.com/auth/authorize",
					TokenURL: "https://appleid.apple.com/auth/token",
				},
				Scopes: []string{"name", "email"},
			},
			AuthParams: map[string]string{
				"response_mode": "query",
			},
		},
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
