package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blogem/user-management/authenticator"
	"github.com/blogem/user-management/config"
	"github.com/blogem/user-management/controllers"
	"github.com/blogem/user-management/database"
	authmiddleware "github.com/blogem/user-management/middleware"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Initialize repositories
	repos := repositories.NewRepositories(database.GetBunDB())

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, cfg.AuthEnabled())

	// Operator login is optional
	var auth authenticator.Provider
	if cfg.AuthEnabled() {
		auth, err = authenticator.NewOpenIDProvider(context.Background(), authenticator.Config{
			IssuerURL:    cfg.OIDCIssuerURL,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			log.Fatalf("Failed to initialize OpenID provider: %v", err)
		}
	}

	// Set up router
	r, err := setupRouter(cfg, ctrl, auth)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("🚀 User Management starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DatabasePath)
	if !cfg.AuthEnabled() {
		fmt.Println("🔓 Operator login disabled (OIDC_ISSUER_URL not set)")
	}

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes; auth may be nil when login is disabled
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, auth authenticator.Provider) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "user_management_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.LoadOperator)
	r.Use(authmiddleware.AuditLogger(nil))

	r.NotFound(ctrl.Home.NotFound)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Home.Index) // Home page - shows landing or counts based on auth
	r.Group(func(r chi.Router) {
		if len(cfg.CORSAllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORSAllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				MaxAge:         300,
			}))
		}
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status": "healthy", "service": "user-management"}`)
		})
	})
	if auth != nil {
		r.Get("/login", ctrl.Auth.Login(auth))
		r.Get("/callback", ctrl.Auth.Callback(auth))
		r.Get("/logout", ctrl.Auth.Logout)
	}

	// PROTECTED ROUTES (authentication required when login is enabled)
	r.Group(func(r chi.Router) {
		if auth != nil {
			r.Use(authmiddleware.RequireAuth)
		}

		// User management routes
		r.Route("/users", func(r chi.Router) {
			r.Get("/", ctrl.Users.List)
			r.Get("/active", ctrl.Users.ListActive)
			r.Get("/notactive", ctrl.Users.ListInactive)
			r.Get("/add", ctrl.Users.Add)
			r.Post("/create", ctrl.Users.Create)
			r.Get("/{id}", ctrl.Users.View)
			r.Get("/{id}/edit", ctrl.Users.Edit)
			r.Post("/{id}", ctrl.Users.Update)
			r.Get("/{id}/logs", ctrl.Users.Logs)
			r.Post("/{id}/delete", ctrl.Users.Delete)
		})

		// Audit log routes
		r.Route("/logs", func(r chi.Router) {
			r.Get("/", ctrl.Logs.Index)
			r.Get("/{id}", ctrl.Logs.View)
		})
	})

	return r, nil
}
