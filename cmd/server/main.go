package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"smartread/internal/audio"
	"smartread/internal/config"
	"smartread/internal/database"
	"smartread/internal/handlers"
	"smartread/internal/models"
	"smartread/internal/phonics"
	"smartread/internal/repository"
	"smartread/internal/security"
	"smartread/internal/service"
	"smartread/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	if err := db.SeedStarterData(); err != nil {
		log.Printf("Warning: Failed to seed starter data: %v", err)
	}

	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Lesson attachments go to B2 when configured, local disk otherwise
	uploader, uploadBaseURL, err := buildUploader(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	var emailService *service.EmailService
	if cfg.SESFromEmail != "" {
		emailService, err = service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize email service: %v", err)
		}
	}

	// Services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration, cfg.SessionSecret)
	rosterService := service.NewRosterService(studentRepo, lessonRepo)
	lessonService := service.NewLessonService(lessonRepo, uploader, uploadBaseURL)
	chatService := service.NewChatService(chatRepo)
	ttsService := audio.NewTTSService(filepath.Join(cfg.StaticFilesPath, "audio"))

	// Pre-generating vowel word audio is best effort
	go func() {
		if err := ttsService.WarmCache(phonics.AllWords()); err != nil {
			log.Printf("Warning: Failed to warm audio cache: %v", err)
		}
	}()

	oauthProviders := map[string]handlers.OAuthProvider{
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
	}

	// Handlers
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	middleware := handlers.NewMiddleware(authService, rosterService, csrf)
	authHandler := handlers.NewAuthHandler(authService, rosterService, emailService, middleware, templates, oauthProviders, cfg.OAuthRedirectBaseURL)
	dashboardHandler := handlers.NewDashboardHandler(lessonService, rosterService, chatService, middleware, templates)
	lessonHandler := handlers.NewLessonHandler(lessonService, middleware, templates, cfg.UploadMaxSize)
	phonicsHandler := handlers.NewPhonicsHandler(ttsService, middleware, templates)
	chatHandler := handlers.NewChatHandler(chatService, lessonService)

	// Routes
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Public routes
	mux.HandleFunc("GET /", authHandler.Home)
	mux.HandleFunc("GET /login", authHandler.ShowLogin)
	mux.HandleFunc("POST /login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /register", authHandler.ShowRegister)
	mux.HandleFunc("POST /register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("GET /student-login", authHandler.ShowStudentLogin)
	mux.HandleFunc("POST /student-login", middleware.RateLimit(authHandler.StudentLogin))
	mux.HandleFunc("GET /student-register", authHandler.ShowStudentRegister)
	mux.HandleFunc("POST /student-register", middleware.RateLimit(authHandler.StudentRegister))
	mux.HandleFunc("GET /forgot-password", authHandler.ShowForgotPassword)
	mux.HandleFunc("POST /forgot-password", middleware.RateLimit(authHandler.ForgotPassword))
	mux.HandleFunc("GET /reset-password", authHandler.ShowResetPassword)
	mux.HandleFunc("POST /reset-password", middleware.RateLimit(authHandler.ResetPassword))
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Student dashboard and chat
	studentOnly := []models.Role{models.RoleStudent}
	mux.HandleFunc("GET /student", middleware.RequireRoles(dashboardHandler.StudentDashboard, studentOnly...))
	mux.HandleFunc("POST /student/chat", middleware.RequireRoles(middleware.CSRFProtect(chatHandler.Send), studentOnly...))

	// Vowel mini-game. Open to everyone; the state is a throwaway
	// in-memory game keyed by a player cookie, so no CSRF token here.
	mux.HandleFunc("GET /lessons/vowel", phonicsHandler.ShowVowelSelect)
	mux.HandleFunc("GET /lessons/vowel/{vowel}", phonicsHandler.ShowFlashcard)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/prev", phonicsHandler.PrevCard)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/next", phonicsHandler.NextCard)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/spell", phonicsHandler.SpellWord)
	mux.HandleFunc("GET /lessons/vowel/{vowel}/quiz", phonicsHandler.ShowQuiz)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/quiz/select", phonicsHandler.SelectAnswer)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/quiz/submit", phonicsHandler.SubmitAnswer)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/quiz/next", phonicsHandler.AdvanceQuiz)
	mux.HandleFunc("GET /lessons/vowel/{vowel}/results", phonicsHandler.ShowResults)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/restart", phonicsHandler.RestartGame)
	mux.HandleFunc("POST /lessons/vowel/{vowel}/exit", phonicsHandler.ExitGame)

	// Lessons catalogue: browsing for everyone signed in, management
	// for admins only
	allRoles := []models.Role{models.RoleStudent, models.RoleAdmin, models.RoleGuardian}
	adminOnly := []models.Role{models.RoleAdmin}
	mux.HandleFunc("GET /lessons", middleware.RequireRoles(lessonHandler.ListLessons, allRoles...))
	mux.HandleFunc("GET /lessons/new", middleware.RequireRoles(lessonHandler.ShowCreateLesson, adminOnly...))
	mux.HandleFunc("POST /lessons", middleware.RequireRoles(middleware.MaxBytes(cfg.UploadMaxSize, middleware.CSRFProtect(lessonHandler.CreateLesson)), adminOnly...))
	mux.HandleFunc("GET /lessons/{id}", middleware.RequireRoles(lessonHandler.ShowLesson, allRoles...))
	mux.HandleFunc("GET /lessons/{id}/edit", middleware.RequireRoles(lessonHandler.ShowEditLesson, adminOnly...))
	mux.HandleFunc("POST /lessons/{id}", middleware.RequireRoles(middleware.MaxBytes(cfg.UploadMaxSize, middleware.CSRFProtect(lessonHandler.UpdateLesson)), adminOnly...))
	mux.HandleFunc("POST /lessons/{id}/delete", middleware.RequireRoles(middleware.CSRFProtect(lessonHandler.DeleteLesson), adminOnly...))

	// Staff dashboards
	mux.HandleFunc("GET /admin", middleware.RequireRoles(dashboardHandler.AdminDashboard, models.RoleAdmin))
	mux.HandleFunc("GET /guardian", middleware.RequireRoles(dashboardHandler.GuardianDashboard, models.RoleGuardian))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go cleanupExpiredSessions(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// buildUploader picks the attachment backend from configuration.
// B2 object URLs are absolute, so the base URL is left empty for it.
func buildUploader(cfg *config.Config) (storage.Uploader, string, error) {
	if cfg.B2KeyID != "" && cfg.B2AppKey != "" && cfg.B2Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := storage.NewB2Store(ctx, cfg.B2KeyID, cfg.B2AppKey, cfg.B2Bucket)
		if err != nil {
			return nil, "", fmt.Errorf("failed to connect to B2: %w", err)
		}
		log.Printf("Lesson uploads stored in B2 bucket %s", cfg.B2Bucket)
		return store, "", nil
	}

	store, err := storage.NewLocalStore(cfg.UploadsPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return store, cfg.UploadBaseURL, nil
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	patterns := []string{
		filepath.Join(templatesPath, "*.tmpl"),
		filepath.Join(templatesPath, "auth/*.tmpl"),
		filepath.Join(templatesPath, "dashboards/*.tmpl"),
		filepath.Join(templatesPath, "lessons/*.tmpl"),
		filepath.Join(templatesPath, "phonics/*.tmpl"),
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"upper": strings.ToUpper,
		"splitLetters": func(s string) []string {
			return strings.Split(s, "")
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
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
