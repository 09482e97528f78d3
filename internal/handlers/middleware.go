package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"smartread/internal/models"
	"smartread/internal/security"
	"smartread/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserContextKey ContextKey = "user"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService   *service.AuthService
	rosterService *service.RosterService
	csrf          *security.CSRFGenerator
	limiter       *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, rosterService *service.RosterService, csrf *security.CSRFGenerator) *Middleware {
	return &Middleware{
		authService:   authService,
		rosterService: rosterService,
		csrf:          csrf,
		limiter:       security.NewRateLimiter(10, time.Minute),
	}
}

// CurrentUser resolves the signed-in identity from the request cookies.
// Account sessions take precedence; a roster student cookie is adapted
// into a student identity. Returns nil when nobody is signed in.
func (m *Middleware) CurrentUser(w http.ResponseWriter, r *http.Request) *models.User {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		user, err := m.authService.ValidateSession(cookie.Value)
		if err == nil {
			return user
		}
		http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	}

	if cookie, err := r.Cookie(StudentCookieName); err == nil && cookie.Value != "" {
		studentID, err := strconv.ParseInt(cookie.Value, 10, 64)
		if err == nil {
			student, err := m.rosterService.GetStudent(studentID)
			if err == nil {
				return StudentIdentity(student)
			}
		}
		http.SetCookie(w, security.CreateDeleteCookie(r, StudentCookieName))
	}

	return nil
}

// StudentIdentity adapts a roster entry into a signed-in identity.
// Roster IDs are negated so they never collide with account IDs in
// tables shared by both kinds of identity.
func StudentIdentity(student *models.Student) *models.User {
	return &models.User{
		ID:       -student.ID,
		Username: student.Name,
		Role:     models.RoleStudent,
	}
}

// RequireRoles gates a page to the given roles. Anonymous visitors go
// to the login page; signed-in visitors with a different role go to
// their own dashboard.
func (m *Middleware) RequireRoles(next http.HandlerFunc, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := m.CurrentUser(w, r)

		outcome, target := DecideGate(roles, user)
		if outcome != GateRender {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// CSRFProtect validates the csrf_token form field against the session
// cookie before letting a mutation through.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			// Roster students mutate nothing CSRF-sensitive; their
			// cookie doubles as the token scope.
			cookie, err = r.Cookie(StudentCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, ErrUnauthorized, http.StatusForbidden)
				return
			}
		}

		// FormValue parses urlencoded and multipart bodies alike
		token := r.FormValue("csrf_token")
		if !m.csrf.ValidateToken(cookie.Value, token) {
			http.Error(w, "Invalid CSRF token", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

// CSRFToken returns the token the forms on a page should carry
func (m *Middleware) CSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		cookie, err = r.Cookie(StudentCookieName)
		if err != nil || cookie.Value == "" {
			return ""
		}
	}
	token, err := m.csrf.GenerateToken(cookie.Value)
	if err != nil {
		return ""
	}
	return token
}

// MaxBytes caps the request body size. It must wrap anything that
// parses the body, including CSRFProtect.
func (m *Middleware) MaxBytes(limit int64, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next(w, r)
	}
}

// RateLimit throttles credential endpoints per client IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
