package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"smartread/internal/models"
	"smartread/internal/security"
	"smartread/internal/service"
)

const studentCookieTTL = 24 * time.Hour

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService          *service.AuthService
	rosterService        *service.RosterService
	emailService         *service.EmailService
	middleware           *Middleware
	templates            *template.Template
	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, rosterService *service.RosterService, emailService *service.EmailService, middleware *Middleware, templates *template.Template, oauthProviders map[string]OAuthProvider, oauthRedirectBaseURL string) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		rosterService:        rosterService,
		emailService:         emailService,
		middleware:           middleware,
		templates:            templates,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
	}
}

// Home sends visitors to their dashboard, or to login
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// NotFound renders the not-found page
func (h *AuthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := NotFoundViewData{
		Title: "Page Not Found - SmartRead",
		User:  h.middleware.CurrentUser(w, r),
	}
	if err := h.templates.ExecuteTemplate(w, "not_found.tmpl", data); err != nil {
		log.Printf("Error rendering not found template: %v", err)
	}
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}

	data := LoginViewData{
		Title:          "Login - SmartRead",
		OAuthProviders: h.oauthProviderViews(),
	}
	h.render(w, "login.tmpl", data)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	session, user, err := h.authService.Login(email, password)
	if err != nil {
		data := LoginViewData{
			Title:          "Login - SmartRead",
			Error:          "Invalid email or password",
			Email:          email,
			OAuthProviders: h.oauthProviderViews(),
		}
		h.render(w, "login.tmpl", data)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
}

// ShowRegister renders the registration page
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}

	data := RegisterViewData{
		Title:          "Register - SmartRead",
		OAuthProviders: h.oauthProviderViews(),
	}
	h.render(w, "register.tmpl", data)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	roleValue := r.FormValue("role")

	role, ok := models.ParseRole(roleValue)
	if !ok {
		role = models.RoleStudent
	}

	session, user, err := h.authService.Register(name, email, password, role)
	if err != nil {
		data := RegisterViewData{
			Title:          "Register - SmartRead",
			Error:          err.Error(),
			Email:          email,
			Name:           name,
			Role:           roleValue,
			OAuthProviders: h.oauthProviderViews(),
		}
		h.render(w, "register.tmpl", data)
		return
	}

	if h.emailService != nil && h.emailService.IsEnabled() {
		if err := h.emailService.SendWelcomeEmail(r.Context(), user.Email, user.Username); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
}

// ShowStudentLogin renders the name-only roster login page
func (h *AuthHandler) ShowStudentLogin(w http.ResponseWriter, r *http.Request) {
	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}

	data := StudentLoginViewData{
		Title: "Student Login - SmartRead",
	}
	h.render(w, "student_login.tmpl", data)
}

// StudentLogin signs a roster student in by name
func (h *AuthHandler) StudentLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")

	student, err := h.rosterService.LoginByName(name)
	if err != nil {
		message := "We couldn't find that name. Check the spelling or register below!"
		if err != service.ErrStudentNotFound {
			message = err.Error()
		}
		data := StudentLoginViewData{
			Title: "Student Login - SmartRead",
			Error: message,
			Name:  name,
		}
		h.render(w, "student_login.tmpl", data)
		return
	}

	h.setStudentCookie(w, r, student)
	http.Redirect(w, r, "/student", http.StatusSeeOther)
}

// ShowStudentRegister renders the roster registration page
func (h *AuthHandler) ShowStudentRegister(w http.ResponseWriter, r *http.Request) {
	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}

	data := StudentRegisterViewData{
		Title: "Join SmartRead",
	}
	h.render(w, "student_register.tmpl", data)
}

// StudentRegister adds a student to the roster and signs them in
func (h *AuthHandler) StudentRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	gradeLevel := r.FormValue("grade_level")

	student, err := h.rosterService.RegisterStudent(name, gradeLevel)
	if err != nil {
		message := err.Error()
		if err == service.ErrNameTaken {
			message = "That name is already on the roster. Try logging in instead!"
		}
		data := StudentRegisterViewData{
			Title:      "Join SmartRead",
			Error:      message,
			Name:       name,
			GradeLevel: gradeLevel,
		}
		h.render(w, "student_register.tmpl", data)
		return
	}

	h.setStudentCookie(w, r, student)
	http.Redirect(w, r, "/student", http.StatusSeeOther)
}

// ShowForgotPassword renders the password reset request page
func (h *AuthHandler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	data := ForgotPasswordViewData{
		Title: "Forgot Password - SmartRead",
	}
	h.render(w, "forgot_password.tmpl", data)
}

// ForgotPassword emails a reset link. The response does not reveal
// whether the address exists.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")

	if err := h.authService.RequestPasswordReset(r.Context(), h.emailService, email); err != nil {
		log.Printf("Error requesting password reset: %v", err)
	}

	data := ForgotPasswordViewData{
		Title:   "Forgot Password - SmartRead",
		Success: "If an account exists for that address, a reset link is on its way.",
	}
	h.render(w, "forgot_password.tmpl", data)
}

// ShowResetPassword renders the new-password form for a reset link
func (h *AuthHandler) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if _, err := h.authService.ValidatePasswordResetToken(token); err != nil {
		data := LoginViewData{
			Title:          "Login - SmartRead",
			Error:          "That reset link is invalid or has expired. Please request a new one.",
			OAuthProviders: h.oauthProviderViews(),
		}
		h.render(w, "login.tmpl", data)
		return
	}

	data := ResetPasswordViewData{
		Title: "Reset Password - SmartRead",
		Token: token,
	}
	h.render(w, "reset_password.tmpl", data)
}

// ResetPassword sets the new password from a valid reset token
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	token := r.FormValue("token")
	password := r.FormValue("password")

	if err := h.authService.ResetPassword(token, password); err != nil {
		data := ResetPasswordViewData{
			Title: "Reset Password - SmartRead",
			Token: token,
			Error: err.Error(),
		}
		h.render(w, "reset_password.tmpl", data)
		return
	}

	data := LoginViewData{
		Title:          "Login - SmartRead",
		Success:        "Your password has been reset. You can log in now.",
		OAuthProviders: h.oauthProviderViews(),
	}
	h.render(w, "login.tmpl", data)
}

// Logout ends the account or roster session and clears cookies
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		_ = h.authService.Logout(cookie.Value)
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	http.SetCookie(w, security.CreateDeleteCookie(r, StudentCookieName))

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setStudentCookie(w http.ResponseWriter, r *http.Request, student *models.Student) {
	expires := time.Now().Add(studentCookieTTL)
	value := strconv.FormatInt(student.ID, 10)
	http.SetCookie(w, security.CreateSessionCookie(r, StudentCookieName, value, expires))
}

func (h *AuthHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}
