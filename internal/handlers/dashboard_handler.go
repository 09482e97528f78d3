package handlers

import (
	"html/template"
	"log"
	"net/http"

	"smartread/internal/models"
	"smartread/internal/service"
)

// DashboardHandler renders the role dashboards
type DashboardHandler struct {
	lessonService *service.LessonService
	rosterService *service.RosterService
	chatService   *service.ChatService
	middleware    *Middleware
	templates     *template.Template
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(lessonService *service.LessonService, rosterService *service.RosterService, chatService *service.ChatService, middleware *Middleware, templates *template.Template) *DashboardHandler {
	return &DashboardHandler{
		lessonService: lessonService,
		rosterService: rosterService,
		chatService:   chatService,
		middleware:    middleware,
		templates:     templates,
	}
}

// StudentDashboard shows the learning overview: new lessons, the
// continue-learning strip, achievements and the chat helper.
func (h *DashboardHandler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	lessons, err := h.lessonService.ListLessons()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing lessons", err)
		return
	}

	continueLessons, achievements := dashboardSections(lessons)

	messages, err := h.chatService.History(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading chat history", err)
		return
	}

	data := StudentDashboardViewData{
		Title:           "My Dashboard - SmartRead",
		User:            user,
		NewLessons:      lessons,
		ContinueLessons: continueLessons,
		Achievements:    achievements,
		Available:       len(lessons),
		InProgress:      len(continueLessons),
		Completed:       len(achievements),
		ChatMessages:    messages,
		CSRFToken:       h.middleware.CSRFToken(r),
	}
	h.render(w, "student_dashboard.tmpl", data)
}

// AdminDashboard shows the admin's own uploads and the class roster
func (h *DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	lessons, err := h.lessonService.ListLessonsByUploader(user.Username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing lessons", err)
		return
	}

	students, err := h.rosterService.ListStudents()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing students", err)
		return
	}

	data := AdminDashboardViewData{
		Title:     "Admin Dashboard - SmartRead",
		User:      user,
		Lessons:   lessons,
		Students:  students,
		CSRFToken: h.middleware.CSRFToken(r),
	}
	h.render(w, "admin_dashboard.tmpl", data)
}

// GuardianDashboard shows the roster progress overview
func (h *DashboardHandler) GuardianDashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	students, err := h.rosterService.ListStudents()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing students", err)
		return
	}

	data := GuardianDashboardViewData{
		Title:    "Guardian Dashboard - SmartRead",
		User:     user,
		Students: students,
	}
	h.render(w, "guardian_dashboard.tmpl", data)
}

// dashboardSections slices the catalogue into the continue-learning and
// achievements strips shown on the student dashboard.
func dashboardSections(lessons []models.Lesson) (continueLessons, achievements []models.Lesson) {
	return sliceLessons(lessons, 1, 3), sliceLessons(lessons, 3, 5)
}

func sliceLessons(lessons []models.Lesson, from, to int) []models.Lesson {
	if from > len(lessons) {
		from = len(lessons)
	}
	if to > len(lessons) {
		to = len(lessons)
	}
	return lessons[from:to]
}

func (h *DashboardHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}
