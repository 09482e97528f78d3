package handlers

import (
	"html/template"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"smartread/internal/models"
	"smartread/internal/service"
)

// LessonHandler handles lesson catalogue HTTP requests
type LessonHandler struct {
	lessonService *service.LessonService
	middleware    *Middleware
	templates     *template.Template
	maxUploadSize int64
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessonService *service.LessonService, middleware *Middleware, templates *template.Template, maxUploadSize int64) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
		middleware:    middleware,
		templates:     templates,
		maxUploadSize: maxUploadSize,
	}
}

// ListLessons shows the catalogue with optional search and difficulty
// filters. Every role sees the same catalogue; admins also get manage
// actions.
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	lessons, err := h.lessonService.ListLessons()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing lessons", err)
		return
	}

	searchTerm := r.URL.Query().Get("q")
	difficultyValue := r.URL.Query().Get("difficulty")
	difficulty, _ := models.ParseDifficulty(difficultyValue)

	filtered := service.FilterLessons(lessons, searchTerm, difficulty)

	views := make([]LessonView, 0, len(filtered))
	for _, lesson := range filtered {
		views = append(views, LessonView{
			Lesson:  lesson,
			FileURL: h.lessonService.FileURL(&lesson),
		})
	}

	data := LessonListViewData{
		Title:      "Lessons - SmartRead",
		User:       user,
		Lessons:    views,
		SearchTerm: searchTerm,
		Difficulty: difficultyValue,
		CanManage:  user.Role == models.RoleAdmin,
		CSRFToken:  h.middleware.CSRFToken(r),
	}
	h.render(w, "lessons.tmpl", data)
}

// ShowLesson displays a single lesson
func (h *LessonHandler) ShowLesson(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	lesson, err := h.lessonByPath(w, r)
	if lesson == nil || err != nil {
		return
	}

	data := LessonDetailViewData{
		Title:     lesson.Title + " - SmartRead",
		User:      user,
		Lesson:    lesson,
		FileURL:   h.lessonService.FileURL(lesson),
		CanManage: user != nil && user.Role == models.RoleAdmin,
		CSRFToken: h.middleware.CSRFToken(r),
	}
	h.render(w, "lesson_view.tmpl", data)
}

// ShowCreateLesson renders the empty lesson form
func (h *LessonHandler) ShowCreateLesson(w http.ResponseWriter, r *http.Request) {
	data := LessonEditViewData{
		Title:     "New Lesson - SmartRead",
		User:      GetUserFromContext(r.Context()),
		CSRFToken: h.middleware.CSRFToken(r),
	}
	h.render(w, "lesson_edit.tmpl", data)
}

// CreateLesson handles the new-lesson form, including the optional
// attachment upload.
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	filename, file, ok := h.parseLessonForm(w, r)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	lesson := &models.Lesson{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Content:     r.FormValue("content"),
		Difficulty:  models.Difficulty(r.FormValue("difficulty")),
		UploadedBy:  user.Username,
	}

	var reader io.Reader
	if file != nil {
		reader = file
	}

	created, err := h.lessonService.CreateLesson(r.Context(), lesson, filename, reader)
	if err != nil {
		data := LessonEditViewData{
			Title:     "New Lesson - SmartRead",
			User:      user,
			Lesson:    lesson,
			Error:     err.Error(),
			CSRFToken: h.middleware.CSRFToken(r),
		}
		h.render(w, "lesson_edit.tmpl", data)
		return
	}

	http.Redirect(w, r, "/lessons/"+strconv.FormatInt(created.ID, 10), http.StatusSeeOther)
}

// ShowEditLesson renders the edit form for an existing lesson
func (h *LessonHandler) ShowEditLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.lessonByPath(w, r)
	if lesson == nil || err != nil {
		return
	}

	data := LessonEditViewData{
		Title:     "Edit Lesson - SmartRead",
		User:      GetUserFromContext(r.Context()),
		Lesson:    lesson,
		CSRFToken: h.middleware.CSRFToken(r),
	}
	h.render(w, "lesson_edit.tmpl", data)
}

// UpdateLesson handles the edit form. The attachment is only replaced
// when a new file is uploaded.
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.lessonByPath(w, r)
	if lesson == nil || err != nil {
		return
	}

	filename, file, ok := h.parseLessonForm(w, r)
	if !ok {
		return
	}
	if file != nil {
		defer file.Close()
	}

	var reader io.Reader
	if file != nil {
		reader = file
	}

	err = h.lessonService.UpdateLesson(
		r.Context(),
		lesson.ID,
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("content"),
		models.Difficulty(r.FormValue("difficulty")),
		filename,
		reader,
	)
	if err != nil {
		data := LessonEditViewData{
			Title:     "Edit Lesson - SmartRead",
			User:      GetUserFromContext(r.Context()),
			Lesson:    lesson,
			Error:     err.Error(),
			CSRFToken: h.middleware.CSRFToken(r),
		}
		h.render(w, "lesson_edit.tmpl", data)
		return
	}

	http.Redirect(w, r, "/lessons/"+strconv.FormatInt(lesson.ID, 10), http.StatusSeeOther)
}

// DeleteLesson removes a lesson from the catalogue
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.lessonByPath(w, r)
	if lesson == nil || err != nil {
		return
	}

	if err := h.lessonService.DeleteLesson(lesson.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error deleting lesson", err)
		return
	}

	http.Redirect(w, r, "/lessons", http.StatusSeeOther)
}

// lessonByPath resolves the {id} path segment to a lesson, writing the
// error response itself when the lesson cannot be loaded.
func (h *LessonHandler) lessonByPath(w http.ResponseWriter, r *http.Request) (*models.Lesson, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid lesson ID", http.StatusBadRequest)
		return nil, err
	}

	lesson, err := h.lessonService.GetLesson(id)
	if err == service.ErrLessonNotFound {
		http.NotFound(w, r)
		return nil, err
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading lesson", err)
		return nil, err
	}

	return lesson, nil
}

// parseLessonForm reads the multipart lesson form. The file return is
// nil when no attachment was uploaded.
func (h *LessonHandler) parseLessonForm(w http.ResponseWriter, r *http.Request) (string, multipart.File, bool) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		http.Error(w, "Upload too large or invalid form data", http.StatusBadRequest)
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return "", nil, true
	}
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return "", nil, false
	}

	return header.Filename, file, true
}

func (h *LessonHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}
