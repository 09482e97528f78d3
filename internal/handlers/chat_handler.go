package handlers

import (
	"encoding/json"
	"net/http"

	"smartread/internal/service"
)

// ChatHandler handles the dashboard assistant endpoint
type ChatHandler struct {
	chatService   *service.ChatService
	lessonService *service.LessonService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, lessonService *service.LessonService) *ChatHandler {
	return &ChatHandler{
		chatService:   chatService,
		lessonService: lessonService,
	}
}

// Send accepts a chat message and returns the assistant's reply as JSON
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	message := r.FormValue("message")

	lessons, err := h.lessonService.ListLessons()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing lessons", err)
		return
	}

	continueLessons, achievements := dashboardSections(lessons)
	counts := service.ChatCounts{
		Available:  len(lessons),
		InProgress: len(continueLessons),
		Completed:  len(achievements),
	}

	reply, err := h.chatService.Send(user.ID, message, counts)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error sending chat message", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"reply": reply,
	})
}
