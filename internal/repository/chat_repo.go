package repository

import (
	"fmt"

	"smartread/internal/database"
	"smartread/internal/models"
)

// ChatRepository handles database operations for chat transcripts
type ChatRepository struct {
	db *database.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *database.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// AppendMessage stores a single chat message for a user
func (r *ChatRepository) AppendMessage(userID int64, sender, text string) (*models.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (user_id, sender, text)
		VALUES (?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, sender, text)
	if err != nil {
		return nil, fmt.Errorf("failed to append chat message: %w", err)
	}

	return &models.ChatMessage{
		ID:     id,
		UserID: userID,
		Sender: sender,
		Text:   text,
	}, nil
}

// ListMessagesForUser returns a user's transcript in send order
func (r *ChatRepository) ListMessagesForUser(userID int64) ([]models.ChatMessage, error) {
	query := `
		SELECT id, user_id, sender, text, created_at
		FROM chat_messages
		WHERE user_id = ?
		ORDER BY id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// ClearMessagesForUser deletes a user's transcript
func (r *ChatRepository) ClearMessagesForUser(userID int64) error {
	query := "DELETE FROM chat_messages WHERE user_id = ?"
	_, err := r.db.Exec(query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear chat messages: %w", err)
	}
	return nil
}
