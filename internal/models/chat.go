package models

import "time"

// Chat message senders.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one line of the dashboard helper conversation. History
// is stored verbatim and replayed on reload.
type ChatMessage struct {
	ID        int64
	UserID    int64
	Sender    string
	Text      string
	CreatedAt time.Time
}
