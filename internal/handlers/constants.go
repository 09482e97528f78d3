package handlers

const (
	SessionCookieName = "session_id"
	StudentCookieName = "student_id"
	PlayerCookieName  = "player_id"

	ErrInvalidFormData     = "Invalid form data"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"
)
