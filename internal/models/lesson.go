package models

import "time"

// Difficulty is the closed set of lesson difficulty levels. Catalogue
// filtering and label styling assume no other values exist.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a stored string to a Difficulty, reporting
// whether it is one of the known values.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// Valid reports whether the difficulty is one of the enumerated values.
func (d Difficulty) Valid() bool {
	_, ok := ParseDifficulty(string(d))
	return ok
}

// Lesson is an instructional content record with metadata and an
// optional uploaded attachment.
type Lesson struct {
	ID          int64
	Title       string
	Description string
	Content     string
	FilePath    string // relative path of the uploaded asset, empty when none
	Difficulty  Difficulty
	UploadedBy  string
	CreatedAt   time.Time
}
