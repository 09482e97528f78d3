package repository

import (
	"database/sql"
	"fmt"

	"smartread/internal/database"
	"smartread/internal/models"
)

// LessonRepository handles database operations for the lessons catalogue
type LessonRepository struct {
	db *database.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *database.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

const lessonColumns = "id, title, description, content, file_path, difficulty, uploaded_by, created_at"

func scanLesson(scan func(dest ...interface{}) error) (*models.Lesson, error) {
	lesson := &models.Lesson{}
	var difficulty string
	err := scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Content,
		&lesson.FilePath,
		&difficulty,
		&lesson.UploadedBy,
		&lesson.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	lesson.Difficulty = models.Difficulty(difficulty)
	return lesson, nil
}

// ListLessons returns the whole catalogue, newest first
func (r *LessonRepository) ListLessons() ([]models.Lesson, error) {
	query := "SELECT " + lessonColumns + " FROM lessons ORDER BY created_at DESC, id DESC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	return lessons, rows.Err()
}

// ListLessonsByUploader returns lessons uploaded by the given display name, newest first
func (r *LessonRepository) ListLessonsByUploader(uploadedBy string) ([]models.Lesson, error) {
	query := "SELECT " + lessonColumns + " FROM lessons WHERE uploaded_by = ? ORDER BY created_at DESC, id DESC"
	rows, err := r.db.Query(query, uploadedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	return lessons, rows.Err()
}

// GetLessonByID retrieves a single lesson, or nil when no row matches
func (r *LessonRepository) GetLessonByID(id int64) (*models.Lesson, error) {
	query := "SELECT " + lessonColumns + " FROM lessons WHERE id = ?"
	lesson, err := scanLesson(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

// CreateLesson inserts a new lesson and returns it with its assigned ID
func (r *LessonRepository) CreateLesson(lesson *models.Lesson) (*models.Lesson, error) {
	query := `
		INSERT INTO lessons (title, description, content, file_path, difficulty, uploaded_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		lesson.Title,
		lesson.Description,
		lesson.Content,
		lesson.FilePath,
		string(lesson.Difficulty),
		lesson.UploadedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	return r.GetLessonByID(id)
}

// UpdateLesson updates a lesson's editable fields. An empty filePath
// keeps the existing attachment.
func (r *LessonRepository) UpdateLesson(id int64, title, description, content string, difficulty models.Difficulty, filePath string) error {
	if filePath != "" {
		query := `
			UPDATE lessons
			SET title = ?, description = ?, content = ?, difficulty = ?, file_path = ?
			WHERE id = ?
		`
		_, err := r.db.Exec(query, title, description, content, string(difficulty), filePath, id)
		if err != nil {
			return fmt.Errorf("failed to update lesson: %w", err)
		}
		return nil
	}

	query := `
		UPDATE lessons
		SET title = ?, description = ?, content = ?, difficulty = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, title, description, content, string(difficulty), id)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	return nil
}

// DeleteLesson removes a lesson from the catalogue
func (r *LessonRepository) DeleteLesson(id int64) error {
	query := "DELETE FROM lessons WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	return nil
}

// CountLessons returns the catalogue size
func (r *LessonRepository) CountLessons() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM lessons").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}
	return count, nil
}
