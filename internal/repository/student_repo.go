package repository

import (
	"database/sql"
	"fmt"

	"smartread/internal/database"
	"smartread/internal/models"
)

// StudentRepository handles database operations for the class roster
type StudentRepository struct {
	db *database.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *database.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = "id, name, grade_level, progress, completed_lessons, total_lessons, achievements, study_hours, last_activity, created_at"

func scanStudent(scan func(dest ...interface{}) error) (*models.Student, error) {
	student := &models.Student{}
	err := scan(
		&student.ID,
		&student.Name,
		&student.GradeLevel,
		&student.Progress,
		&student.CompletedLessons,
		&student.TotalLessons,
		&student.Achievements,
		&student.StudyHours,
		&student.LastActivity,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// ListStudents returns the whole roster ordered by name
func (r *StudentRepository) ListStudents() ([]models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students ORDER BY name"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, *student)
	}

	return students, rows.Err()
}

// GetStudentByID retrieves a roster entry by ID, or nil when no row matches
func (r *StudentRepository) GetStudentByID(id int64) (*models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE id = ?"
	student, err := scanStudent(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetStudentByName retrieves a roster entry by display name,
// case-insensitively, or nil when no row matches
func (r *StudentRepository) GetStudentByName(name string) (*models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE LOWER(name) = LOWER(?)"
	student, err := scanStudent(r.db.QueryRow(query, name).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// CreateStudent adds a new student to the roster
func (r *StudentRepository) CreateStudent(name, gradeLevel string, totalLessons int) (*models.Student, error) {
	query := `
		INSERT INTO students (name, grade_level, total_lessons, last_activity)
		VALUES (?, ?, ?, 'just now')
	`
	id, err := r.db.ExecReturningID(query, name, gradeLevel, totalLessons)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return r.GetStudentByID(id)
}

// UpdateStudentActivity records the student's most recent activity label
func (r *StudentRepository) UpdateStudentActivity(id int64, lastActivity string) error {
	query := "UPDATE students SET last_activity = ? WHERE id = ?"
	_, err := r.db.Exec(query, lastActivity, id)
	if err != nil {
		return fmt.Errorf("failed to update student activity: %w", err)
	}
	return nil
}
