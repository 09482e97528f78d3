package service

import (
	"errors"
	"fmt"

	"smartread/internal/models"
	"smartread/internal/repository"
	"smartread/internal/validation"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrNameTaken       = errors.New("name already taken")
)

// RosterService handles the class roster: young students who sign in
// with just their name instead of an email account.
type RosterService struct {
	studentRepo *repository.StudentRepository
	lessonRepo  *repository.LessonRepository
}

// NewRosterService creates a new roster service
func NewRosterService(studentRepo *repository.StudentRepository, lessonRepo *repository.LessonRepository) *RosterService {
	return &RosterService{
		studentRepo: studentRepo,
		lessonRepo:  lessonRepo,
	}
}

// LoginByName finds the roster entry matching the given name,
// case-insensitively.
func (s *RosterService) LoginByName(name string) (*models.Student, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetStudentByName(name)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	_ = s.studentRepo.UpdateStudentActivity(student.ID, "just now")

	return student, nil
}

// RegisterStudent adds a new student to the roster and signs them in.
// Names are unique on the roster since they are the whole credential.
func (s *RosterService) RegisterStudent(name, gradeLevel string) (*models.Student, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if gradeLevel == "" {
		gradeLevel = "1"
	}

	existing, err := s.studentRepo.GetStudentByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameTaken
	}

	totalLessons, err := s.lessonRepo.CountLessons()
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}

	return s.studentRepo.CreateStudent(name, gradeLevel, totalLessons)
}

// GetStudent retrieves a roster entry by ID
func (s *RosterService) GetStudent(id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByID(id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

// ListStudents returns the whole roster
func (s *RosterService) ListStudents() ([]models.Student, error) {
	return s.studentRepo.ListStudents()
}
