package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"smartread/internal/models"
	"smartread/internal/repository"
	"smartread/internal/storage"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrUploadFailed   = errors.New("File upload failed")
)

// LessonService handles the lessons catalogue business logic
type LessonService struct {
	lessonRepo *repository.LessonRepository
	uploader   storage.Uploader
	baseURL    string
}

// NewLessonService creates a new lesson service
func NewLessonService(lessonRepo *repository.LessonRepository, uploader storage.Uploader, baseURL string) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		uploader:   uploader,
		baseURL:    baseURL,
	}
}

// ListLessons returns the whole catalogue, newest first
func (s *LessonService) ListLessons() ([]models.Lesson, error) {
	return s.lessonRepo.ListLessons()
}

// ListLessonsByUploader returns lessons uploaded by the given display name
func (s *LessonService) ListLessonsByUploader(uploadedBy string) ([]models.Lesson, error) {
	return s.lessonRepo.ListLessonsByUploader(uploadedBy)
}

// FilterLessons narrows a lesson list by search term and difficulty.
// Both filters apply together: the search term matches title or
// description case-insensitively, and the difficulty must match
// exactly. Empty filters pass everything through.
func FilterLessons(lessons []models.Lesson, searchTerm string, difficulty models.Difficulty) []models.Lesson {
	result := lessons

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		var matched []models.Lesson
		for _, lesson := range result {
			if strings.Contains(strings.ToLower(lesson.Title), term) ||
				strings.Contains(strings.ToLower(lesson.Description), term) {
				matched = append(matched, lesson)
			}
		}
		result = matched
	}

	if difficulty != "" {
		var matched []models.Lesson
		for _, lesson := range result {
			if lesson.Difficulty == difficulty {
				matched = append(matched, lesson)
			}
		}
		result = matched
	}

	return result
}

// GetLesson retrieves a single lesson
func (s *LessonService) GetLesson(id int64) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetLessonByID(id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

// CreateLesson stores an optional attachment, then writes the catalogue
// row. A failed upload aborts the create before anything is written.
func (s *LessonService) CreateLesson(ctx context.Context, lesson *models.Lesson, filename string, file io.Reader) (*models.Lesson, error) {
	if strings.TrimSpace(lesson.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(lesson.Description) == "" {
		return nil, errors.New("description is required")
	}
	if !lesson.Difficulty.Valid() {
		return nil, fmt.Errorf("invalid difficulty: %q", lesson.Difficulty)
	}

	if file != nil && filename != "" {
		filePath, err := s.uploader.Save(ctx, filename, file)
		if err != nil {
			return nil, ErrUploadFailed
		}
		lesson.FilePath = filePath
	}

	return s.lessonRepo.CreateLesson(lesson)
}

// UpdateLesson edits a lesson, replacing the attachment only when a new
// file is provided. A failed upload aborts the update.
func (s *LessonService) UpdateLesson(ctx context.Context, id int64, title, description, content string, difficulty models.Difficulty, filename string, file io.Reader) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return errors.New("description is required")
	}
	if !difficulty.Valid() {
		return fmt.Errorf("invalid difficulty: %q", difficulty)
	}

	existing, err := s.lessonRepo.GetLessonByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLessonNotFound
	}

	var filePath string
	if file != nil && filename != "" {
		filePath, err = s.uploader.Save(ctx, filename, file)
		if err != nil {
			return ErrUploadFailed
		}
	}

	return s.lessonRepo.UpdateLesson(id, title, description, content, difficulty, filePath)
}

// DeleteLesson removes a lesson from the catalogue
func (s *LessonService) DeleteLesson(id int64) error {
	return s.lessonRepo.DeleteLesson(id)
}

// FileURL resolves a lesson's stored attachment path to a link
func (s *LessonService) FileURL(lesson *models.Lesson) string {
	return storage.ResolveURL(s.baseURL, lesson.FilePath)
}

// CountLessons returns the catalogue size
func (s *LessonService) CountLessons() (int, error) {
	return s.lessonRepo.CountLessons()
}
