package service

import (
	"context"
	"testing"

	"smartread/internal/models"
)

func sampleLessons() []models.Lesson {
	return []models.Lesson{
		{ID: 1, Title: "Introduction to the Alphabet", Description: "Learn the basics of the alphabet and letter sounds.", Difficulty: models.DifficultyEasy},
		{ID: 2, Title: "Vowel Sounds", Description: "Explore the sounds of vowels and their importance in words.", Difficulty: models.DifficultyEasy},
		{ID: 3, Title: "Simple Word Formation", Description: "Learn how to form simple three-letter words.", Difficulty: models.DifficultyMedium},
		{ID: 4, Title: "Recognizing Sight Words", Description: "Learn to recognize common sight words.", Difficulty: models.DifficultyHard},
	}
}

func lessonIDs(lessons []models.Lesson) []int64 {
	ids := make([]int64, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterLessons(t *testing.T) {
	tests := []struct {
		name       string
		searchTerm string
		difficulty models.Difficulty
		wantIDs    []int64
	}{
		{
			name:    "no filters returns everything",
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:       "search matches title case-insensitively",
			searchTerm: "VOWEL",
			wantIDs:    []int64{2},
		},
		{
			name:       "search matches description",
			searchTerm: "letter sounds",
			wantIDs:    []int64{1},
		},
		{
			name:       "difficulty filter alone",
			difficulty: models.DifficultyEasy,
			wantIDs:    []int64{1, 2},
		},
		{
			name:       "search and difficulty compose",
			searchTerm: "learn",
			difficulty: models.DifficultyEasy,
			wantIDs:    []int64{1},
		},
		{
			name:       "filters that each match exclude jointly",
			searchTerm: "vowel",
			difficulty: models.DifficultyHard,
			wantIDs:    nil,
		},
		{
			name:       "no matches",
			searchTerm: "algebra",
			wantIDs:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLessons(sampleLessons(), tt.searchTerm, tt.difficulty)
			gotIDs := lessonIDs(got)
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %d lessons %v, want %v", len(gotIDs), gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("lesson %d = id %d, want %d", i, gotIDs[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestCreateLessonRequiresTitleAndDescription(t *testing.T) {
	svc := NewLessonService(nil, nil, "")

	tests := []struct {
		name   string
		lesson models.Lesson
	}{
		{name: "empty description", lesson: models.Lesson{Title: "T", Difficulty: models.DifficultyEasy}},
		{name: "blank description", lesson: models.Lesson{Title: "T", Description: "   ", Difficulty: models.DifficultyEasy}},
		{name: "empty title", lesson: models.Lesson{Description: "D", Difficulty: models.DifficultyEasy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson := tt.lesson
			if _, err := svc.CreateLesson(context.Background(), &lesson, "", nil); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestUpdateLessonRequiresDescription(t *testing.T) {
	svc := NewLessonService(nil, nil, "")

	err := svc.UpdateLesson(context.Background(), 1, "T", "", "", models.DifficultyEasy, "", nil)
	if err == nil {
		t.Error("expected a validation error, got nil")
	}
}

func TestFilterLessonsPreservesOrder(t *testing.T) {
	lessons := sampleLessons()
	got := FilterLessons(lessons, "", models.DifficultyEasy)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("filtered lessons out of catalogue order: %v", lessonIDs(got))
	}
}
