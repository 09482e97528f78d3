package repository

import (
	"path/filepath"
	"testing"

	"smartread/internal/database"
	"smartread/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestLessonCreateRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewLessonRepository(newTestDB(t))

	created, err := repo.CreateLesson(&models.Lesson{
		Title:       "T",
		Description: "D",
		Difficulty:  models.DifficultyMedium,
		UploadedBy:  "Admin Johnson",
	})
	if err != nil {
		t.Fatalf("CreateLesson failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created lesson has no ID")
	}

	got, err := repo.GetLessonByID(created.ID)
	if err != nil {
		t.Fatalf("GetLessonByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("created lesson not found")
	}
	if got.Title != "T" || got.Description != "D" || got.Difficulty != models.DifficultyMedium {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.FilePath != "" {
		t.Errorf("file_path = %q for a lesson created without a file", got.FilePath)
	}
}

func TestGetLessonByIDMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewLessonRepository(newTestDB(t))

	got, err := repo.GetLessonByID(9999)
	if err != nil {
		t.Fatalf("GetLessonByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing lesson, got %+v", got)
	}
}

func TestListLessonsNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewLessonRepository(newTestDB(t))

	// Same created_at timestamps collapse to id DESC ordering
	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := repo.CreateLesson(&models.Lesson{Title: title, Difficulty: models.DifficultyEasy}); err != nil {
			t.Fatalf("CreateLesson(%s) failed: %v", title, err)
		}
	}

	lessons, err := repo.ListLessons()
	if err != nil {
		t.Fatalf("ListLessons failed: %v", err)
	}
	if len(lessons) != 3 {
		t.Fatalf("ListLessons returned %d lessons, want 3", len(lessons))
	}
	if lessons[0].Title != "Third" || lessons[2].Title != "First" {
		t.Errorf("lessons not newest first: %s, %s, %s", lessons[0].Title, lessons[1].Title, lessons[2].Title)
	}
}

func TestUpdateLessonKeepsFileWhenEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewLessonRepository(newTestDB(t))

	created, err := repo.CreateLesson(&models.Lesson{
		Title:      "With file",
		FilePath:   "uploads/123-doc.pdf",
		Difficulty: models.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("CreateLesson failed: %v", err)
	}

	if err := repo.UpdateLesson(created.ID, "Edited", "desc", "content", models.DifficultyHard, ""); err != nil {
		t.Fatalf("UpdateLesson failed: %v", err)
	}

	got, err := repo.GetLessonByID(created.ID)
	if err != nil {
		t.Fatalf("GetLessonByID failed: %v", err)
	}
	if got.Title != "Edited" || got.Difficulty != models.DifficultyHard {
		t.Errorf("update lost fields: %+v", got)
	}
	if got.FilePath != "uploads/123-doc.pdf" {
		t.Errorf("file_path = %q, update without a file should keep the attachment", got.FilePath)
	}

	if err := repo.UpdateLesson(created.ID, "Edited", "desc", "content", models.DifficultyHard, "uploads/456-new.pdf"); err != nil {
		t.Fatalf("UpdateLesson with file failed: %v", err)
	}
	got, _ = repo.GetLessonByID(created.ID)
	if got.FilePath != "uploads/456-new.pdf" {
		t.Errorf("file_path = %q, want replacement", got.FilePath)
	}
}

func TestStudentLookupCaseInsensitive(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewStudentRepository(newTestDB(t))

	created, err := repo.CreateStudent("Alex Johnson", "1", 6)
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}

	got, err := repo.GetStudentByName("alex johnson")
	if err != nil {
		t.Fatalf("GetStudentByName failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Errorf("case-insensitive lookup failed: %+v", got)
	}

	missing, err := repo.GetStudentByName("Nobody Here")
	if err != nil {
		t.Fatalf("GetStudentByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown student, got %+v", missing)
	}
}
