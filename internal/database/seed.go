package database

import (
	"fmt"
	"log"
	"time"
)

type seedLesson struct {
	title       string
	description string
	content     string
	filePath    string
	difficulty  string
	uploadedBy  string
	createdAt   time.Time
}

type seedStudent struct {
	name             string
	gradeLevel       string
	progress         int
	completedLessons int
	totalLessons     int
	achievements     int
	studyHours       int
	lastActivity     string
}

var starterLessons = []seedLesson{
	{
		title:       "Introduction to the Alphabet",
		description: "Learn the basics of the alphabet and letter sounds.",
		content:     "This lesson introduces students to the alphabet and the sounds that each letter makes. Students will practice identifying letters and their sounds through interactive activities.",
		filePath:    "/uploads/alphabet.pdf",
		difficulty:  "easy",
		uploadedBy:  "Admin Johnson",
		createdAt:   time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	},
	{
		title:       "Vowel Sounds",
		description: "Explore the sounds of vowels and their importance in words.",
		content:     "This lesson focuses on the five vowels (A, E, I, O, U) and their sounds. Students will learn about short and long vowel sounds through examples and exercises.",
		filePath:    "/uploads/vowels.pdf",
		difficulty:  "easy",
		uploadedBy:  "Admin Johnson",
		createdAt:   time.Date(2025, 3, 20, 14, 15, 0, 0, time.UTC),
	},
	{
		title:       "Simple Word Formation",
		description: "Learn how to form simple three-letter words by combining consonants and vowels.",
		content:     "In this lesson, students will learn how to combine consonants and vowels to form simple three-letter words like \"cat\", \"dog\", and \"sun\". Interactive exercises will help them practice reading and writing these words.",
		filePath:    "/uploads/wordformation.pdf",
		difficulty:  "medium",
		uploadedBy:  "Admin Smith",
		createdAt:   time.Date(2025, 3, 25, 9, 45, 0, 0, time.UTC),
	},
	{
		title:       "Reading Simple Sentences",
		description: "Practice reading simple sentences composed of basic vocabulary.",
		content:     "This lesson helps students practice reading simple sentences made up of the words they have learned. They will focus on sentence structure and reading fluency.",
		filePath:    "/uploads/sentences.pdf",
		difficulty:  "medium",
		uploadedBy:  "Admin Johnson",
		createdAt:   time.Date(2025, 4, 2, 11, 20, 0, 0, time.UTC),
	},
	{
		title:       "Recognizing Sight Words",
		description: "Learn to recognize common sight words that appear frequently in reading.",
		content:     "Sight words are words that appear frequently in reading and often don't follow regular phonetic rules. This lesson introduces common sight words like \"the\", \"and\", \"is\", and \"to\".",
		filePath:    "/uploads/sightwords.pdf",
		difficulty:  "hard",
		uploadedBy:  "Admin Smith",
		createdAt:   time.Date(2025, 4, 10, 13, 0, 0, 0, time.UTC),
	},
	{
		title:       "Blending Sounds",
		description: "Practice blending letter sounds to form words.",
		content:     "In this lesson, students will learn the skill of blending sounds together to read words. They will practice hearing individual sounds and then combining them to recognize whole words.",
		filePath:    "/uploads/blending.pdf",
		difficulty:  "medium",
		uploadedBy:  "Admin Johnson",
		createdAt:   time.Date(2025, 4, 15, 10, 10, 0, 0, time.UTC),
	},
}

var starterStudents = []seedStudent{
	{name: "Alex Johnson", gradeLevel: "1", progress: 68, completedLessons: 4, totalLessons: 6, achievements: 2, studyHours: 14, lastActivity: "2 hours ago"},
	{name: "Sofia Martinez", gradeLevel: "1", progress: 42, completedLessons: 2, totalLessons: 6, achievements: 1, studyHours: 8, lastActivity: "1 day ago"},
	{name: "Jamal Wilson", gradeLevel: "1", progress: 83, completedLessons: 5, totalLessons: 6, achievements: 3, studyHours: 18, lastActivity: "3 hours ago"},
	{name: "Emily Chang", gradeLevel: "1", progress: 55, completedLessons: 3, totalLessons: 6, achievements: 2, studyHours: 12, lastActivity: "5 hours ago"},
	{name: "Noah Roberts", gradeLevel: "1", progress: 25, completedLessons: 1, totalLessons: 6, achievements: 1, studyHours: 6, lastActivity: "2 days ago"},
}

// SeedStarterData populates the lessons catalogue and the class roster
// with the starter set when the tables are empty. Running it against a
// populated database is a no-op.
func (db *DB) SeedStarterData() error {
	if err := db.seedLessons(); err != nil {
		return err
	}
	return db.seedStudents()
}

func (db *DB) seedLessons() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lessons").Scan(&count); err != nil {
		return fmt.Errorf("failed to check lessons count: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO lessons (title, description, content, file_path, difficulty, uploaded_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, l := range starterLessons {
		if _, err := tx.Exec(query, l.title, l.description, l.content, l.filePath, l.difficulty, l.uploadedBy, l.createdAt); err != nil {
			return fmt.Errorf("failed to seed lesson %q: %w", l.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Lessons catalogue seeded with %d starter lessons", len(starterLessons))
	return nil
}

func (db *DB) seedStudents() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		return fmt.Errorf("failed to check students count: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO students (name, grade_level, progress, completed_lessons, total_lessons, achievements, study_hours, last_activity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for _, s := range starterStudents {
		if _, err := tx.Exec(query, s.name, s.gradeLevel, s.progress, s.completedLessons, s.totalLessons, s.achievements, s.studyHours, s.lastActivity); err != nil {
			return fmt.Errorf("failed to seed student %q: %w", s.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Class roster seeded with %d starter students", len(starterStudents))
	return nil
}
