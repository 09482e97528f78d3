package database

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	// File-backed so the connection pool shares one database
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	// Migrations should have created the application tables
	tables := []string{"users", "sessions", "lessons", "students", "chat_messages"}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		if err := db.QueryRow(query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Migrations are recorded and not run twice
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Re-running migrations failed: %v", err)
	}
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count == 0 {
		t.Error("no migrations were recorded")
	}
}

func TestSeedStarterData(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)

	if err := db.SeedStarterData(); err != nil {
		t.Fatalf("SeedStarterData failed: %v", err)
	}

	var lessonCount, studentCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM lessons").Scan(&lessonCount); err != nil {
		t.Fatalf("Failed to count lessons: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM students").Scan(&studentCount); err != nil {
		t.Fatalf("Failed to count students: %v", err)
	}

	if lessonCount != len(starterLessons) {
		t.Errorf("lessons seeded = %d, want %d", lessonCount, len(starterLessons))
	}
	if studentCount != len(starterStudents) {
		t.Errorf("students seeded = %d, want %d", studentCount, len(starterStudents))
	}

	// Seeding is idempotent
	if err := db.SeedStarterData(); err != nil {
		t.Fatalf("Second SeedStarterData failed: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM lessons").Scan(&lessonCount); err != nil {
		t.Fatalf("Failed to count lessons: %v", err)
	}
	if lessonCount != len(starterLessons) {
		t.Errorf("lessons after re-seed = %d, want %d", lessonCount, len(starterLessons))
	}
}

func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	id, err := tx.ExecReturningID(
		"INSERT INTO users (username, email, role, password_hash) VALUES (?, ?, ?, ?)",
		"testuser", "test@example.com", "admin", "hashedpass")
	if err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if id == 0 {
		t.Error("ExecReturningID returned zero id")
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	var email string
	if err := db.QueryRow("SELECT email FROM users WHERE id = ?", id).Scan(&email); err != nil {
		t.Fatalf("Failed to read committed row: %v", err)
	}
	if email != "test@example.com" {
		t.Errorf("email = %q, want test@example.com", email)
	}

	// Rolled back writes are not visible
	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx2.Exec(
		"INSERT INTO users (username, email, role, password_hash) VALUES (?, ?, ?, ?)",
		"ghost", "ghost@example.com", "guardian", "hashedpass"); err != nil {
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "ghost@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Error("rolled back row is visible")
	}
}
