package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM lessons WHERE id = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery changed the query: %v", got)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  string
		}{
			{
				name:  "single placeholder",
				query: "SELECT * FROM lessons WHERE id = ?",
				want:  "SELECT * FROM lessons WHERE id = $1",
			},
			{
				name:  "multiple placeholders",
				query: "INSERT INTO lessons (title, difficulty) VALUES (?, ?)",
				want:  "INSERT INTO lessons (title, difficulty) VALUES ($1, $2)",
			},
			{
				name:  "no placeholders",
				query: "SELECT COUNT(*) FROM lessons",
				want:  "SELECT COUNT(*) FROM lessons",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if got := dialect.RewriteQuery(tt.query); got != tt.want {
					t.Errorf("RewriteQuery() = %v, want %v", got, tt.want)
				}
			})
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "mysql" {
			t.Errorf("MigrationsSubdir() = %v, want mysql", got)
		}
	})
}
