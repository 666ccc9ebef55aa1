package database

import (
	"context"
	"path/filepath"
	"testing"

	"yamsoo/internal/relation"
)

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "test_integration.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Test that tables were created by migrations
	tables := []string{"users", "profiles", "sessions", "relationship_types", "relationship_requests", "family_relationships", "suggestions"}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		err := db.QueryRowContext(ctx, query, table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Migrations run at most once
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
}

// TestDatabaseTransactions tests transaction support through the
// dialect-aware Tx wrapper
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "test_transactions.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Test successful transaction
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	id, err := tx.ExecReturningID("INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"test@example.com", "hashedpass", "Test User")
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

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "test@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}

	// Test rollback
	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}

	if _, err := tx2.Exec("INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"test2@example.com", "hashedpass", "Second User"); err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}

	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "test2@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 users after rollback, got %d", count)
	}
}

// TestSeedRelationshipTypes verifies the catalog seed is idempotent
func TestSeedRelationshipTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "test_seed.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	catalog := relation.DefaultCatalog()
	if err := db.SeedRelationshipTypes(catalog); err != nil {
		t.Fatalf("Failed to seed relationship types: %v", err)
	}
	if err := db.SeedRelationshipTypes(catalog); err != nil {
		t.Fatalf("Second seed run failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM relationship_types").Scan(&count); err != nil {
		t.Fatalf("Failed to count relationship types: %v", err)
	}
	if count != len(catalog.Kinds()) {
		t.Errorf("relationship_types rows = %d, want %d", count, len(catalog.Kinds()))
	}
}
