package db

import (
	"testing"
)

// setupTestDB points the package at a fresh in-memory database for one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	InitDB(":memory:")
	// Each sqlite :memory: connection is its own database; keep the pool at
	// one connection so every query sees the created tables.
	DB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		DB.Close()
	})
}
