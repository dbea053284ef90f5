package db

import (
	"log"
)

// createTables creates the necessary tables if they don't exist.
func createTables() {
	// The UNIQUE constraint on model is the single arbiter of duplicate
	// submissions; see InsertReport.
	createReportsTableSQL := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		author_nickname TEXT,
		commercial_name TEXT NOT NULL,
		model TEXT NOT NULL UNIQUE,
		works INTEGER NOT NULL DEFAULT 0,
		bands TEXT,
		provinces TEXT,
		observations TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		reviewer_id TEXT,
		created_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createReportsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create reports table: %v", err)
	}

	// One wizard draft per user; user_id as primary key makes the upsert in
	// SaveDraft overwrite instead of duplicate.
	createDraftsTableSQL := `
	CREATE TABLE IF NOT EXISTS drafts (
		user_id TEXT PRIMARY KEY,
		step TEXT NOT NULL,
		commercial_name TEXT,
		model TEXT,
		works INTEGER,
		bands TEXT,
		provinces TEXT,
		observations TEXT,
		updated_at INTEGER NOT NULL
	);`

	_, err = DB.Exec(createDraftsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create drafts table: %v", err)
	}

	createSubscriptionsTableSQL := `
	CREATE TABLE IF NOT EXISTS subscriptions (
		user_id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL
	);`

	_, err = DB.Exec(createSubscriptionsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create subscriptions table: %v", err)
	}

	log.Println("Database tables initialized successfully.")
}
