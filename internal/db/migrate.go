package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the full schema. Statements are idempotent; ALTER TABLE
// additions tolerate re-runs via the duplicate-column check in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		summary    TEXT NOT NULL,
		questions  TEXT NOT NULL DEFAULT '[]',
		status     TEXT NOT NULL DEFAULT 'intake'
		           CHECK(status IN ('intake','planned','scheduled','archived')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		estimate_hours REAL NOT NULL DEFAULT 0,
		order_index    INTEGER NOT NULL DEFAULT 0,
		target_date    TEXT,
		created_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		milestone_id   TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		estimate_hours REAL,
		estimate_min   INTEGER,
		confidence     REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'todo'
		               CHECK(status IN ('todo','in_progress','done','archived')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_blocks (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		task_id           TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		day               INTEGER NOT NULL,
		start_min         INTEGER NOT NULL,
		end_min           INTEGER NOT NULL,
		duration_min      INTEGER NOT NULL,
		split_recommended INTEGER NOT NULL DEFAULT 0,
		start_ts          TEXT,
		end_ts            TEXT,
		created_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS embeddings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		item_id    INTEGER NOT NULL,
		text       TEXT NOT NULL,
		vector     TEXT NOT NULL,
		metadata   TEXT NOT NULL DEFAULT '{}'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_project ON milestones(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_blocks_project ON schedule_blocks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_embeddings_project ON embeddings(project_id)`,
}

// Migrate runs all schema migrations against db.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
