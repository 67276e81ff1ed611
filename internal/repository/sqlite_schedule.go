package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo over SQLite.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, b *domain.ScheduledBlock) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_blocks (id, project_id, task_id, day, start_min, end_min,
			duration_min, split_recommended, start_ts, end_ts, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID,
		b.ProjectID,
		b.TaskID,
		b.Day,
		b.StartMin,
		b.EndMin,
		b.DurationMin,
		boolToInt(b.SplitRecommended),
		nullableTimeToString(b.StartTS, time.RFC3339),
		nullableTimeToString(b.EndTS, time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule block: %w", err)
	}
	return nil
}

// ListByProject returns the project's schedule in canonical order:
// day, then start minute, then task ID.
func (r *SQLiteScheduleRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ScheduledBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, task_id, day, start_min, end_min, duration_min,
			split_recommended, start_ts, end_ts, created_at
		 FROM schedule_blocks WHERE project_id = ?
		 ORDER BY day, start_min, task_id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule blocks: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScheduledBlock
	for rows.Next() {
		var b domain.ScheduledBlock
		var split int
		var startTS, endTS sql.NullString
		var createdAt string
		if err := rows.Scan(&b.ID, &b.ProjectID, &b.TaskID, &b.Day, &b.StartMin,
			&b.EndMin, &b.DurationMin, &split, &startTS, &endTS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning schedule block: %w", err)
		}
		b.SplitRecommended = intToBool(split)
		b.StartTS = parseNullableTime(startTS, time.RFC3339)
		b.EndTS = parseNullableTime(endTS, time.RFC3339)
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *SQLiteScheduleRepo) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_blocks WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting schedule blocks: %w", err)
	}
	return nil
}
