package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

const taskColumns = `id, project_id, milestone_id, title, description,
		estimate_hours, estimate_min, confidence, status, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID,
		t.ProjectID,
		nullableString(t.MilestoneID),
		t.Title,
		t.Description,
		nullableFloat(t.EstimateHours),
		nullableInt(t.EstimateMin),
		t.Confidence,
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY created_at, id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// ListSchedulable returns the project's unarchived, unfinished tasks joined
// with milestone titles, in a stable order.
func (r *SQLiteTaskRepo) ListSchedulable(ctx context.Context, projectID string) ([]SchedulableTask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.project_id, t.milestone_id, t.title, t.description,
			t.estimate_hours, t.estimate_min, t.confidence, t.status, t.created_at, t.updated_at,
			COALESCE(m.title, '')
		 FROM tasks t
		 LEFT JOIN milestones m ON t.milestone_id = m.id
		 WHERE t.project_id = ? AND t.status IN ('todo', 'in_progress')
		 ORDER BY t.created_at, t.id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable tasks: %w", err)
	}
	defer rows.Close()

	var out []SchedulableTask
	for rows.Next() {
		var st SchedulableTask
		var milestoneID sql.NullString
		var estHours sql.NullFloat64
		var estMin sql.NullInt64
		var status, createdAt, updatedAt string
		if err := rows.Scan(&st.Task.ID, &st.Task.ProjectID, &milestoneID,
			&st.Task.Title, &st.Task.Description, &estHours, &estMin,
			&st.Task.Confidence, &status, &createdAt, &updatedAt,
			&st.MilestoneTitle); err != nil {
			return nil, fmt.Errorf("scanning schedulable task: %w", err)
		}
		applyTaskNullables(&st.Task, milestoneID, estHours, estMin)
		st.Task.Status = domain.TaskStatus(status)
		st.Task.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		st.Task.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET milestone_id = ?, title = ?, description = ?,
			estimate_hours = ?, estimate_min = ?, confidence = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		nullableString(t.MilestoneID),
		t.Title,
		t.Description,
		nullableFloat(t.EstimateHours),
		nullableInt(t.EstimateMin),
		t.Confidence,
		string(t.Status),
		time.Now().UTC().Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting tasks: %w", err)
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var milestoneID sql.NullString
	var estHours sql.NullFloat64
	var estMin sql.NullInt64
	var status, createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.ProjectID, &milestoneID, &t.Title, &t.Description,
		&estHours, &estMin, &t.Confidence, &status, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	applyTaskNullables(&t, milestoneID, estHours, estMin)
	t.Status = domain.TaskStatus(status)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var out []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func applyTaskNullables(t *domain.Task, milestoneID sql.NullString, estHours sql.NullFloat64, estMin sql.NullInt64) {
	if milestoneID.Valid {
		v := milestoneID.String
		t.MilestoneID = &v
	}
	if estHours.Valid {
		v := estHours.Float64
		t.EstimateHours = &v
	}
	if estMin.Valid {
		v := int(estMin.Int64)
		t.EstimateMin = &v
	}
}
