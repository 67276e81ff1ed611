package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(conn db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (id, project_id, title, description, estimate_hours, order_index, target_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.ProjectID,
		m.Title,
		m.Description,
		m.EstimateHours,
		m.OrderIndex,
		nullableTimeToString(m.TargetDate, dateLayout),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	return nil
}

func (r *SQLiteMilestoneRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, description, estimate_hours, order_index, target_date, created_at
		 FROM milestones WHERE project_id = ? ORDER BY order_index, created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	var out []*domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		var targetDate sql.NullString
		var createdAt string
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description,
			&m.EstimateHours, &m.OrderIndex, &targetDate, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning milestone: %w", err)
		}
		m.TargetDate = parseNullableTime(targetDate, dateLayout)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *SQLiteMilestoneRepo) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting milestones: %w", err)
	}
	return nil
}
