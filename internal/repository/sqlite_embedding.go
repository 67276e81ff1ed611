package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zaydor/ai-project-manager/internal/db"
)

// SQLiteEmbeddingRepo persists embedding vectors as JSON columns, matching
// the in-memory index's item shape.
type SQLiteEmbeddingRepo struct {
	db db.DBTX
}

func NewSQLiteEmbeddingRepo(conn db.DBTX) *SQLiteEmbeddingRepo {
	return &SQLiteEmbeddingRepo{db: conn}
}

func (r *SQLiteEmbeddingRepo) Save(ctx context.Context, projectID string, embs []StoredEmbedding) error {
	for _, e := range embs {
		vector, err := json.Marshal(e.Vector)
		if err != nil {
			return fmt.Errorf("encoding vector: %w", err)
		}
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO embeddings (project_id, item_id, text, vector, metadata)
			 VALUES (?, ?, ?, ?, ?)`,
			projectID, e.ItemID, e.Text, string(vector), string(metadata),
		); err != nil {
			return fmt.Errorf("inserting embedding: %w", err)
		}
	}
	return nil
}

func (r *SQLiteEmbeddingRepo) ListByProject(ctx context.Context, projectID string) ([]StoredEmbedding, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, text, vector, metadata FROM embeddings
		 WHERE project_id = ? ORDER BY item_id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing embeddings: %w", err)
	}
	defer rows.Close()

	var out []StoredEmbedding
	for rows.Next() {
		var e StoredEmbedding
		var vector, metadata string
		if err := rows.Scan(&e.ItemID, &e.Text, &vector, &metadata); err != nil {
			return nil, fmt.Errorf("scanning embedding: %w", err)
		}
		if err := json.Unmarshal([]byte(vector), &e.Vector); err != nil {
			return nil, fmt.Errorf("decoding vector: %w", err)
		}
		if err := json.Unmarshal([]byte(metadata), &e.Metadata); err != nil {
			return nil, fmt.Errorf("decoding metadata: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLiteEmbeddingRepo) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM embeddings WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting embeddings: %w", err)
	}
	return nil
}
