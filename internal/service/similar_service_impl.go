package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/zaydor/ai-project-manager/internal/embedding"
	"github.com/zaydor/ai-project-manager/internal/repository"
)

type similarService struct {
	embeddings repository.EmbeddingRepo
	backend    embedding.Backend
}

// NewSimilarService queries stored task embeddings. A nil backend uses the
// default deterministic hash backend, which must match the one used at
// indexing time for similarities to be meaningful.
func NewSimilarService(embeddings repository.EmbeddingRepo, backend embedding.Backend) SimilarService {
	if backend == nil {
		backend = embedding.HashBackend{}
	}
	return &similarService{embeddings: embeddings, backend: backend}
}

// Similar ranks the project's indexed tasks by similarity to the query text.
func (s *similarService) Similar(ctx context.Context, projectID string, query string, topK int) ([]SimilarTask, error) {
	rows, err := s.embeddings.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("project %s has no indexed tasks (run reestimate first)", projectID)
	}

	qv := s.backend.Embed(query)
	out := make([]SimilarTask, 0, len(rows))
	for _, row := range rows {
		out = append(out, SimilarTask{
			TaskID:     row.Metadata["task_id"],
			Title:      row.Metadata["task"],
			Similarity: embedding.Cosine(qv, row.Vector),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if topK >= 0 && len(out) > topK {
		out = out[:topK]
	}
	return out, nil
}
