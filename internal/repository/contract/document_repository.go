package contract

import (
	"context"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredDocument wraps a Document with its cosine similarity score
type ScoredDocument struct {
	Document *entity.Document
	Score    float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	CreateBulk(ctx context.Context, documents []*entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore ranks documents by cosine similarity to the
	// query embedding, highest first, id ascending on equal scores.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredDocument, error)
}
