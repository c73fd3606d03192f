package embedding

import (
	"context"
	"errors"
	"fmt"
)

const (
	TaskTypeDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeQuery    = "RETRIEVAL_QUERY"
)

// ErrUnavailable marks provider failures so callers can distinguish a dead
// embedding backend from their own storage errors.
var ErrUnavailable = errors.New("embedding provider unavailable")

// Encoder wraps an EmbeddingProvider with batch support and a fixed output
// dimension. Vectors come back unit-normalized from the providers.
type Encoder struct {
	provider   EmbeddingProvider
	dimensions int
}

func NewEncoder(provider EmbeddingProvider, dimensions int) *Encoder {
	return &Encoder{
		provider:   provider,
		dimensions: dimensions,
	}
}

func (e *Encoder) Dimensions() int {
	return e.dimensions
}

func (e *Encoder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := e.provider.Generate(text, taskType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(res.Embedding.Values) != e.dimensions {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d", ErrUnavailable, e.dimensions, len(res.Embedding.Values))
	}
	return res.Embedding.Values, nil
}

// EmbedBatch embeds texts one by one, preserving input order. A single
// failure aborts the whole batch.
func (e *Encoder) EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.Embed(ctx, text, taskType)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}
