package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

const embeddingDims = 768

// axisVector builds a unit vector pointing along one dimension so cosine
// similarity against the query is exactly known.
func axisVector(axis int) []float32 {
	vec := make([]float32, embeddingDims)
	vec[axis] = 1
	return vec
}

func blendVector(axisA, axisB int, weightA, weightB float32) []float32 {
	vec := make([]float32, embeddingDims)
	vec[axisA] = weightA
	vec[axisB] = weightB
	return vec
}

func TestVectorSearchRanking(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	exactId := uuid.New()
	closeId := uuid.New()
	farId := uuid.New()
	documents := []*entity.Document{
		{
			Id:        exactId,
			Content:   "exact match document",
			Metadata:  map[string]any{"fixture": "vector-search"},
			Embedding: axisVector(0),
		},
		{
			Id:        closeId,
			Content:   "close match document",
			Metadata:  map[string]any{"fixture": "vector-search"},
			Embedding: blendVector(0, 1, 0.8, 0.6),
		},
		{
			Id:        farId,
			Content:   "unrelated document",
			Metadata:  map[string]any{"fixture": "vector-search"},
			Embedding: axisVector(2),
		},
	}

	err = uow.DocumentRepository().CreateBulk(ctx, documents)
	assert.NoError(t, err)
	defer func() {
		for _, doc := range documents {
			_ = uow.DocumentRepository().Delete(ctx, doc.Id)
		}
	}()

	t.Run("ranked best match first", func(t *testing.T) {
		results, err := uow.DocumentRepository().SearchSimilarWithScore(ctx, axisVector(0), 10)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(results), 3)

		positions := map[uuid.UUID]int{}
		scores := map[uuid.UUID]float64{}
		for i, res := range results {
			positions[res.Document.Id] = i
			scores[res.Document.Id] = res.Score
		}

		assert.Less(t, positions[exactId], positions[closeId])
		assert.Less(t, positions[closeId], positions[farId])

		assert.InDelta(t, 1.0, scores[exactId], 1e-6)
		assert.InDelta(t, 0.8, scores[closeId], 1e-6)
		assert.InDelta(t, 0.0, scores[farId], 1e-6)
	})

	t.Run("limit respected", func(t *testing.T) {
		results, err := uow.DocumentRepository().SearchSimilarWithScore(ctx, axisVector(0), 1)
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, exactId, results[0].Document.Id)
	})

	t.Run("deleted documents excluded", func(t *testing.T) {
		err := uow.DocumentRepository().Delete(ctx, farId)
		assert.NoError(t, err)

		results, err := uow.DocumentRepository().SearchSimilarWithScore(ctx, axisVector(2), 50)
		assert.NoError(t, err)
		for _, res := range results {
			assert.NotEqual(t, farId, res.Document.Id)
		}
	})
}
