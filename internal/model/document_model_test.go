package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmbeddingDimensions(t *testing.T) {
	assert.NoError(t, ValidateEmbeddingDimensions(EmbeddingDimensions))

	err := ValidateEmbeddingDimensions(1024)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vector(768)")
	assert.Contains(t, err.Error(), "EMBEDDING_DIMENSIONS=1024")
}
