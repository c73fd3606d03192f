package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EmbeddingDimensions is the width of the documents embedding column. The
// vector tag below must carry the same number.
const EmbeddingDimensions = 768

// ValidateEmbeddingDimensions rejects a configured encoder width that does
// not match the migrated column, before any vector gets written truncated
// or the insert fails at runtime.
func ValidateEmbeddingDimensions(configured int) error {
	if configured != EmbeddingDimensions {
		return fmt.Errorf("EMBEDDING_DIMENSIONS=%d does not match the documents schema vector(%d)", configured, EmbeddingDimensions)
	}
	return nil
}

type Document struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string          `gorm:"type:text;not null"`
	Metadata  datatypes.JSON  `gorm:"type:jsonb"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}
