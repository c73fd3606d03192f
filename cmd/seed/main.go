package main

import (
	"context"
	"log"
	"time"

	"support-agent-be/internal/config"
	"support-agent-be/internal/entity"
	"support-agent-be/internal/model"
	"support-agent-be/internal/pkg/logger"
	"support-agent-be/internal/repository/specification"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/internal/service"
	"support-agent-be/pkg/database"
	"support-agent-be/pkg/embedding"

	"github.com/google/uuid"
)

// Seeds the demo knowledge base and a demo user. Requires a reachable
// embedding backend since documents are stored with their vectors.
func main() {
	cfg := config.Load()

	if err := model.ValidateEmbeddingDimensions(cfg.Ai.EmbeddingDimensions); err != nil {
		log.Fatalf("Error: %v", err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
	}
	encoder := embedding.NewEncoder(embeddingProvider, cfg.Ai.EmbeddingDimensions)

	documentService := service.NewDocumentService(uowFactory, encoder, nil, sysLogger)

	ctx := context.Background()

	// Demo user for get_user / ticket ownership
	uow := uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: "demo@acme.com"})
	if err != nil {
		log.Fatalf("Error: Failed to check demo user: %v", err)
	}
	if existing == nil {
		user := entity.User{
			Id:        uuid.New(),
			Email:     "demo@acme.com",
			FullName:  "Demo User",
			CreatedAt: time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, &user); err != nil {
			log.Fatalf("Error: Failed to seed demo user: %v", err)
		}
		log.Printf("Seeded demo user %s", user.Id)
	} else {
		log.Printf("Demo user already present (%s)", existing.Id)
	}

	count, err := documentService.Index(ctx, documentService.DemoDocuments())
	if err != nil {
		log.Fatalf("Error: Failed to seed documents: %v", err)
	}

	log.Printf("Success: seeded %d demo documents.", count)
}
