package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"support-agent-be/internal/dto"
	"support-agent-be/internal/entity"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/pkg/logger"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/pkg/embedding"
	"support-agent-be/pkg/events"
	pktNats "support-agent-be/pkg/nats"

	"github.com/google/uuid"
)

type IDocumentService interface {
	// Index embeds and stores all documents in one transaction. Either the
	// whole batch lands or none of it does.
	Index(ctx context.Context, documents []dto.DocumentInput) (int, error)
	// Search ranks stored documents against the query, best match first.
	Search(ctx context.Context, query string, topK int) ([]dto.SourceItem, error)
	DemoDocuments() []dto.DocumentInput
}

type documentService struct {
	uowFactory     unitofwork.RepositoryFactory
	encoder        *embedding.Encoder
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	encoder *embedding.Encoder,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:     uowFactory,
		encoder:        encoder,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *documentService) Index(ctx context.Context, documents []dto.DocumentInput) (int, error) {
	if len(documents) == 0 {
		return 0, nil
	}

	texts := make([]string, len(documents))
	for i, doc := range documents {
		texts[i] = doc.Content
	}

	vectors, err := s.encoder.EmbedBatch(ctx, texts, embedding.TaskTypeDocument)
	if err != nil {
		if errors.Is(err, embedding.ErrUnavailable) {
			return 0, apperror.EncoderUnavailable(err)
		}
		return 0, err
	}

	entities := make([]*entity.Document, len(documents))
	now := time.Now()
	for i, doc := range documents {
		entities[i] = &entity.Document{
			Id:        uuid.New(),
			Content:   doc.Content,
			Metadata:  doc.Metadata,
			Embedding: vectors[i],
			CreatedAt: now,
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, apperror.Storage("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().CreateBulk(ctx, entities); err != nil {
		return 0, apperror.Storage("failed to store documents", err)
	}
	if err := uow.Commit(); err != nil {
		return 0, apperror.Storage("failed to commit documents", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewDocumentIndexed(len(entities))
		// Fanout is auxiliary, never fail the request over it
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("DocumentService", "failed to publish DOCUMENT_INDEXED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return len(entities), nil
}

func (s *documentService) Search(ctx context.Context, query string, topK int) ([]dto.SourceItem, error) {
	if topK <= 0 {
		return nil, apperror.InvalidArgument(fmt.Sprintf("top_k must be positive, got %d", topK))
	}

	vector, err := s.encoder.Embed(ctx, query, embedding.TaskTypeQuery)
	if err != nil {
		if errors.Is(err, embedding.ErrUnavailable) {
			return nil, apperror.EncoderUnavailable(err)
		}
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentRepository().SearchSimilarWithScore(ctx, vector, topK)
	if err != nil {
		return nil, apperror.Storage("failed to search documents", err)
	}

	sources := make([]dto.SourceItem, len(scored))
	for i, sd := range scored {
		sources[i] = dto.SourceItem{
			Id:       sd.Document.Id,
			Content:  sd.Document.Content,
			Metadata: sd.Document.Metadata,
			Score:    sd.Score,
		}
	}
	return sources, nil
}

func (s *documentService) DemoDocuments() []dto.DocumentInput {
	return []dto.DocumentInput{
		{
			Content:  "Technical support hours are Monday to Friday from 8 AM to 6 PM EST. For urgent issues outside business hours, please email support@acme.com with subject URGENT.",
			Metadata: map[string]any{"source": "demo", "category": "support"},
		},
		{
			Content:  "Return policy: Items can be returned within 30 days of purchase with original receipt. Refunds are processed within 5-7 business days after inspection.",
			Metadata: map[string]any{"source": "demo", "category": "policies"},
		},
		{
			Content:  "Our pricing plans: Starter ($29/month), Professional ($99/month), Enterprise (custom). All plans include 24/7 API access.",
			Metadata: map[string]any{"source": "demo", "category": "pricing"},
		},
		{
			Content:  "Payment methods accepted: Credit card, PayPal, Wire transfer. Invoices are generated monthly and sent to registered email.",
			Metadata: map[string]any{"source": "demo", "category": "billing"},
		},
		{
			Content:  "SLA guarantees 99.9% uptime for Enterprise customers. For Standard tier, we guarantee 99.5% uptime. Compensation applies if SLA is breached.",
			Metadata: map[string]any{"source": "demo", "category": "sla"},
		},
	}
}
