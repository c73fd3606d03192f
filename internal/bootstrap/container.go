package bootstrap

import (
	"log"

	"support-agent-be/internal/config"
	"support-agent-be/internal/controller"
	"support-agent-be/internal/model"
	"support-agent-be/internal/pkg/logger"
	"support-agent-be/internal/repository/memory"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/internal/service"
	"support-agent-be/pkg/agent/decision"
	"support-agent-be/pkg/embedding"
	"support-agent-be/pkg/llm/factory"

	pktNats "support-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController      controller.IAgentController
	DocumentController   controller.IDocumentController
	ToolController       controller.IToolController
	AutomationController controller.IAutomationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	if err := model.ValidateEmbeddingDimensions(cfg.Ai.EmbeddingDimensions); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS fanout is optional, the app runs degraded without it
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. AI backends
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}
	encoder := embedding.NewEncoder(embeddingProvider, cfg.Ai.EmbeddingDimensions)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceToken,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Services
	sessionRepo := memory.NewSessionRepository()
	memoryService := service.NewMemoryService(uowFactory, sessionRepo)
	documentService := service.NewDocumentService(uowFactory, encoder, natsPub, sysLogger)
	businessService := service.NewBusinessService(uowFactory, natsPub, sysLogger)

	registry := service.BuildToolRegistry(documentService, businessService)

	var decider decision.Decider
	if cfg.Agent.DecisionMode == config.DecisionModeLLM {
		decider = decision.NewLLMDecider(llmProvider, registry, sysLogger)
		log.Printf("[INFO] Using Decision Mode: LLM")
	} else {
		decider = decision.NewKeywordDecider()
		log.Printf("[INFO] Using Decision Mode: KEYWORD")
	}

	agentService := service.NewAgentService(
		memoryService,
		documentService,
		registry,
		decider,
		llmProvider,
		cfg.Agent,
		sysLogger,
	)

	publisherService := service.NewPublisherService(cfg.Agent.WebhookTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Agent.WebhookTopic, businessService)

	// 5. Controllers
	return &Container{
		AgentController:      controller.NewAgentController(agentService),
		DocumentController:   controller.NewDocumentController(documentService, cfg.Agent),
		ToolController:       controller.NewToolController(registry),
		AutomationController: controller.NewAutomationController(publisherService, cfg.Agent.WebhookTopic),
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}
}
