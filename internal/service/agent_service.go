package service

import (
	"context"

	"support-agent-be/internal/config"
	"support-agent-be/internal/constant"
	"support-agent-be/internal/dto"
	"support-agent-be/internal/pkg/logger"
	"support-agent-be/pkg/agent/compose"
	"support-agent-be/pkg/agent/decision"
	"support-agent-be/pkg/agent/prompt"
	"support-agent-be/pkg/agent/tools"
	"support-agent-be/pkg/llm"
)

type IAgentService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type agentService struct {
	memoryService   IMemoryService
	documentService IDocumentService
	registry        *tools.Registry
	decider         decision.Decider
	llmProvider     llm.LLMProvider
	agentConfig     config.AgentConfig
	log             logger.ILogger
}

func NewAgentService(
	memoryService IMemoryService,
	documentService IDocumentService,
	registry *tools.Registry,
	decider decision.Decider,
	llmProvider llm.LLMProvider,
	agentConfig config.AgentConfig,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		memoryService:   memoryService,
		documentService: documentService,
		registry:        registry,
		decider:         decider,
		llmProvider:     llmProvider,
		agentConfig:     agentConfig,
		log:             log,
	}
}

// Chat runs one full agent turn: persist the user message, retrieve
// context, optionally run a tool, compose the answer, persist it. A broken
// tool degrades to an answer without the tool result; broken retrieval or
// storage fails the turn.
func (s *agentService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId, err := s.memoryService.EnsureSession(ctx, req.SessionId, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := s.memoryService.Append(ctx, sessionId, constant.AgentMessageRoleUser, req.Message); err != nil {
		return nil, err
	}

	sources, err := s.documentService.Search(ctx, req.Message, s.agentConfig.RagTopK)
	if err != nil {
		return nil, err
	}

	recent, err := s.memoryService.Recent(ctx, sessionId, s.agentConfig.MemoryLimit)
	if err != nil {
		return nil, err
	}

	contextBlock := compose.FormatContext(sources, recent)

	// Anonymous follow-up turns reuse the identity cached on an earlier
	// turn of the same session, so tickets stay attributed.
	userId := req.UserId
	if userId == nil {
		userId = s.memoryService.CachedUser(sessionId)
	}

	turn := decision.Turn{
		Message: req.Message,
		Context: contextBlock,
	}
	if userId != nil {
		turn.UserId = userId.String()
	}

	var toolResult map[string]any
	if call := s.decider.Decide(ctx, turn); call != nil {
		toolResult, err = s.registry.Execute(ctx, call.Name, call.Args)
		if err != nil {
			s.log.Warn("AgentService", "tool execution failed, answering without tool result", map[string]interface{}{
				"tool":  call.Name,
				"error": err.Error(),
			})
			toolResult = nil
		}
	}

	answer := s.composeAnswer(ctx, req.Message, contextBlock, sources, toolResult)

	if err := s.memoryService.Append(ctx, sessionId, constant.AgentMessageRoleAssistant, answer); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		SessionId: sessionId.String(),
		Answer:    answer,
		Sources:   sources,
	}, nil
}

func (s *agentService) composeAnswer(ctx context.Context, message string, contextBlock string, sources []dto.SourceItem, toolResult map[string]any) string {
	if s.agentConfig.AnswerMode == config.AnswerModeLLM && s.llmProvider != nil {
		out, err := s.llmProvider.Generate(ctx, prompt.FinalResponse(message, contextBlock, toolResult),
			llm.WithMaxTokens(512),
			llm.WithTemperature(0.2),
		)
		if err == nil && out != "" {
			return out
		}
		if err != nil {
			s.log.Warn("AgentService", "llm answer failed, falling back to template", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	ticketId := ""
	if toolResult != nil {
		ticketId = "N/A"
		if ticket, ok := toolResult["ticket"].(map[string]any); ok {
			if id, ok := ticket["id"].(string); ok && id != "" {
				ticketId = id
			}
		}
	}
	return compose.Answer(sources, s.agentConfig.RagDisplayLimit, ticketId)
}
