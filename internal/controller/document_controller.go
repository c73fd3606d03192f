package controller

import (
	"support-agent-be/internal/config"
	"support-agent-be/internal/dto"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/pkg/serverutils"
	"support-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	SeedData(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	agentConfig     config.AgentConfig
}

func NewDocumentController(documentService service.IDocumentService, agentConfig config.AgentConfig) IDocumentController {
	return &documentController{
		documentService: documentService,
		agentConfig:     agentConfig,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/embeddings")
	h.Post("/index", c.Index)
	h.Get("/search", c.Search)

	r.Get("/demo/seed-data", c.SeedData)
}

func (c *documentController) Index(ctx *fiber.Ctx) error {
	var req dto.IndexDocumentsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	count, err := c.documentService.Index(ctx.Context(), req.Documents)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success index documents", dto.IndexDocumentsResponse{
		Indexed: count,
	}))
}

func (c *documentController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	if query == "" {
		return apperror.InvalidArgument("query is required")
	}
	topK := ctx.QueryInt("top_k", c.agentConfig.RagTopK)

	sources, err := c.documentService.Search(ctx.Context(), query, topK)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search documents", dto.SearchDocumentsResponse{
		Query:   query,
		Sources: sources,
	}))
}

func (c *documentController) SeedData(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get demo documents", dto.SeedDataResponse{
		Documents: c.documentService.DemoDocuments(),
	}))
}
