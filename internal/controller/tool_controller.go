package controller

import (
	"errors"

	"support-agent-be/internal/dto"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/pkg/serverutils"
	"support-agent-be/pkg/agent/tools"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
	Execute(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type toolController struct {
	registry *tools.Registry
}

func NewToolController(registry *tools.Registry) IToolController {
	return &toolController{
		registry: registry,
	}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools")
	h.Post("/execute", c.Execute)
	h.Get("/", c.List)
}

func (c *toolController) Execute(ctx *fiber.Ctx) error {
	var req dto.ExecuteToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.registry.Execute(ctx.Context(), req.ToolName, req.ToolArgs)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			return apperror.UnknownTool(req.ToolName)
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute tool", dto.ExecuteToolResponse{
		ToolName: req.ToolName,
		Result:   result,
	}))
}

func (c *toolController) List(ctx *fiber.Ctx) error {
	descriptors := c.registry.List()
	items := make([]dto.ToolDescriptor, len(descriptors))
	for i, d := range descriptors {
		items[i] = dto.ToolDescriptor{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tools", items))
}
