package controller

import (
	"encoding/json"

	"support-agent-be/internal/dto"
	"support-agent-be/internal/pkg/serverutils"
	"support-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAutomationController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
}

type automationController struct {
	publisherService service.IPublisherService
	topicName        string
}

func NewAutomationController(publisherService service.IPublisherService, topicName string) IAutomationController {
	return &automationController{
		publisherService: publisherService,
		topicName:        topicName,
	}
}

func (c *automationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/automation")
	h.Post("/webhook", c.Webhook)
}

// Webhook accepts external automation events and hands them to the async
// consumer. The caller gets an ack as soon as the message is on the topic.
func (c *automationController) Webhook(ctx *fiber.Ctx) error {
	var req dto.WebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	payload, err := json.Marshal(dto.PublishAutomationEventMessage{
		EventType: req.EventType,
		Payload:   req.Payload,
	})
	if err != nil {
		return err
	}

	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success receive webhook", dto.WebhookResponse{
		Accepted: true,
		Topic:    c.topicName,
	}))
}
