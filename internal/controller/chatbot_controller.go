package controller

import (
	"encoding/json"

	"mentorlink-be/internal/constant"
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/service"
	"mentorlink-be/pkg/chatbot"
	"mentorlink-be/pkg/locale"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	logger  logger.ILogger
}

func NewChatbotController(service service.IChatbotService, logger logger.ILogger) IChatbotController {
	return &chatbotController{
		service: service,
		logger:  logger,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.SendChat)
}

// SendChat never answers with a 5xx: the chat UI renders every reply as a message bubble.
func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	req, ok := parseChatRequest(ctx)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatErrorResponse{Error: constant.ChatRequiredMessageError})
	}

	res, err := c.service.SendChat(ctx.UserContext(), req)
	if err != nil {
		c.logger.Error("CHATBOT", "Chat turn failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ctx.JSON(dto.ChatFallbackResponse{
			Response: chatbot.TemporaryErrorMessage(locale.Resolve(req.Locale)),
			Links:    []dto.LinkDTO{},
		})
	}

	if res.Fallback {
		return ctx.JSON(dto.ChatFallbackResponse{
			Response: res.Response,
			Links:    []dto.LinkDTO{},
		})
	}

	return ctx.JSON(res)
}

// chatRequestBody defers typing so a malformed locale never rejects the request.
type chatRequestBody struct {
	Message json.RawMessage `json:"message"`
	Locale  json.RawMessage `json:"locale"`
}

// parseChatRequest reads the body as JSON whatever the Content-Type. It fails only
// when message is absent, not a string, or empty. A locale that is not a string
// is dropped and later resolves to the default.
func parseChatRequest(ctx *fiber.Ctx) (*dto.ChatRequest, bool) {
	var body chatRequestBody
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), &body); err != nil {
		return nil, false
	}

	var message string
	if len(body.Message) == 0 || json.Unmarshal(body.Message, &message) != nil || message == "" {
		return nil, false
	}

	var loc string
	if len(body.Locale) > 0 {
		_ = json.Unmarshal(body.Locale, &loc)
	}

	return &dto.ChatRequest{Message: &message, Locale: loc}, true
}
