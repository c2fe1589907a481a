package controller

import (
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Refresh(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Post("refresh", c.Refresh)
}

func (c *contentController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshContentRequest
	// An empty body is a refresh without a reason
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Refresh(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	body := serverutils.SuccessResponse("Content refresh scheduled", res)
	body.Code = fiber.StatusAccepted
	return ctx.Status(fiber.StatusAccepted).JSON(body)
}
