package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILessonController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type lessonController struct {
	service service.ILessonService
}

func NewLessonController(service service.ILessonService) ILessonController {
	return &lessonController{service: service}
}

func (c *lessonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lesson/v1")
	h.Post("/generate", c.Generate)
}

func (c *lessonController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateLessonRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateLessonContent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate lesson content", res))
}
