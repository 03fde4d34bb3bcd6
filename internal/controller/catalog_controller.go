package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetTopics(ctx *fiber.Ctx) error
	CreateTopic(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
	CreateQuestion(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/topics/:studentId", c.GetTopics)
	h.Post("/topics", c.CreateTopic)
	h.Get("/topics/:topicId/questions", c.GetQuestions)
	h.Post("/questions", c.CreateQuestion)
}

func (c *catalogController) GetTopics(ctx *fiber.Ctx) error {
	studentId, err := uuid.Parse(ctx.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}

	res, err := c.service.GetTopics(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get topics", res))
}

func (c *catalogController) CreateTopic(ctx *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTopic(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create topic", res))
}

func (c *catalogController) GetQuestions(ctx *fiber.Ctx) error {
	topicId, err := uuid.Parse(ctx.Params("topicId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid topic id")
	}

	res, err := c.service.GetQuestions(ctx.Context(), topicId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get questions", res))
}

func (c *catalogController) CreateQuestion(ctx *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateQuestion(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create question", res))
}
