package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	MarkCompleted(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
}

type progressController struct {
	service service.IProgressService
}

func NewProgressController(service service.IProgressService) IProgressController {
	return &progressController{service: service}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress/v1")
	h.Post("/complete", c.MarkCompleted)
	h.Get("/status/:studentId/:unitId", c.GetStatus)
}

func (c *progressController) MarkCompleted(ctx *fiber.Ctx) error {
	var req dto.MarkCompletedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.MarkCompleted(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark completed", res))
}

func (c *progressController) GetStatus(ctx *fiber.Ctx) error {
	studentId, err := uuid.Parse(ctx.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	unitId, err := uuid.Parse(ctx.Params("unitId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid logical unit id")
	}

	res, err := c.service.GetStatus(ctx.Context(), studentId, unitId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get completion status", res))
}
