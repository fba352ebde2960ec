package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GenerateQuestion(ctx *fiber.Ctx) error
	EvaluateResponse(ctx *fiber.Ctx) error
}

type assessmentController struct {
	service service.IAssessmentService
}

func NewAssessmentController(service service.IAssessmentService) IAssessmentController {
	return &assessmentController{service: service}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/assessment_question", auth, c.GenerateQuestion)
	r.Post("/evaluate_response", auth, c.EvaluateResponse)
}

func (c *assessmentController) GenerateQuestion(ctx *fiber.Ctx) error {
	var req dto.AssessmentQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.GenerateQuestion(ctx.Context(), &req)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Question generated", res)
}

func (c *assessmentController) EvaluateResponse(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	var req dto.EvaluationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.EvaluateResponse(ctx.Context(), requesterId, &req)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Response evaluated", res)
}
