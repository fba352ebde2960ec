package controller

import (
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IObjectiveController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type objectiveController struct {
	service service.IObjectiveService
}

func NewObjectiveController(service service.IObjectiveService) IObjectiveController {
	return &objectiveController{service: service}
}

func (c *objectiveController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/objectives", auth)
	g.Get("/", c.List)
	g.Get("/:id", c.Get)
}

func (c *objectiveController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListObjectives(ctx.Context())
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Objectives retrieved", res)
}

func (c *objectiveController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid objective id")
	}

	res, err := c.service.GetObjective(ctx.Context(), id)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Objective retrieved", res)
}
