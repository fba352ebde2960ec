package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Me(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	UpdateProficiency(ctx *fiber.Ctx) error
	ProficiencySummary(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/me", auth, c.Me)

	u := r.Group("/user")
	// Upsert and fetch stay ungated: they are the sync path for
	// externally managed identities.
	u.Post("/", c.Upsert)
	u.Get("/:id", c.GetById)
	u.Put("/:user_id/lo/:lo_id", auth, c.UpdateProficiency)
	u.Get("/:user_id/proficiency", auth, c.ProficiencySummary)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Profile retrieved", res)
}

func (c *userController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.UpsertUser(ctx.Context(), &req)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "User saved", res)
}

func (c *userController) GetById(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.service.GetProfile(ctx.Context(), id)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "User retrieved", res)
}

func (c *userController) UpdateProficiency(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	pathUserId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid user id")
	}
	if pathUserId != requesterId {
		return serverutils.Fail(ctx, fiber.StatusForbidden, "Cannot modify another user's proficiency")
	}

	loId, err := ctx.ParamsInt("lo_id")
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid objective id")
	}

	var req dto.UpdateProficiencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := c.service.UpdateProficiency(ctx.Context(), pathUserId, loId, &req); err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Proficiency updated", nil)
}

func (c *userController) ProficiencySummary(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	pathUserId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid user id")
	}
	if pathUserId != requesterId {
		return serverutils.Fail(ctx, fiber.StatusForbidden, "Cannot view another user's proficiency")
	}

	res, err := c.service.ProficiencySummary(ctx.Context(), pathUserId)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Proficiency summary retrieved", res)
}
