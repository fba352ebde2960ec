package controller

import (
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/serverutils"
	"ai-tutoring-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Start(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	NextObjective(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	ListObjectiveMessages(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	s := r.Group("/session", auth)
	s.Post("/start", c.Start)
	s.Get("/:lo_id/next_lo", c.NextObjective)
	s.Get("/:id", c.Get)
	s.Post("/:id/message", c.PostMessage)
	s.Get("/:id/messages", c.ListMessages)
	s.Get("/:id/lo/:lo_id/messages", c.ListObjectiveMessages)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}
	if req.UserId != requesterId {
		return serverutils.Fail(ctx, fiber.StatusForbidden, "Cannot start a session for another user")
	}

	res, err := c.service.StartSession(ctx.Context(), &req)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Session started", res)
}

func (c *sessionController) Get(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.service.GetSession(ctx.Context(), requesterId, sessionId)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Session retrieved", res)
}

func (c *sessionController) NextObjective(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	loId, err := ctx.ParamsInt("lo_id")
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid objective id")
	}

	res, err := c.service.NextUnmasteredObjective(ctx.Context(), requesterId, loId)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Next objective resolved", res)
}

func (c *sessionController) PostMessage(ctx *fiber.Ctx) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.PostMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.AppendMessage(ctx.Context(), requesterId, sessionId, &req)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusCreated, "Message appended", res)
}

func (c *sessionController) ListMessages(ctx *fiber.Ctx) error {
	return c.listMessages(ctx, false)
}

func (c *sessionController) ListObjectiveMessages(ctx *fiber.Ctx) error {
	return c.listMessages(ctx, true)
}

func (c *sessionController) listMessages(ctx *fiber.Ctx, byObjective bool) error {
	requesterId, ok := currentUserId(ctx)
	if !ok {
		return serverutils.Fail(ctx, fiber.StatusUnauthorized, "Missing identity")
	}

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid session id")
	}

	var loId *int
	if byObjective {
		id, err := ctx.ParamsInt("lo_id")
		if err != nil {
			return serverutils.Fail(ctx, fiber.StatusBadRequest, "Invalid objective id")
		}
		loId = &id
	}

	res, err := c.service.ListMessages(ctx.Context(), requesterId, sessionId, loId)
	if err != nil {
		return serverutils.FromError(ctx, err)
	}
	return serverutils.Success(ctx, fiber.StatusOK, "Messages retrieved", res)
}
