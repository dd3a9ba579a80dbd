package handler

import (
	"github.com/fadilmartias/intervue-backend/internal/middleware"
	"github.com/fadilmartias/intervue-backend/internal/usecase"
	"github.com/fadilmartias/intervue-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App, requireAuth fiber.Handler) {
	users := app.Group("/api/users", requireAuth)
	users.Get("/me/stats", h.Stats)
	users.Get("/me/github", h.AnalyzeGithub)
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), middleware.Principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get user stats",
		Data:    stats,
	})
}

func (h *UserHandler) AnalyzeGithub(c *fiber.Ctx) error {
	profile, err := h.uc.AnalyzeGithub(c.Context(), middleware.Principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success analyze github profile",
		Data:    profile,
	})
}
