package handler

import (
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/middleware"
	"github.com/fadilmartias/intervue-backend/internal/usecase"
	"github.com/fadilmartias/intervue-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(app *fiber.App, requireAuth fiber.Handler) {
	reports := app.Group("/api/reports", requireAuth)
	reports.Get("/", h.List)
	reports.Post("/", h.Create)
	reports.Post("/draft", h.Draft)
	reports.Get("/:id", h.Get)
	reports.Delete("/:id", h.Delete)
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	page := c.QueryInt("page")
	pageSize := c.QueryInt("page_size")

	summaries, pagination, err := h.uc.List(c.Context(), principal, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success get reports",
		Data:       summaries,
		Pagination: pagination,
	})
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	report, err := h.uc.Create(c.Context(), principal, req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Report created successfully",
		Data:    dto.NewReportDTO(report),
	})
}

func (h *ReportHandler) Draft(c *fiber.Ctx) error {
	var req dto.DraftReportRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}

	draft, err := h.uc.Draft(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success draft report",
		Data:    draft,
	})
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	report, err := h.uc.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success get report",
		Data:    dto.NewReportDTO(report),
	})
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	if err := h.uc.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Report deleted successfully",
	})
}
