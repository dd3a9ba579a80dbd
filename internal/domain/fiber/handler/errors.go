package handler

import (
	"errors"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/util"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the shared error taxonomy onto HTTP responses. Anything
// unrecognized is treated as a storage or infrastructure failure.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *apperror.ValidationError
	if errors.As(err, &vErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "All fields are required",
			Details: vErr.Fields,
		}, err)
	}

	switch {
	case errors.Is(err, apperror.ErrValidation):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "All fields are required",
		}, err)
	case errors.Is(err, apperror.ErrInvalidID):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid report id",
		}, err)
	case errors.Is(err, apperror.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Not found",
		}, err)
	case errors.Is(err, apperror.ErrUnauthorized):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid credentials",
		}, err)
	case errors.Is(err, apperror.ErrConflict):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "Username, email, or github already registered",
		}, err)
	case errors.Is(err, apperror.ErrUpstream):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "Upstream service failed",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "Internal server error",
		}, err)
	}
}
