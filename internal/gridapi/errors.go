package gridapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/signalsfoundry/hexsphere/hexgrid"
)

// ErrLimitExceeded marks requests rejected by the configured size guardrails.
var ErrLimitExceeded = errors.New("request exceeds configured limits")

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

// errUnprocessable returns a 422 error.
func errUnprocessable(c *fiber.Ctx, code string, msg string) error {
	return newError(c, fiber.StatusUnprocessableEntity, code, msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

// respondError maps engine sentinels onto HTTP statuses. Malformed input maps
// to 400; requests that are well-formed but cannot be satisfied for these
// operands map to 422; anything unrecognised is a 500.
func respondError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, hexgrid.ErrInvalidResolution),
		errors.Is(err, hexgrid.ErrInvalidCell),
		errors.Is(err, hexgrid.ErrInvalidEdge),
		errors.Is(err, hexgrid.ErrInvalidCoordinate),
		errors.Is(err, hexgrid.ErrInvalidPolygon),
		errors.Is(err, hexgrid.ErrInvalidK),
		errors.Is(err, hexgrid.ErrResolutionMismatch),
		errors.Is(err, hexgrid.ErrNotNeighbors),
		errors.Is(err, hexgrid.ErrDuplicateCell):
		return errBadRequest(c, err.Error())

	case errors.Is(err, hexgrid.ErrPentagonDistortion):
		return errUnprocessable(c, "pentagon_distortion", err.Error())
	case errors.Is(err, hexgrid.ErrCellsTooFar):
		return errUnprocessable(c, "cells_too_far", err.Error())
	case errors.Is(err, ErrLimitExceeded):
		return errUnprocessable(c, "limit_exceeded", err.Error())

	default:
		return errInternal(c, err.Error())
	}
}
