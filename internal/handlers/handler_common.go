package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/periods"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error payload returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleServiceError maps service-layer errors onto HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operation not permitted"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPartialBatch):
		// The parent row exists but its dependent rows do not; 500 with a
		// distinct message so operators can spot the inconsistent state.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Record partially created, please contact support"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// parsePeriod turns the period query parameter into a period specification.
// Accepted values: "all", "3m", "6m", "12m" and a specific month "YYYY-MM".
func parsePeriod(raw string, now time.Time) (periods.Period, error) {
	switch raw {
	case "", "all":
		return periods.AllMonths(), nil
	case "3m":
		return periods.FixedWindow(3, now), nil
	case "6m":
		return periods.FixedWindow(6, now), nil
	case "12m":
		return periods.FixedWindow(12, now), nil
	}
	ref, err := time.Parse("2006-01", raw)
	if err != nil {
		return periods.Period{}, fmt.Errorf("invalid period %q", raw)
	}
	return periods.SingleMonth(ref), nil
}
