package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	msgInvalidBody       = "Invalid request body"
	msgInvalidQuery      = "Invalid query parameters"
	msgInvalidDateFilter = "Invalid date filter. Use YYYY-MM-DD"
	msgInvalidLoanID     = "Invalid loan id"
)

// fail maps any service error to the compatibility contract: always
// HTTP 400 with {success:false, message} — missing loans included.
func fail(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, FailureResponse{Success: false, Message: err.Error()})
}

func failMsg(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, FailureResponse{Success: false, Message: msg})
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
