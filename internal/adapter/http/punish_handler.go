package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credscore-service/internal/usecase/punishment"
)

type PunishHandler struct{ uc *punishment.Engine }

func NewPunishHandler(uc *punishment.Engine) *PunishHandler { return &PunishHandler{uc: uc} }

func (h *PunishHandler) Punish(c echo.Context) error {
	reportID := c.Param("report_id")
	if !reHex32.MatchString(reportID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report_id"})
	}
	res, err := h.uc.Punish(c.Request().Context(), reportID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// Dismiss drops the report with no score effect.
func (h *PunishHandler) Dismiss(c echo.Context) error {
	reportID := c.Param("report_id")
	if !reHex32.MatchString(reportID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report_id"})
	}
	if err := h.uc.Dismiss(c.Request().Context(), reportID); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
