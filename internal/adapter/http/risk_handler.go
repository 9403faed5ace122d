package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credscore-service/internal/usecase/riskengine"
)

type RiskHandler struct{ uc *riskengine.Engine }

func NewRiskHandler(uc *riskengine.Engine) *RiskHandler { return &RiskHandler{uc: uc} }

// Recalculate runs the full risk → ROI → credit rebalance pipeline over all
// users.
func (h *RiskHandler) Recalculate(c echo.Context) error {
	res, err := h.uc.RecalculateAll(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *RiskHandler) Portfolios(c echo.Context) error {
	out, err := h.uc.PortfolioSummaries(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
