package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credscore-service/internal/usecase/billsplit"
)

type BillSplitHandler struct{ uc *billsplit.Engine }

func NewBillSplitHandler(uc *billsplit.Engine) *BillSplitHandler {
	return &BillSplitHandler{uc: uc}
}

// Solve settles an overdue bill-split report and applies the gravity penalty.
func (h *BillSplitHandler) Solve(c echo.Context) error {
	reportID := c.Param("report_id")
	if !reHex32.MatchString(reportID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid report_id"})
	}
	res, err := h.uc.Solve(c.Request().Context(), reportID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
