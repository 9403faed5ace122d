package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credscore-service/internal/jobs"
	"credscore-service/internal/usecase/loanengine"
)

type LoanHandler struct {
	uc      *loanengine.Engine
	sweeper *jobs.LoanSweeper
}

func NewLoanHandler(uc *loanengine.Engine, sweeper *jobs.LoanSweeper) *LoanHandler {
	return &LoanHandler{uc: uc, sweeper: sweeper}
}

// ApproveRequest turns a pending loan request into an active loan.
func (h *LoanHandler) ApproveRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	dto, err := h.uc.CreateFromRequest(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

// CheckLoans triggers one locked sweep outside the timer schedule.
func (h *LoanHandler) CheckLoans(c echo.Context) error {
	res, err := h.sweeper.RunOnce(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

type incrementPaymentReq struct {
	Penalty decimal.Decimal `json:"penalty" validate:"gte=0"`
}

func (h *LoanHandler) IncrementPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req incrementPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.IncrementPayment(c.Request().Context(), loanID, req.Penalty)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// Suggest returns the advisor's qualification verdict for a pending request.
func (h *LoanHandler) Suggest(c echo.Context) error {
	requestID := c.Param("request_id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
	}
	suggestion, err := h.uc.Suggest(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"qualifies":  suggestion == "",
		"suggestion": suggestion,
	})
}
