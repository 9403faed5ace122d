package http

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	bsDomain "credscore-service/internal/domain/billsplit"
	"credscore-service/internal/domain/chatreport"
	"credscore-service/internal/domain/loan"
	"credscore-service/internal/domain/user"
)

// statusFor maps engine sentinel errors to HTTP status codes; handlers do no
// engine logic of their own.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrRequestNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, bsDomain.ErrNotFound),
		errors.Is(err, chatreport.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrAlreadySolved),
		errors.Is(err, loan.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, loan.ErrInvalidInput),
		errors.Is(err, loan.ErrInvalidTerm),
		errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, user.ErrZeroIncome),
		errors.Is(err, bsDomain.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
