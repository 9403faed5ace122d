package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"

	bsDomain "credscore-service/internal/domain/billsplit"
	"credscore-service/internal/domain/chatreport"
	"credscore-service/internal/domain/loan"
	"credscore-service/internal/domain/user"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{loan.ErrNotFound, http.StatusNotFound},
		{loan.ErrRequestNotFound, http.StatusNotFound},
		{user.ErrNotFound, http.StatusNotFound},
		{bsDomain.ErrNotFound, http.StatusNotFound},
		{chatreport.ErrNotFound, http.StatusNotFound},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{loan.ErrAlreadySolved, http.StatusConflict},
		{loan.ErrInvalidTransition, http.StatusConflict},
		{loan.ErrInvalidTerm, http.StatusUnprocessableEntity},
		{user.ErrZeroIncome, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: amount must be positive", loan.ErrInvalidInput), http.StatusUnprocessableEntity},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Errorf("statusFor(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
