package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loanDomain "credscore-service/internal/domain/loan"
	"credscore-service/pkg/id"
)

func makeLoan(loanID, cnp string) *loanDomain.Loan {
	appDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return &loanDomain.Loan{
		LoanID:               loanID,
		UserCNP:              cnp,
		Amount:               decimal.NewFromInt(1200),
		ApplicationDate:      appDate,
		RepaymentDate:        appDate.AddDate(1, 0, 0),
		InterestRate:         decimal.NewFromInt(10),
		NumberOfMonths:       12,
		MonthlyPaymentAmount: decimal.NewFromInt(110),
		RepaidAmount:         decimal.Zero,
		Penalty:              decimal.Zero,
		Status:               loanDomain.StatusActive,
	}
}

func TestLoanAddAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, "1960101223344")
	if err := repo.Add(ctx, l); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Add did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.UserCNP != "1960101223344" || got.Status != loanDomain.StatusActive {
		t.Errorf("unexpected loan: %+v", got)
	}
	if !got.MonthlyPaymentAmount.Equal(decimal.NewFromInt(110)) {
		t.Errorf("monthly payment = %s, want 110", got.MonthlyPaymentAmount)
	}
}

func TestLoanSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, "1960101223344")
	if err := repo.Add(ctx, l); err != nil {
		t.Fatalf("Add: %v", err)
	}

	l.Status = loanDomain.StatusOverdue
	l.Penalty = decimal.RequireFromString("7.5")
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusOverdue || !got.Penalty.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestLoanGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanGetByUserCNP(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	if err := repo.Add(ctx, makeLoan(id.NewID32(), "1960101223344")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Add(ctx, makeLoan(id.NewID32(), "1960101223344")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Add(ctx, makeLoan(id.NewID32(), "2940506111223")); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByUserCNP(ctx, "1960101223344")
	if err != nil {
		t.Fatalf("GetByUserCNP: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d loans, want 2", len(got))
	}
}

func TestLoanDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := repo.Add(ctx, makeLoan(loanID, "1960101223344")); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, loanID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestLoanTx_Commit(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	err := repo.Tx(ctx, func(r loanDomain.Repository) error {
		return r.Add(ctx, makeLoan(loanID, "1960101223344"))
	})
	if err != nil {
		t.Fatalf("Tx commit: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("GetByLoanID after commit: %v", err)
	}
}

func TestLoanTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	wantErr := errors.New("boom")

	_ = repo.Tx(ctx, func(r loanDomain.Repository) error {
		if err := r.Add(ctx, makeLoan(loanID, "1960101223344")); err != nil {
			return err
		}
		return wantErr // force rollback
	})

	_, err := repo.GetByLoanID(ctx, loanID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}

// --- loan requests ---

func seedRequest(t *testing.T, db *gorm.DB, requestID, status string) {
	t.Helper()
	appDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	if err := db.Create(&loanRequestSQLite{
		RequestID: requestID, UserCNP: "1960101223344",
		Amount: "1200", ApplicationDate: appDate, RepaymentDate: appDate.AddDate(1, 0, 0),
		Status: status,
	}).Error; err != nil {
		t.Fatal(err)
	}
}

func TestRequestGetUnsolved(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)

	seedRequest(t, db, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "unsolved")
	seedRequest(t, db, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "solved")
	seedRequest(t, db, "cccccccccccccccccccccccccccccccc", "unsolved")

	got, err := repo.GetUnsolved(context.Background())
	if err != nil {
		t.Fatalf("GetUnsolved: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d unsolved requests, want 2", len(got))
	}
	for _, r := range got {
		if r.Status != loanDomain.RequestUnsolved {
			t.Errorf("unexpected status: %+v", r)
		}
	}
}

func TestRequestMarkSolved(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	seedRequest(t, db, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "unsolved")

	if err := repo.MarkSolved(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"); err != nil {
		t.Fatalf("MarkSolved: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Status != loanDomain.RequestSolved {
		t.Errorf("status = %s, want solved", got.Status)
	}
}

func TestRequestMarkSolved_Unknown(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)

	err := repo.MarkSolved(context.Background(), "ffffffffffffffffffffffffffffffff")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
