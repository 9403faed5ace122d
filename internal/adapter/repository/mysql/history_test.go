package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	crDomain "credscore-service/internal/domain/chatreport"
	histDomain "credscore-service/internal/domain/history"
)

func TestHistoryAppendAndCountTips(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	cnp := "1960101223344"
	for _, bracket := range []string{"low", "medium", "medium"} {
		if err := repo.AddTip(ctx, &histDomain.TipEvent{UserCNP: cnp, Bracket: bracket}); err != nil {
			t.Fatalf("AddTip: %v", err)
		}
	}
	if err := repo.AddTip(ctx, &histDomain.TipEvent{UserCNP: "2940506111223", Bracket: "high"}); err != nil {
		t.Fatalf("AddTip: %v", err)
	}

	n, err := repo.CountTips(ctx, cnp)
	if err != nil {
		t.Fatalf("CountTips: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestHistoryAppendScoreEventAndActivity(t *testing.T) {
	db := openTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	if err := repo.AppendScoreEvent(ctx, &histDomain.CreditScoreEvent{
		UserCNP: "1960101223344", Score: 485, Reason: histDomain.ReasonChatPunishment,
	}); err != nil {
		t.Fatalf("AppendScoreEvent: %v", err)
	}
	if err := repo.AppendActivity(ctx, &histDomain.ActivityLogEntry{
		UserCNP: "1960101223344", Amount: 15, Detail: "chat punishment",
	}); err != nil {
		t.Fatalf("AppendActivity: %v", err)
	}

	var events []histDomain.CreditScoreEvent
	if err := db.Find(&events).Error; err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Reason != histDomain.ReasonChatPunishment {
		t.Errorf("unexpected score events: %+v", events)
	}
}

func TestChatReportGetAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewChatReportRepository(db)
	ctx := context.Background()

	if err := db.Create(&chatReportSQLite{
		ReportID:        "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ReportedUserCNP: "1960101223344",
		SubmitterCNP:    "2940506111223",
		Reason:          "spam",
	}).Error; err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByReportID(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("GetByReportID: %v", err)
	}
	if got.ReportedUserCNP != "1960101223344" || got.Reason != "spam" {
		t.Errorf("unexpected report: %+v", got)
	}

	if err := repo.Delete(ctx, got.ReportID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByReportID(ctx, got.ReportID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("GetAll after delete = %+v, want empty", all)
	}
}

var _ crDomain.Repository = (*ChatReportRepository)(nil)
