package historymock

import (
	"context"

	domain "credscore-service/internal/domain/history"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendScoreEventFn func(ctx context.Context, e *domain.CreditScoreEvent) error
	AppendActivityFn   func(ctx context.Context, e *domain.ActivityLogEntry) error
	AddTipFn           func(ctx context.Context, e *domain.TipEvent) error
	CountTipsFn        func(ctx context.Context, cnp string) (int64, error)
}

func (m *Repo) AppendScoreEvent(ctx context.Context, e *domain.CreditScoreEvent) error {
	if m.AppendScoreEventFn != nil {
		return m.AppendScoreEventFn(ctx, e)
	}
	return nil
}

func (m *Repo) AppendActivity(ctx context.Context, e *domain.ActivityLogEntry) error {
	if m.AppendActivityFn != nil {
		return m.AppendActivityFn(ctx, e)
	}
	return nil
}

func (m *Repo) AddTip(ctx context.Context, e *domain.TipEvent) error {
	if m.AddTipFn != nil {
		return m.AddTipFn(ctx, e)
	}
	return nil
}

func (m *Repo) CountTips(ctx context.Context, cnp string) (int64, error) {
	if m.CountTipsFn != nil {
		return m.CountTipsFn(ctx, cnp)
	}
	return 0, nil
}

// Recorder is an in-memory Repository for tests that assert on the trail of
// appended events.
type Recorder struct {
	ScoreEvents []domain.CreditScoreEvent
	Activities  []domain.ActivityLogEntry
	Tips        []domain.TipEvent
}

func (r *Recorder) AppendScoreEvent(_ context.Context, e *domain.CreditScoreEvent) error {
	r.ScoreEvents = append(r.ScoreEvents, *e)
	return nil
}

func (r *Recorder) AppendActivity(_ context.Context, e *domain.ActivityLogEntry) error {
	r.Activities = append(r.Activities, *e)
	return nil
}

func (r *Recorder) AddTip(_ context.Context, e *domain.TipEvent) error {
	r.Tips = append(r.Tips, *e)
	return nil
}

func (r *Recorder) CountTips(_ context.Context, cnp string) (int64, error) {
	var n int64
	for _, t := range r.Tips {
		if t.UserCNP == cnp {
			n++
		}
	}
	return n, nil
}
