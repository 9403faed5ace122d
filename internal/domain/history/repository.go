package history

import "context"

type Repository interface {
	AppendScoreEvent(ctx context.Context, e *CreditScoreEvent) error
	AppendActivity(ctx context.Context, e *ActivityLogEntry) error
	AddTip(ctx context.Context, e *TipEvent) error
	CountTips(ctx context.Context, cnp string) (int64, error)
}
