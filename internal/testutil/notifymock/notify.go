package notifymock

import (
	"context"

	"credscore-service/internal/notify"
)

// Notifier records tips and messages; optional fns override the default
// success.
type Notifier struct {
	GiveTipFn     func(ctx context.Context, cnp string, bracket notify.Bracket) error
	GiveMessageFn func(ctx context.Context, cnp string, kind notify.MessageKind) error

	Tips     []notify.Bracket
	Messages []notify.MessageKind
}

func (m *Notifier) GiveTip(ctx context.Context, cnp string, bracket notify.Bracket) error {
	if m.GiveTipFn != nil {
		return m.GiveTipFn(ctx, cnp, bracket)
	}
	m.Tips = append(m.Tips, bracket)
	return nil
}

func (m *Notifier) GiveMessage(ctx context.Context, cnp string, kind notify.MessageKind) error {
	if m.GiveMessageFn != nil {
		return m.GiveMessageFn(ctx, cnp, kind)
	}
	m.Messages = append(m.Messages, kind)
	return nil
}
