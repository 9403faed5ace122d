package notify

import (
	"context"
	"log"
)

// Bracket is the credit-score band a consolation tip is selected from.
type Bracket string

const (
	BracketLow    Bracket = "low"    // score < 300
	BracketMedium Bracket = "medium" // 300 <= score < 550
	BracketHigh   Bracket = "high"   // score >= 550
)

// BracketFor maps a credit score to its tip bracket.
func BracketFor(creditScore int) Bracket {
	switch {
	case creditScore < 300:
		return BracketLow
	case creditScore < 550:
		return BracketMedium
	default:
		return BracketHigh
	}
}

type MessageKind string

const (
	MessageCongratulatory MessageKind = "congratulatory"
	MessageRoast          MessageKind = "roast"
)

// TipService and MessageService are fire-and-forget collaborators. The
// engines treat every call as best-effort: failures are logged, never
// propagated into the primary score mutation.
type TipService interface {
	GiveTip(ctx context.Context, cnp string, bracket Bracket) error
}

type MessageService interface {
	GiveMessage(ctx context.Context, cnp string, kind MessageKind) error
}

// LogNotifier is the default delivery: it just writes a log line. Real
// delivery (push, mail) plugs in behind the same interfaces.
type LogNotifier struct{}

func (LogNotifier) GiveTip(_ context.Context, cnp string, bracket Bracket) error {
	log.Printf("notify: tip bracket=%s user=%s", bracket, cnp)
	return nil
}

func (LogNotifier) GiveMessage(_ context.Context, cnp string, kind MessageKind) error {
	log.Printf("notify: message kind=%s user=%s", kind, cnp)
	return nil
}
