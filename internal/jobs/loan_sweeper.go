package jobs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"credscore-service/internal/usecase/loanengine"
)

const sweepLockKey = "lock:loan-sweep"

type LoanChecker interface {
	CheckLoans(ctx context.Context) (*loanengine.SweepResult, error)
}

// Locker serializes sweeps across instances; overlapping ticks skip instead
// of racing each other's read-modify-write cycles.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type RedisLocker struct{ rdb *redis.Client }

func NewRedisLocker(rdb *redis.Client) *RedisLocker { return &RedisLocker{rdb: rdb} }

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, "1", ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, key).Err()
}

type LoanSweeper struct {
	checker  LoanChecker
	locker   Locker
	interval time.Duration
	lockTTL  time.Duration
}

func NewLoanSweeper(checker LoanChecker, locker Locker, interval time.Duration) *LoanSweeper {
	return &LoanSweeper{
		checker:  checker,
		locker:   locker,
		interval: interval,
		lockTTL:  interval,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *LoanSweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *LoanSweeper) sweep(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		log.Printf("loan sweeper: %v", err)
	}
}

// RunOnce performs a single locked sweep. A sweep already in progress
// elsewhere makes this a no-op.
func (s *LoanSweeper) RunOnce(ctx context.Context) (*loanengine.SweepResult, error) {
	ok, err := s.locker.Acquire(ctx, sweepLockKey, s.lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Printf("loan sweeper: sweep already in progress, skipping")
		return &loanengine.SweepResult{}, nil
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), sweepLockKey); err != nil {
			log.Printf("loan sweeper: release lock: %v", err)
		}
	}()

	res, err := s.checker.CheckLoans(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("loan sweeper: checked=%d completed=%d overdue=%d failed=%d",
		res.Checked, res.Completed, res.Overdue, res.Failed)
	return res, nil
}
