package submitter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-demo/internal/domain"
)

// Simulated stands in for the sale backend: it waits a fixed delay and then accepts the sale.
type Simulated struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay, now: time.Now}
}

func (s *Simulated) Submit(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return domain.Confirmation{}, fmt.Errorf("sale[%s]: %w", attempt.ID, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return domain.Confirmation{}, fmt.Errorf("sale[%s]: %w", attempt.ID, err)
	}

	return domain.Confirmation{
		ID:          uuid.NewString(),
		SaleID:      attempt.ID,
		ConfirmedAt: s.now().UTC(),
	}, nil
}

// Func adapts a plain function to port.SaleSubmitter.
type Func func(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error)

func (f Func) Submit(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error) {
	return f(ctx, attempt)
}
