package submitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/logger"
	"github.com/nikolayk812/pos-demo/internal/port"
	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned without calling the backend while the breaker is open.
var ErrCircuitOpen = errors.New("sale backend unavailable")

type BreakerConfig struct {
	Name string

	// MaxFailures consecutive failures trip the breaker.
	MaxFailures uint32

	// OpenTimeout is how long the breaker stays open before letting one probe through.
	OpenTimeout time.Duration
}

// Breaker fails sale submissions fast once the backend keeps rejecting them.
// It never retries on its own.
type Breaker struct {
	next    port.SaleSubmitter
	breaker *gobreaker.CircuitBreaker[domain.Confirmation]
}

func NewBreaker(next port.SaleSubmitter, cfg BreakerConfig, log *logger.Logger) *Breaker {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Name == "" {
		cfg.Name = "sale-submitter"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			ctx := log.WithFields(context.Background(), map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			log.Warn(ctx, "circuit breaker state change", nil)
		},
	}

	return &Breaker{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[domain.Confirmation](settings),
	}
}

func (b *Breaker) Submit(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error) {
	conf, err := b.breaker.Execute(func() (domain.Confirmation, error) {
		return b.next.Submit(ctx, attempt)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.Confirmation{}, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	if err != nil {
		return domain.Confirmation{}, err
	}

	return conf, nil
}

func (b *Breaker) State() gobreaker.State {
	return b.breaker.State()
}
