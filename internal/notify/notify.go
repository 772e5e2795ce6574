package notify

import (
	"context"

	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/logger"
	"github.com/nikolayk812/pos-demo/internal/port"
)

// Log records checkout outcomes through the structured logger.
type Log struct {
	log *logger.Logger
}

func NewLog(log *logger.Logger) *Log {
	if log == nil {
		log = logger.Nop()
	}
	return &Log{log: log}
}

func (n *Log) OnCheckoutSucceeded(ctx context.Context, event domain.CheckoutSucceeded) {
	ctx = n.log.WithFields(ctx, map[string]any{
		"sale_id":         event.SaleID.String(),
		"total":           event.Total.String(),
		"payment_method":  event.PaymentMethod.String(),
		"confirmation_id": event.Confirmation.ID,
	})
	n.log.Info(ctx, "checkout succeeded")
}

func (n *Log) OnCheckoutFailed(ctx context.Context, event domain.CheckoutFailed) {
	ctx = n.log.WithSaleID(ctx, event.SaleID.String())
	n.log.Error(ctx, "checkout failed", event.Reason)
}

func (n *Log) OnValidationFailed(ctx context.Context, event domain.ValidationFailed) {
	n.log.Warn(ctx, "checkout rejected", event.Reason)
}

// Fanout delivers every notification to each notifier in order.
type Fanout []port.Notifier

func (f Fanout) OnCheckoutSucceeded(ctx context.Context, event domain.CheckoutSucceeded) {
	for _, n := range f {
		n.OnCheckoutSucceeded(ctx, event)
	}
}

func (f Fanout) OnCheckoutFailed(ctx context.Context, event domain.CheckoutFailed) {
	for _, n := range f {
		n.OnCheckoutFailed(ctx, event)
	}
}

func (f Fanout) OnValidationFailed(ctx context.Context, event domain.ValidationFailed) {
	for _, n := range f {
		n.OnValidationFailed(ctx, event)
	}
}

// Nop ignores every notification.
type Nop struct{}

func (Nop) OnCheckoutSucceeded(context.Context, domain.CheckoutSucceeded) {}
func (Nop) OnCheckoutFailed(context.Context, domain.CheckoutFailed)       {}
func (Nop) OnValidationFailed(context.Context, domain.ValidationFailed)   {}
