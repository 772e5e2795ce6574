package port

import (
	"context"

	"github.com/nikolayk812/pos-demo/internal/domain"
)

// SaleSubmitter hands a sale attempt to the backend. Implementations must honor ctx.
type SaleSubmitter interface {
	Submit(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error)
}

type Notifier interface {
	OnCheckoutSucceeded(ctx context.Context, event domain.CheckoutSucceeded)
	OnCheckoutFailed(ctx context.Context, event domain.CheckoutFailed)
	OnValidationFailed(ctx context.Context, event domain.ValidationFailed)
}
