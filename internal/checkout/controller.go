package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-demo/internal/cart"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/logger"
	"github.com/nikolayk812/pos-demo/internal/metrics"
	"github.com/nikolayk812/pos-demo/internal/notify"
	"github.com/nikolayk812/pos-demo/internal/payment"
	"github.com/nikolayk812/pos-demo/internal/port"
	"github.com/nikolayk812/pos-demo/internal/totals"
)

// Controller turns the cart and the selected payment method into a submitted sale.
// At most one sale attempt is in flight at a time.
type Controller struct {
	cart      *cart.Store
	payment   *payment.Selector
	calc      totals.Calculator
	submitter port.SaleSubmitter

	notifier port.Notifier
	log      *logger.Logger
	metrics  *metrics.CheckoutMetrics
	timeout  time.Duration
	now      func() time.Time

	mu    sync.Mutex
	state State
	last  State
}

type Option func(*Controller)

func WithNotifier(n port.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithMetrics(m *metrics.CheckoutMetrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithTimeout bounds each submission call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(
	cartStore *cart.Store,
	selector *payment.Selector,
	calc totals.Calculator,
	submitter port.SaleSubmitter,
	opts ...Option,
) (*Controller, error) {
	switch {
	case cartStore == nil:
		return nil, fmt.Errorf("cart store is nil")
	case selector == nil:
		return nil, fmt.Errorf("payment selector is nil")
	case submitter == nil:
		return nil, fmt.Errorf("submitter is nil")
	}

	c := &Controller{
		cart:      cartStore,
		payment:   selector,
		calc:      calc,
		submitter: submitter,
		notifier:  notify.Nop{},
		log:       logger.Nop(),
		now:       time.Now,
		state:     Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}
	if c.log == nil {
		c.log = logger.Nop()
	}

	return c, nil
}

// State reports the current state of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Last returns the Succeeded or Failed state of the most recently resolved attempt.
func (c *Controller) Last() (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last, c.last != nil
}

// Totals are derived from the live cart on every call.
func (c *Controller) Totals() domain.Totals {
	return c.calc.Compute(c.cart.Lines())
}

// Checkout submits the current sale and waits for the outcome. Pre-flight
// rejections are returned without a Result; a rejected submission returns the
// Result together with its *SubmissionError.
func (c *Controller) Checkout(ctx context.Context) (Result, error) {
	done, err := c.Start(ctx)
	if err != nil {
		return Result{}, err
	}

	res := <-done
	return res, res.Err
}

// Start validates the sale and moves the controller to Submitting. The returned
// channel yields exactly one Result once the controller is back to Idle.
// Cancelling ctx does not abort a submission already started.
func (c *Controller) Start(ctx context.Context) (<-chan Result, error) {
	attempt, err := c.begin()
	if err != nil {
		c.reject(ctx, err)
		return nil, err
	}

	ctx = c.log.WithSaleID(ctx, attempt.ID.String())
	c.log.Info(ctx, "sale submitting")

	done := make(chan Result, 1)
	go func() {
		defer close(done)
		done <- c.submit(context.WithoutCancel(ctx), attempt)
	}()

	return done, nil
}

func (c *Controller) begin() (domain.SaleAttempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, idle := c.state.(Idle); !idle {
		return domain.SaleAttempt{}, ErrSaleInProgress
	}

	lines := c.cart.Lines()
	if len(lines) == 0 {
		return domain.SaleAttempt{}, ErrEmptyCart
	}

	method, ok := c.payment.Selected()
	if !ok {
		return domain.SaleAttempt{}, ErrNoPaymentMethod
	}

	attempt := domain.SaleAttempt{
		ID:            uuid.New(),
		Lines:         lines,
		Totals:        c.calc.Compute(lines),
		PaymentMethod: method,
		SubmittedAt:   c.now().UTC(),
	}
	c.state = Submitting{Attempt: attempt}

	return attempt, nil
}

func (c *Controller) reject(ctx context.Context, err error) {
	c.metrics.IncRejection(rejectionReason(err))
	c.notifier.OnValidationFailed(ctx, domain.ValidationFailed{Reason: err})
}

func (c *Controller) submit(ctx context.Context, attempt domain.SaleAttempt) Result {
	submitCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	started := time.Now()
	conf, err := c.await(submitCtx, attempt)
	c.metrics.ObserveSubmit(time.Since(started))

	if err != nil {
		return c.fail(ctx, attempt, err, errors.Is(submitCtx.Err(), context.DeadlineExceeded))
	}
	return c.succeed(ctx, attempt, conf)
}

type submitOutcome struct {
	conf domain.Confirmation
	err  error
}

// await returns once the submitter answers or ctx expires, whichever comes first.
// A submitter still running after expiry finishes in the background and its answer is dropped.
func (c *Controller) await(ctx context.Context, attempt domain.SaleAttempt) (domain.Confirmation, error) {
	out := make(chan submitOutcome, 1)
	go func() {
		conf, err := c.submitter.Submit(ctx, attempt)
		out <- submitOutcome{conf: conf, err: err}
	}()

	select {
	case o := <-out:
		return o.conf, o.err
	case <-ctx.Done():
		return domain.Confirmation{}, ctx.Err()
	}
}

// succeed notifies before clearing so listeners still see the finished sale.
func (c *Controller) succeed(ctx context.Context, attempt domain.SaleAttempt, conf domain.Confirmation) Result {
	outcome := Succeeded{Attempt: attempt, Confirmation: conf}
	c.transition(outcome)

	c.metrics.IncOutcome(metrics.OutcomeSucceeded)
	c.metrics.ObserveSaleAmount(attempt.Total().Amount)

	c.notifier.OnCheckoutSucceeded(ctx, domain.CheckoutSucceeded{
		SaleID:        attempt.ID,
		Total:         attempt.Total(),
		PaymentMethod: attempt.PaymentMethod,
		Confirmation:  conf,
	})
	c.cart.Clear()
	c.payment.Clear()

	c.transition(Idle{})
	return Result{Attempt: attempt, Confirmation: conf}
}

// fail leaves the cart and payment selection as they are.
func (c *Controller) fail(ctx context.Context, attempt domain.SaleAttempt, cause error, timedOut bool) Result {
	err := &SubmissionError{
		SaleID:  attempt.ID,
		Timeout: timedOut || errors.Is(cause, context.DeadlineExceeded),
		Err:     cause,
	}
	c.transition(Failed{Attempt: attempt, Err: err})

	if err.Timeout {
		c.metrics.IncOutcome(metrics.OutcomeTimeout)
	} else {
		c.metrics.IncOutcome(metrics.OutcomeFailed)
	}

	c.notifier.OnCheckoutFailed(ctx, domain.CheckoutFailed{SaleID: attempt.ID, Reason: err})

	c.transition(Idle{})
	return Result{Attempt: attempt, Err: err}
}

func (c *Controller) transition(next State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch next.(type) {
	case Succeeded, Failed:
		c.last = next
	}
	c.state = next
}
