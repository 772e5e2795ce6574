package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Pre-flight rejections. None of them reach the sale submitter.
var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("no payment method selected")
	ErrSaleInProgress  = errors.New("sale already in progress")
)

// Submission outcomes, always wrapped in *SubmissionError.
var (
	ErrSubmissionFailed = errors.New("sale submission failed")
	ErrTimeout          = errors.New("sale submission timed out")
)

// SubmissionError reports a rejected sale attempt. Cart and payment selection are
// left untouched so the same sale can be submitted again.
type SubmissionError struct {
	SaleID  uuid.UUID
	Timeout bool
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("sale[%s]: %v: %v", e.SaleID, e.kind(), e.Err)
}

func (e *SubmissionError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *SubmissionError) kind() error {
	if e.Timeout {
		return ErrTimeout
	}
	return ErrSubmissionFailed
}

// Message maps an error to the text shown to the operator. Errors outside the
// checkout taxonomy get a generic message.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCart):
		return "The cart is empty. Add at least one item before checking out."
	case errors.Is(err, ErrNoPaymentMethod):
		return "Select a payment method before checking out."
	case errors.Is(err, ErrSaleInProgress):
		return "A sale is already being processed. Please wait."
	case errors.Is(err, ErrTimeout):
		return "The sale could not be confirmed in time. Please try again."
	case errors.Is(err, ErrSubmissionFailed):
		return "The sale could not be processed. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, ErrNoPaymentMethod):
		return "no_payment_method"
	case errors.Is(err, ErrSaleInProgress):
		return "sale_in_progress"
	default:
		return "unknown"
	}
}
