package domain

import (
	"time"

	"github.com/google/uuid"
)

// SaleAttempt is the immutable snapshot handed to the sale submitter.
type SaleAttempt struct {
	ID            uuid.UUID
	Lines         []CartLine
	Totals        Totals
	PaymentMethod PaymentMethod
	SubmittedAt   time.Time
}

func (a SaleAttempt) Total() Money {
	return a.Totals.Total
}

// Confirmation is the opaque acknowledgement returned by a successful submission.
type Confirmation struct {
	ID          string
	SaleID      uuid.UUID
	ConfirmedAt time.Time
}

type CheckoutSucceeded struct {
	SaleID        uuid.UUID
	Total         Money
	PaymentMethod PaymentMethod
	Confirmation  Confirmation
}

type CheckoutFailed struct {
	SaleID uuid.UUID
	Reason error
}

type ValidationFailed struct {
	Reason error
}
