package checkout

import (
	"github.com/nikolayk812/pos-demo/internal/domain"
)

// State is one of Idle, Submitting, Succeeded or Failed.
type State interface {
	Name() string
	isState()
}

type Idle struct{}

type Submitting struct {
	Attempt domain.SaleAttempt
}

type Succeeded struct {
	Attempt      domain.SaleAttempt
	Confirmation domain.Confirmation
}

type Failed struct {
	Attempt domain.SaleAttempt
	Err     error
}

func (Idle) Name() string       { return "idle" }
func (Submitting) Name() string { return "submitting" }
func (Succeeded) Name() string  { return "succeeded" }
func (Failed) Name() string     { return "failed" }

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Succeeded) isState()  {}
func (Failed) isState()     {}

// Result is the resolution of one submitted sale attempt.
type Result struct {
	Attempt      domain.SaleAttempt
	Confirmation domain.Confirmation
	Err          error
}

func (r Result) Succeeded() bool {
	return r.Err == nil
}
