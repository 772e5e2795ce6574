package submitter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/submitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSubmit(t *testing.T) {
	tests := []struct {
		name      string
		delay     time.Duration
		cancel    bool
		wantError error
	}{
		{name: "no delay: ok", delay: 0},
		{name: "short delay: ok", delay: 10 * time.Millisecond},
		{name: "cancelled while waiting: error", delay: time.Hour, cancel: true, wantError: context.Canceled},
		{name: "cancelled before start: error", delay: 0, cancel: true, wantError: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			attempt := domain.SaleAttempt{ID: uuid.New()}

			conf, err := submitter.NewSimulated(tt.delay).Submit(ctx, attempt)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, attempt.ID, conf.SaleID)
			assert.NotEmpty(t, conf.ID)
			assert.False(t, conf.ConfirmedAt.IsZero())
		})
	}
}

func TestFuncAdapter(t *testing.T) {
	wantErr := errors.New("declined")

	var s submitter.Func = func(_ context.Context, _ domain.SaleAttempt) (domain.Confirmation, error) {
		return domain.Confirmation{}, wantErr
	}

	_, err := s.Submit(t.Context(), domain.SaleAttempt{})
	assert.ErrorIs(t, err, wantErr)
}
