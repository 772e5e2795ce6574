package payment_test

import (
	"testing"

	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/nikolayk812/pos-demo/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.PaymentMethod
		wantError error
	}{
		{name: "lowercase: ok", input: "cash", want: domain.PaymentCash},
		{name: "mixed case with spaces: ok", input: "  Credit ", want: domain.PaymentCredit},
		{name: "dashed gift card: ok", input: "gift-card", want: domain.PaymentGiftCard},
		{name: "spaced gift card: ok", input: "Gift Card", want: domain.PaymentGiftCard},
		{name: "qr: ok", input: "QR", want: domain.PaymentQR},
		{name: "unknown: error", input: "bitcoin", wantError: payment.ErrUnknownMethod},
		{name: "empty: error", input: "", wantError: payment.ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payment.Parse(tt.input)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListSkipsBlanks(t *testing.T) {
	got, err := payment.ParseList([]string{"cash", " ", "debit"})
	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentCash, domain.PaymentDebit}, got)

	_, err = payment.ParseList([]string{"cash", "barter"})
	assert.ErrorIs(t, err, payment.ErrUnknownMethod)
}

func TestSelectorSingleSelect(t *testing.T) {
	s := payment.NewSelector()

	_, ok := s.Selected()
	assert.False(t, ok)

	require.NoError(t, s.Select(domain.PaymentCash))
	require.NoError(t, s.Select(domain.PaymentVoucher))

	got, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.PaymentVoucher, got)

	s.Clear()
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSelectorRejectsMethodsOutsideAcceptedSet(t *testing.T) {
	s := payment.NewSelector(domain.PaymentCash, domain.PaymentQR, domain.PaymentCash)

	assert.Equal(t, []domain.PaymentMethod{domain.PaymentCash, domain.PaymentQR}, s.Accepted())

	require.NoError(t, s.Select(domain.PaymentCash))

	err := s.Select(domain.PaymentCheck)
	require.ErrorIs(t, err, payment.ErrMethodNotAccepted)

	got, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.PaymentCash, got, "rejected selection keeps the previous one")
}

func TestDefaultSelectorAcceptsEveryMethod(t *testing.T) {
	s := payment.NewSelector()
	for _, m := range domain.PaymentMethods() {
		assert.True(t, s.Accepts(m), m.String())
		assert.NotEmpty(t, m.Label())
	}
}
