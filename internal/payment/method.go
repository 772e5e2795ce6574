package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikolayk812/pos-demo/internal/domain"
)

var (
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrMethodNotAccepted = errors.New("payment method not accepted")
)

// Parse maps user input such as "Cash", "gift-card" or " QR " to a PaymentMethod.
func Parse(s string) (domain.PaymentMethod, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	for _, m := range domain.PaymentMethods() {
		if string(m) == normalized {
			return m, nil
		}
	}

	return "", fmt.Errorf("method[%s]: %w", s, ErrUnknownMethod)
}

func ParseList(values []string) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}

		m, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}

		methods = append(methods, m)
	}

	return methods, nil
}
