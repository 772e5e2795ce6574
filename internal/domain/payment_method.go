package domain

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCredit   PaymentMethod = "credit"
	PaymentDebit    PaymentMethod = "debit"
	PaymentCheck    PaymentMethod = "check"
	PaymentVoucher  PaymentMethod = "voucher"
	PaymentGiftCard PaymentMethod = "gift_card"
	PaymentQR       PaymentMethod = "qr"
)

// PaymentMethods lists every method the register knows about, in button order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentCredit,
		PaymentDebit,
		PaymentCheck,
		PaymentVoucher,
		PaymentGiftCard,
		PaymentQR,
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCredit:
		return "Credit card"
	case PaymentDebit:
		return "Debit card"
	case PaymentCheck:
		return "Check"
	case PaymentVoucher:
		return "Voucher"
	case PaymentGiftCard:
		return "Gift card"
	case PaymentQR:
		return "QR"
	default:
		return string(m)
	}
}
