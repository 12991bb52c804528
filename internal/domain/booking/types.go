package booking

type Status string

const (
	StatusPending       Status = "pending"
	StatusConfirmed     Status = "confirmed"
	StatusDeclined      Status = "declined"
	StatusCompleted     Status = "completed"
	StatusPaymentFailed Status = "payment_failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCompleted, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether a booking in this status occupies its slot.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusCompleted, StatusPaymentFailed:
		return true
	default:
		return false
	}
}

// HoldingStatuses lists the statuses covered by the active-slot unique index.
func HoldingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	default:
		return false
	}
}
