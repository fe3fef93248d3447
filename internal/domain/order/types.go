package order

type Status string

const (
	StatusCreated         Status = "created"
	StatusCancelled       Status = "cancelled"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusComplete        Status = "complete"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusCancelled, StatusAwaitingPayment, StatusComplete:
		return true
	default:
		return false
	}
}

// IsPaid reports whether the order holds its product indefinitely,
// regardless of the expiration timestamp.
func (s Status) IsPaid() bool {
	return s == StatusComplete
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
