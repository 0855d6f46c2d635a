package domain

// CheckoutSession is an opaque handle to a card checkout created at the
// payment gateway.
type CheckoutSession struct {
	ID  string
	URL string
}

type SessionStatus struct {
	Paid          bool
	Amount        float64
	Currency      string
	PaymentIntent string
}

type RefundResult struct {
	RefundID string
	Amount   float64
}

// PaymentGateway is the card-checkout collaborator. The core calls it
// outside any lock on the order row and never retries it.
type PaymentGateway interface {
	CreateCheckoutSession(orderNumber string, amount float64, currency, description, customerEmail string) (*CheckoutSession, error)
	VerifySession(sessionID string) (*SessionStatus, error)
	CreateRefund(paymentIntent string, amount float64) (*RefundResult, error)
}
