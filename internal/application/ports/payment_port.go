package ports

import "context"

// PaymentIntent is the provider's answer to an intent creation: the client
// secret is handed to the frontend to confirm the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64 // smallest currency unit (cents)
	Currency     string
}

// PaymentService external payment collaborator. Implementations create an
// intent for a pre-computed amount; no charge happens server-side.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}
