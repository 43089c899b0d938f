package domain

import "context"

// CustomerValidator answers whether a customer exists in the external
// customer registry. A nil return means the customer is valid. Every
// non-success outcome (transport failure, non-2xx status, empty or malformed
// body, explicit false) is reported as ErrCustomerNotFound: account creation
// must not proceed on ambiguous signals.
type CustomerValidator interface {
	Validate(ctx context.Context, customerID string) error
}
