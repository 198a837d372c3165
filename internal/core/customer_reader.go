package core

import "context"

// Customer is the slice of account data the ordering flow needs:
// contact details for the remote payload and the loyalty flag for the
// discount policy.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	IsRegular bool
}

type CustomerReader interface {
	GetCustomer(ctx context.Context, id string) (*Customer, error)
}
