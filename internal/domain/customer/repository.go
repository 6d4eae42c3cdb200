package customer

import (
	"context"
)

// CustomerRepository persists customer records. Implementations return
// apperrors.ErrNotFound when an identifier does not resolve and
// apperrors.ErrAlreadyExists when a CPF or email unique constraint is
// violated at the storage boundary.
type CustomerRepository interface {
	// Save inserts the customer when its ID is zero and updates the stored
	// record otherwise. On insert the generated identifier and timestamps
	// are written back into the given struct.
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}
