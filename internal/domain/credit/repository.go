package credit

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists credit records. Credits are insert-only in this
// system: they are never updated or deleted once written. Implementations
// return apperrors.ErrNotFound when a credit code does not resolve and
// apperrors.ErrAlreadyExists on a credit code collision.
type Repository interface {
	// Save inserts the credit and writes the generated identifier and
	// timestamps back into the given struct.
	Save(ctx context.Context, credit *Credit) error

	// FindAllByCustomerID returns the customer's credits in insertion
	// order. No credits is an empty slice, not an error.
	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error)
}
