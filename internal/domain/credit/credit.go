package credit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-engine/internal/pkg/apperrors"
)

const (
	MinInstallments = 1
	MaxInstallments = 48
)

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
)

// Credit is a loan request issued against exactly one customer. The credit
// code is an opaque secondary lookup key, distinct from the database
// identifier, and globally unique.
type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewCredit builds a credit in IN_PROGRESS state with a fresh credit code.
// The first-installment date must be strictly after the current date; the
// installment count must lie in [MinInstallments, MaxInstallments] and the
// principal must be positive.
func NewCredit(value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) (*Credit, error) {
	if !value.IsPositive() {
		return nil, fmt.Errorf("%w: credit value must be greater than zero", apperrors.ErrInvalidArgument)
	}
	if installments < MinInstallments || installments > MaxInstallments {
		return nil, fmt.Errorf("%w: number of installments must be between %d and %d",
			apperrors.ErrInvalidArgument, MinInstallments, MaxInstallments)
	}
	if !calendarDate(dayFirstInstallment).After(today()) {
		return nil, fmt.Errorf("%w: first installment date must be in the future", apperrors.ErrInvalidArgument)
	}
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id must be positive", apperrors.ErrInvalidArgument)
	}

	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          value,
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: installments,
		Status:               StatusInProgress,
		CustomerID:           customerID,
	}, nil
}

// Both sides of the date comparison are truncated to the UTC calendar date,
// so a timestamp later today never counts as a future installment date.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return calendarDate(time.Now())
}
