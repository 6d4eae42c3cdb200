package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a borrower record. CPF and email are natural keys and stay
// unique across the whole customer population; uniqueness is enforced by the
// storage layer's constraints, not by in-process locking.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Income    decimal.Decimal
	Password  string
	ZipCode   string
	Street    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) FullAddress() string {
	return fmt.Sprintf("%s, %s", c.Street, c.ZipCode)
}

// UpdatePatch holds the mutable subset of a customer. Nil fields are left
// untouched. CPF, email and ID are immutable after creation.
type UpdatePatch struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

func (c *Customer) Apply(patch UpdatePatch) {
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}
	if patch.Income != nil {
		c.Income = *patch.Income
	}
	if patch.ZipCode != nil {
		c.ZipCode = *patch.ZipCode
	}
	if patch.Street != nil {
		c.Street = *patch.Street
	}
	c.UpdatedAt = time.Now()
}
