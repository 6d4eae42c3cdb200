package customer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCustomer() *Customer {
	return &Customer{
		ID:        1,
		FirstName: "Camila",
		LastName:  "Cavalcante",
		CPF:       "26212470839",
		Email:     "camila@email.com",
		Income:    decimal.NewFromInt(1000),
		Password:  "1234",
		ZipCode:   "000000",
		Street:    "Rua da Cami",
	}
}

func TestFullName(t *testing.T) {
	cust := testCustomer()
	assert.Equal(t, "Camila Cavalcante", cust.FullName())

	cust.LastName = ""
	assert.Equal(t, "Camila", cust.FullName())
}

func TestFullAddress(t *testing.T) {
	cust := testCustomer()
	assert.Equal(t, "Rua da Cami, 000000", cust.FullAddress())
}

func TestApply(t *testing.T) {
	t.Run("should only change provided fields", func(t *testing.T) {
		cust := testCustomer()
		newIncome := decimal.NewFromInt(2500)
		newStreet := "Avenida Paulista"

		cust.Apply(UpdatePatch{Income: &newIncome, Street: &newStreet})

		assert.True(t, newIncome.Equal(cust.Income))
		assert.Equal(t, "Avenida Paulista", cust.Street)
		assert.Equal(t, "Camila", cust.FirstName)
		assert.Equal(t, "Cavalcante", cust.LastName)
		assert.Equal(t, "26212470839", cust.CPF)
		assert.Equal(t, "camila@email.com", cust.Email)
		assert.Equal(t, "000000", cust.ZipCode)
	})

	t.Run("empty patch leaves the record intact", func(t *testing.T) {
		cust := testCustomer()
		before := *cust

		cust.Apply(UpdatePatch{})

		assert.Equal(t, before.FirstName, cust.FirstName)
		assert.Equal(t, before.LastName, cust.LastName)
		assert.True(t, before.Income.Equal(cust.Income))
		assert.Equal(t, before.ZipCode, cust.ZipCode)
		assert.Equal(t, before.Street, cust.Street)
	})

	t.Run("should bump the update timestamp", func(t *testing.T) {
		cust := testCustomer()
		cust.UpdatedAt = time.Now().Add(-time.Hour)
		stale := cust.UpdatedAt

		cust.Apply(UpdatePatch{})

		assert.True(t, cust.UpdatedAt.After(stale))
	})
}
