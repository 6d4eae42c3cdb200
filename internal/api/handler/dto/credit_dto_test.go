package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
)

func validCreateCreditRequest() CreateCreditRequest {
	return CreateCreditRequest{
		CreditValue:           decimal.NewFromInt(100000),
		DayFirstOfInstallment: time.Now().UTC().AddDate(0, 1, 0).Format(dateLayout),
		NumberOfInstallments:  15,
		CustomerID:            1,
	}
}

func TestCreateCreditRequestValidate(t *testing.T) {
	t.Run("valid request has no violations", func(t *testing.T) {
		req := validCreateCreditRequest()
		assert.Empty(t, req.Validate())
	})

	t.Run("installment count boundaries", func(t *testing.T) {
		tests := []struct {
			installments int
			wantValid    bool
		}{
			{0, false},
			{1, true},
			{48, true},
			{49, false},
		}
		for _, tt := range tests {
			req := validCreateCreditRequest()
			req.NumberOfInstallments = tt.installments
			violations := req.Validate()
			if tt.wantValid {
				assert.Empty(t, violations, "installments=%d should be accepted", tt.installments)
			} else {
				assert.Contains(t, violatedFields(violations), "numberOfInstallments", "installments=%d should be rejected", tt.installments)
			}
		}
	})

	t.Run("first installment date must be strictly in the future", func(t *testing.T) {
		today := time.Now().UTC()
		tests := []struct {
			name      string
			date      string
			wantValid bool
		}{
			{"tomorrow", today.AddDate(0, 0, 1).Format(dateLayout), true},
			{"today", today.Format(dateLayout), false},
			{"yesterday", today.AddDate(0, 0, -1).Format(dateLayout), false},
			{"garbage", "not-a-date", false},
			{"empty", "", false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCreateCreditRequest()
				req.DayFirstOfInstallment = tt.date
				violations := req.Validate()
				if tt.wantValid {
					assert.Empty(t, violations)
				} else {
					assert.Contains(t, violatedFields(violations), "dayFirstOfInstallment")
				}
			})
		}
	})

	t.Run("credit value must be positive", func(t *testing.T) {
		req := validCreateCreditRequest()
		req.CreditValue = decimal.Zero
		assert.Contains(t, violatedFields(req.Validate()), "creditValue")

		req.CreditValue = decimal.NewFromInt(-500)
		assert.Contains(t, violatedFields(req.Validate()), "creditValue")
	})

	t.Run("customer id must be positive", func(t *testing.T) {
		req := validCreateCreditRequest()
		req.CustomerID = 0
		assert.Contains(t, violatedFields(req.Validate()), "customerId")
	})
}

func TestCreditResponses(t *testing.T) {
	cr, err := credit.NewCredit(decimal.NewFromInt(100000), time.Now().AddDate(0, 1, 0), 15, 1)
	assert.NoError(t, err)

	t.Run("summary omits the installment date", func(t *testing.T) {
		resp := NewCreditSummaryResponse(cr)
		assert.Equal(t, cr.CreditCode.String(), resp.CreditCode)
		assert.Equal(t, "100000", resp.CreditValue)
		assert.Equal(t, 15, resp.NumberOfInstallments)
		assert.Equal(t, "IN_PROGRESS", resp.Status)
		assert.Empty(t, resp.DayFirstOfInstallment)
	})

	t.Run("created view carries the installment date", func(t *testing.T) {
		resp := NewCreditCreatedResponse(cr)
		assert.Equal(t, cr.DayFirstInstallment.Format(dateLayout), resp.DayFirstOfInstallment)
	})

	t.Run("detail view joins the owner", func(t *testing.T) {
		owner := &customer.Customer{
			FirstName: "Camila",
			LastName:  "Cavalcante",
			Income:    decimal.NewFromInt(1000),
		}
		resp := NewCreditDetailResponse(cr, owner)
		assert.Equal(t, "Camila Cavalcante", resp.CustomerName)
		assert.Equal(t, "1000", resp.CustomerIncome)
		assert.Equal(t, cr.CreditCode.String(), resp.CreditCode)
	})
}
