package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

type CreateCreditRequest struct {
	CreditValue           decimal.Decimal `json:"creditValue"`
	DayFirstOfInstallment string          `json:"dayFirstOfInstallment"`
	NumberOfInstallments  int             `json:"numberOfInstallments"`
	CustomerID            int64           `json:"customerId"`
}

func (r *CreateCreditRequest) Validate() []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation

	if !r.CreditValue.IsPositive() {
		violations = append(violations, apperrors.NewFieldViolation("creditValue", "must be greater than zero"))
	}

	if day, err := time.Parse(dateLayout, r.DayFirstOfInstallment); err != nil {
		violations = append(violations, apperrors.NewFieldViolation("dayFirstOfInstallment", "must be a date in YYYY-MM-DD format"))
	} else if !day.After(todayUTC()) {
		violations = append(violations, apperrors.NewFieldViolation("dayFirstOfInstallment", "must be a future date"))
	}

	if r.NumberOfInstallments < credit.MinInstallments || r.NumberOfInstallments > credit.MaxInstallments {
		violations = append(violations, apperrors.NewFieldViolation("numberOfInstallments", "must be between 1 and 48"))
	}

	if r.CustomerID <= 0 {
		violations = append(violations, apperrors.NewFieldViolation("customerId", "must be a positive number"))
	}

	return violations
}

// FirstInstallmentDate parses the already-validated request date.
func (r *CreateCreditRequest) FirstInstallmentDate() time.Time {
	day, _ := time.Parse(dateLayout, r.DayFirstOfInstallment)
	return day
}

// todayUTC truncates to the calendar date; the request date carries no time
// component, so both sides of the comparison are midnight values.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type CreditSummaryResponse struct {
	CreditCode            string `json:"creditCode"`
	CreditValue           string `json:"creditValue"`
	NumberOfInstallments  int    `json:"numberOfInstallments"`
	Status                string `json:"status"`
	DayFirstOfInstallment string `json:"dayFirstOfInstallment,omitempty"`
}

func NewCreditSummaryResponse(cr *credit.Credit) CreditSummaryResponse {
	if cr == nil {
		return CreditSummaryResponse{}
	}
	return CreditSummaryResponse{
		CreditCode:           cr.CreditCode.String(),
		CreditValue:          cr.CreditValue.String(),
		NumberOfInstallments: cr.NumberOfInstallments,
		Status:               string(cr.Status),
	}
}

func NewCreditCreatedResponse(cr *credit.Credit) CreditSummaryResponse {
	resp := NewCreditSummaryResponse(cr)
	if cr != nil {
		resp.DayFirstOfInstallment = cr.DayFirstInstallment.Format(dateLayout)
	}
	return resp
}

type CreditDetailResponse struct {
	CreditCode            string `json:"creditCode"`
	CreditValue           string `json:"creditValue"`
	NumberOfInstallments  int    `json:"numberOfInstallments"`
	Status                string `json:"status"`
	DayFirstOfInstallment string `json:"dayFirstOfInstallment"`
	CustomerName          string `json:"customerName"`
	CustomerIncome        string `json:"customerIncome"`
}

// NewCreditDetailResponse joins the credit with its owner for the single
// credit lookup.
func NewCreditDetailResponse(cr *credit.Credit, owner *customer.Customer) CreditDetailResponse {
	if cr == nil {
		return CreditDetailResponse{}
	}

	resp := CreditDetailResponse{
		CreditCode:            cr.CreditCode.String(),
		CreditValue:           cr.CreditValue.String(),
		NumberOfInstallments:  cr.NumberOfInstallments,
		Status:                string(cr.Status),
		DayFirstOfInstallment: cr.DayFirstInstallment.Format(dateLayout),
	}
	if owner != nil {
		resp.CustomerName = owner.FullName()
		resp.CustomerIncome = owner.Income.String()
	}
	return resp
}
