package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CreateCustomerRequest struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Income    decimal.Decimal `json:"income"`
	Password  string          `json:"password"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}

// Validate enumerates every violated field so the response can report all of
// them at once rather than stopping at the first failure.
func (r *CreateCustomerRequest) Validate() []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation

	if strings.TrimSpace(r.FirstName) == "" {
		violations = append(violations, apperrors.NewFieldViolation("firstName", "must not be empty"))
	}
	if strings.TrimSpace(r.LastName) == "" {
		violations = append(violations, apperrors.NewFieldViolation("lastName", "must not be empty"))
	}
	if !customer.ValidCPF(r.CPF) {
		violations = append(violations, apperrors.NewFieldViolation("cpf", "invalid CPF"))
	}
	if strings.TrimSpace(r.Email) == "" || !emailPattern.MatchString(r.Email) {
		violations = append(violations, apperrors.NewFieldViolation("email", "must be a well-formed email address"))
	}
	if !r.Income.IsPositive() {
		violations = append(violations, apperrors.NewFieldViolation("income", "must be greater than zero"))
	}
	if r.Password == "" {
		violations = append(violations, apperrors.NewFieldViolation("password", "must not be empty"))
	}
	if strings.TrimSpace(r.ZipCode) == "" {
		violations = append(violations, apperrors.NewFieldViolation("zipCode", "must not be empty"))
	}
	if strings.TrimSpace(r.Street) == "" {
		violations = append(violations, apperrors.NewFieldViolation("street", "must not be empty"))
	}

	return violations
}

func (r *CreateCustomerRequest) ToDomain() *customer.Customer {
	return &customer.Customer{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		CPF:       r.CPF,
		Email:     r.Email,
		Income:    r.Income,
		Password:  r.Password,
		ZipCode:   strings.TrimSpace(r.ZipCode),
		Street:    strings.TrimSpace(r.Street),
	}
}

// UpdateCustomerRequest carries a partial update. Absent fields stay nil and
// leave the stored value untouched; CPF, email and id are not updatable.
type UpdateCustomerRequest struct {
	FirstName *string          `json:"firstName,omitempty"`
	LastName  *string          `json:"lastName,omitempty"`
	Income    *decimal.Decimal `json:"income,omitempty"`
	ZipCode   *string          `json:"zipCode,omitempty"`
	Street    *string          `json:"street,omitempty"`
}

func (r *UpdateCustomerRequest) Validate() []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation

	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		violations = append(violations, apperrors.NewFieldViolation("firstName", "must not be empty"))
	}
	if r.LastName != nil && strings.TrimSpace(*r.LastName) == "" {
		violations = append(violations, apperrors.NewFieldViolation("lastName", "must not be empty"))
	}
	if r.Income != nil && !r.Income.IsPositive() {
		violations = append(violations, apperrors.NewFieldViolation("income", "must be greater than zero"))
	}
	if r.ZipCode != nil && strings.TrimSpace(*r.ZipCode) == "" {
		violations = append(violations, apperrors.NewFieldViolation("zipCode", "must not be empty"))
	}
	if r.Street != nil && strings.TrimSpace(*r.Street) == "" {
		violations = append(violations, apperrors.NewFieldViolation("street", "must not be empty"))
	}

	return violations
}

func (r *UpdateCustomerRequest) ToPatch() customer.UpdatePatch {
	return customer.UpdatePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

type CustomerResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	FullName    string    `json:"fullName"`
	CPF         string    `json:"cpf"`
	Email       string    `json:"email"`
	Income      string    `json:"income"`
	ZipCode     string    `json:"zipCode"`
	Street      string    `json:"street"`
	FullAddress string    `json:"fullAddress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCustomerResponse never exposes the stored password.
func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		ID:          cust.ID,
		FirstName:   cust.FirstName,
		LastName:    cust.LastName,
		FullName:    cust.FullName(),
		CPF:         cust.CPF,
		Email:       cust.Email,
		Income:      cust.Income.String(),
		ZipCode:     cust.ZipCode,
		Street:      cust.Street,
		FullAddress: cust.FullAddress(),
		CreatedAt:   cust.CreatedAt,
		UpdatedAt:   cust.UpdatedAt,
	}
}
