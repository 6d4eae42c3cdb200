package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"credit-engine/internal/api/handler"
	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) CreateCustomer(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, cust)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, *customer.Customer) *customer.Customer); ok {
		r0 = rf(ctx, cust)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *customer.Customer) error); ok {
		r1 = rf(ctx, cust)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64) *customer.Customer); ok {
		r0 = rf(ctx, customerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, customerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, patch customer.UpdatePatch) (*customer.Customer, error) {
	ret := _m.Called(ctx, customerID, patch)

	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, int64, customer.UpdatePatch) *customer.Customer); ok {
		r0 = rf(ctx, customerID, patch)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customer.Customer)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, customer.UpdatePatch) error); ok {
		r1 = rf(ctx, customerID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, customerID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func sampleCustomer() *customer.Customer {
	return &customer.Customer{
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

func sampleCreateCustomerBody() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
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

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		reqBody := sampleCreateCustomerBody()
		reqBodyBytes, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		mockService.On("CreateCustomer", mock.Anything, mock.Anything).Return(sampleCustomer(), nil)

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Camila Cavalcante", resp.FullName)
		assert.NotContains(t, rec.Body.String(), "password")
		mockService.AssertExpectations(t)
	})

	t.Run("validation failure lists every violated field", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorBody(t, rec)
		assert.Equal(t, "Bad Request! Consult the documentation", resp.Title)
		assert.Equal(t, "ValidationError", resp.Exception)
		assert.Contains(t, resp.Details, "firstName")
		assert.Contains(t, resp.Details, "cpf")
		assert.Contains(t, resp.Details, "income")
		mockService.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("duplicate cpf maps to conflict", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		reqBodyBytes, _ := json.Marshal(sampleCreateCustomerBody())
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(reqBodyBytes))
		rec := httptest.NewRecorder()

		mockService.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, apperrors.ErrAlreadyExists)

		h.CreateCustomer(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeErrorBody(t, rec)
		assert.Equal(t, "Conflict! Consult the documentation", resp.Title)
		assert.Equal(t, "ConflictError", resp.Exception)
		mockService.AssertExpectations(t)
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		mockService.On("GetCustomer", mock.Anything, int64(1)).Return(sampleCustomer(), nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/1", nil), "customerID", "1")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "26212470839", resp.CPF)
		assert.Equal(t, "Rua da Cami, 000000", resp.FullAddress)
		mockService.AssertExpectations(t)
	})

	t.Run("invalid customer ID", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/abc", nil), "customerID", "abc")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetCustomer")
	})

	t.Run("customer not found responds 400 business error", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		mockService.On("GetCustomer", mock.Anything, int64(2)).Return(nil, apperrors.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/customers/2", nil), "customerID", "2")
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorBody(t, rec)
		assert.Equal(t, "Bad Request! Consult the documentation", resp.Title)
		assert.Equal(t, "BusinessError", resp.Exception)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("success with partial body", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		updated := sampleCustomer()
		updated.FirstName = "CamilaUpdated"
		mockService.On("UpdateCustomer", mock.Anything, int64(1), mock.Anything).Return(updated, nil)

		body := []byte(`{"firstName":"CamilaUpdated"}`)
		req := httptest.NewRequest(http.MethodPatch, "/customers?customerId=1", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "CamilaUpdated", resp.FirstName)
		assert.Equal(t, "26212470839", resp.CPF)
		mockService.AssertExpectations(t)
	})

	t.Run("missing customerId query parameter", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodPatch, "/customers", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateCustomer")
	})

	t.Run("blank provided field rejected", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		body := []byte(`{"firstName":"  "}`)
		req := httptest.NewRequest(http.MethodPatch, "/customers?customerId=1", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeErrorBody(t, rec)
		assert.Contains(t, resp.Details, "firstName")
		mockService.AssertNotCalled(t, "UpdateCustomer")
	})

	t.Run("unknown customer responds 400", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		mockService.On("UpdateCustomer", mock.Anything, int64(99), mock.Anything).Return(nil, apperrors.ErrNotFound)

		body := []byte(`{"firstName":"X"}`)
		req := httptest.NewRequest(http.MethodPatch, "/customers?customerId=99", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		mockService.On("DeleteCustomer", mock.Anything, int64(1)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/customers/1", nil), "customerID", "1")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("second delete fails with 400", func(t *testing.T) {
		mockService := new(MockCustomerService)
		h := handler.NewCustomerHandler(mockService, newTestLogger())

		mockService.On("DeleteCustomer", mock.Anything, int64(1)).Return(apperrors.ErrNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/customers/1", nil), "customerID", "1")
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}
