package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"credit-engine/internal/api/handler/dto"
	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

const (
	titleBadRequest   = "Bad Request! Consult the documentation"
	titleConflict     = "Conflict! Consult the documentation"
	titleForbidden    = "Forbidden! Consult the documentation"
	titleUnauthorized = "Unauthorized! Consult the documentation"
	titleInternal     = "Internal Server Error! Consult the documentation"
)

type CreditHandler struct {
	service   credit.CreditService
	customers customer.CustomerService
	logger    *slog.Logger
}

func NewCreditHandler(s credit.CreditService, customers customer.CustomerService, l *slog.Logger) *CreditHandler {
	if s == nil {
		panic("credit service cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CreditHandler{
		service:   s,
		customers: customers,
		logger:    l.With("component", "CreditHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"title":"Internal Server Error! Consult the documentation"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	title := titleInternal
	exception := "InternalError"
	details := map[string]string{"error": "An unexpected error occurred."}

	var validationErrs *apperrors.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "ValidationError"
		details = make(map[string]string, len(validationErrs.Violations))
		for _, v := range validationErrs.Violations {
			details[v.Field] = v.Message
		}
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, title, exception = http.StatusConflict, titleConflict, "ConflictError"
		details = map[string]string{"error": err.Error()}
	case errors.Is(err, apperrors.ErrCrossOwnership):
		status, title, exception = http.StatusForbidden, titleForbidden, "OwnershipError"
		details = map[string]string{"error": err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, title, exception = http.StatusUnauthorized, titleUnauthorized, "UnauthorizedError"
		details = map[string]string{"error": err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		// Missing resources surface as 400 business errors, not 404.
		status, title, exception = http.StatusBadRequest, titleBadRequest, "BusinessError"
		details = map[string]string{"error": err.Error()}
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, title, exception = http.StatusBadRequest, titleBadRequest, "BusinessError"
		details = map[string]string{"error": err.Error()}
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Title:     title,
		Timestamp: time.Now(),
		Status:    status,
		Exception: exception,
		Details:   details,
	}
	respondJSON(w, status, resp)
}

func getCustomerIDFromQuery(r *http.Request) (int64, error) {
	idStr := r.URL.Query().Get("customerId")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerId query parameter is required", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerId query parameter: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return id, nil
}

// CreateCredit handles POST /credits
// @Summary Request a new credit
// @Description Registers a credit request for an existing customer. The first installment date must be in the future and the installment count between 1 and 48.
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditRequest true "Credit creation request"
// @Success 201 {object} dto.CreditSummaryResponse "Credit successfully created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure or unknown customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /credits [post]
// @Security BearerAuth
func (h *CreditHandler) CreateCredit(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create credit request")

	var req dto.CreateCreditRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if violations := req.Validate(); len(violations) > 0 {
		h.logger.WarnContext(r.Context(), "Credit request validation failed", slog.Int("violations", len(violations)))
		respondError(w, apperrors.NewValidationErrors(violations))
		return
	}

	created, err := h.service.CreateCredit(r.Context(), req.CreditValue, req.FirstInstallmentDate(), req.NumberOfInstallments, req.CustomerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to create credit", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCreditCreatedResponse(created)
	h.logger.InfoContext(r.Context(), "Credit created successfully", slog.String("creditCode", resp.CreditCode))
	respondJSON(w, http.StatusCreated, resp)
}

// ListCredits handles GET /credits?customerId={id}
// @Summary List a customer's credits
// @Description Returns a summary of every credit owned by the given customer.
// @Tags Credits
// @Produce json
// @Param customerId query int true "Owning customer ID"
// @Success 200 {array} dto.CreditSummaryResponse "Credit summaries"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid customerId"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /credits [get]
// @Security BearerAuth
func (h *CreditHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	credits, err := h.service.ListCreditsByCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list credits", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := make([]dto.CreditSummaryResponse, len(credits))
	for i, cr := range credits {
		resp[i] = dto.NewCreditSummaryResponse(cr)
	}
	h.logger.InfoContext(r.Context(), "Credits listed successfully", slog.Int64("customerID", customerID), slog.Int("count", len(resp)))
	respondJSON(w, http.StatusOK, resp)
}

// GetCreditByCode handles GET /credits/{creditCode}?customerId={id}
// @Summary Retrieve one credit by its code
// @Description Returns the full credit detail, including the owner's name and income. The requesting customer must own the credit.
// @Tags Credits
// @Produce json
// @Param creditCode path string true "Credit code (UUID)"
// @Param customerId query int true "Requesting customer ID"
// @Success 200 {object} dto.CreditDetailResponse "Credit detail"
// @Failure 400 {object} dto.ErrorResponse "Unknown credit code or invalid parameters"
// @Failure 403 {object} dto.ErrorResponse "Credit belongs to another customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /credits/{creditCode} [get]
// @Security BearerAuth
func (h *CreditHandler) GetCreditByCode(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	codeStr := chi.URLParam(r, "creditCode")
	creditCode, err := uuid.Parse(codeStr)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid credit code in URL path", slog.String("creditCode", codeStr))
		respondError(w, fmt.Errorf("%w: invalid credit code format: %s", apperrors.ErrInvalidArgument, codeStr))
		return
	}

	cr, err := h.service.GetCreditByCode(r.Context(), customerID, creditCode)
	if err != nil {
		respondError(w, err)
		return
	}

	owner, err := h.customers.GetCustomer(r.Context(), cr.CustomerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to resolve credit owner for detail view", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Credit retrieved successfully", slog.String("creditCode", creditCode.String()))
	respondJSON(w, http.StatusOK, dto.NewCreditDetailResponse(cr, owner))
}
