package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

// CreditService is the credit ledger: issuing credits against an existing
// customer and looking them up by owner or by credit code.
type CreditService interface {
	CreateCredit(ctx context.Context, value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) (*Credit, error)
	ListCreditsByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	GetCreditByCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo      Repository
	customers customer.CustomerService
	pub       event.EventPublisher
	logger    *slog.Logger
}

func NewCreditService(repo Repository, customers customer.CustomerService, pub event.EventPublisher, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if pub == nil {
		pub = event.NewNoopEventPublisher()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditService, using default stderr handler")
	}

	return &creditService{
		repo:      repo,
		customers: customers,
		pub:       pub,
		logger:    logger.With(slog.String("component", "creditService")),
	}
}

func NewCreditEventPayload(cr *Credit) event.CreditEventPayload {
	if cr == nil {
		return event.CreditEventPayload{}
	}
	return event.CreditEventPayload{
		CreditID:             cr.ID,
		CreditCode:           cr.CreditCode.String(),
		CreditValue:          cr.CreditValue.String(),
		DayFirstInstallment:  cr.DayFirstInstallment,
		NumberOfInstallments: cr.NumberOfInstallments,
		Status:               string(cr.Status),
		CustomerID:           cr.CustomerID,
		CreatedAt:            cr.CreatedAt,
	}
}

func (s *creditService) CreateCredit(ctx context.Context, value decimal.Decimal, dayFirstInstallment time.Time, installments int, customerID int64) (*Credit, error) {
	logCtx := s.logger.With(slog.Int64("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to create new credit")

	// The owning customer must exist at creation time; a dangling
	// customer id surfaces as the directory's not-found business error.
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Referenced customer does not exist")
			return nil, err
		}
		logCtx.ErrorContext(ctx, "Failed to resolve referenced customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to resolve customer %d: %w", customerID, err)
	}

	cr, err := NewCredit(value, dayFirstInstallment, installments, customerID)
	if err != nil {
		logCtx.WarnContext(ctx, "Credit domain validation failed", slog.Any("error", err))
		return nil, err
	}
	logCtx = logCtx.With(slog.String("creditCode", cr.CreditCode.String()))

	logCtx.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cr); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Credit code collision detected during save")
			return nil, err
		}
		logCtx.ErrorContext(ctx, "Repository failed to save new credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new credit: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully saved new credit, publishing creation event")
	createdEvent := event.CreditCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCreditEventPayload(cr),
	}
	if pubErr := s.pub.PublishCreditCreated(ctx, createdEvent); pubErr != nil {
		logCtx.ErrorContext(ctx, "Credit created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}

	monitoring.CreditsCreated.Inc()
	logCtx.InfoContext(ctx, "Successfully created new credit")
	return cr, nil
}

func (s *creditService) ListCreditsByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	logCtx := s.logger.With(slog.Int64("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to list credits by customer")

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}

	logCtx.InfoContext(ctx, "Successfully retrieved credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) GetCreditByCode(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	logCtx := s.logger.With(slog.Int64("customerID", customerID), slog.String("creditCode", creditCode.String()))
	logCtx.InfoContext(ctx, "Attempting to get credit by credit code")

	cr, err := s.repo.FindByCreditCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Credit not found by repository")
			return nil, fmt.Errorf("%w: credit code %s not found", apperrors.ErrNotFound, creditCode)
		}
		logCtx.ErrorContext(ctx, "Repository error finding credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get credit %s: %w", creditCode, err)
	}

	// A resolving code owned by a different customer is a cross-tenant
	// access attempt and must stay distinguishable from a missing record.
	if cr.CustomerID != customerID {
		logCtx.WarnContext(ctx, "Credit code belongs to a different customer",
			slog.Int64("ownerCustomerID", cr.CustomerID))
		return nil, fmt.Errorf("%w: credit code %s does not belong to customer %d",
			apperrors.ErrCrossOwnership, creditCode, customerID)
	}

	logCtx.InfoContext(ctx, "Successfully retrieved credit by code")
	return cr, nil
}
