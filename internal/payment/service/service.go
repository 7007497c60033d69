// Package service implements the payment registry. Payments are accepted
// only after their own field validations pass and the payor cross-check
// against the user registry succeeds.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/payment/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/metrics"
	userModel "github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/validation"
	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/platform/sentinel"
)

// Store abstracts payment persistence, last-write-wins per payor email.
type Store interface {
	Save(ctx context.Context, payment models.Payment) error
	FindByPayor(ctx context.Context, payorEmail string) (models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
}

// UserDirectory is the read-only slice of the user registry the payment
// registry needs for its payor cross-check.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (userModel.User, error)
}

// Service orchestrates payment processing over the payment store.
type Service struct {
	store   Store
	users   UserDirectory
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store Store, users UserDirectory, opts ...Option) *Service {
	s := &Service{
		store:  store,
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process validates the payment, cross-checks the payor, and stores the
// record under the payor's email. Card and amount failures are validation
// errors; a missing payor or a card that does not match the payor's card on
// file is reported as not found. The user-registry lookup is read-only and
// completes before the payment store takes its write lock. Nothing is
// written on failure.
func (s *Service) Process(ctx context.Context, req models.Request) error {
	if err := validation.PaymentCreditCardNumber(req.CreditCardNumber); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.PaymentAmount(req.Amount); err != nil {
		return s.reject(ctx, err)
	}

	payor, err := s.users.FindByEmail(ctx, req.PayorEmail)
	if err != nil && !dErrors.HasCode(err, dErrors.CodeNotFound) && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up payor")
	}
	if err != nil || payor.CreditCardNumber == nil || *payor.CreditCardNumber != *req.CreditCardNumber {
		return s.reject(ctx, dErrors.New(dErrors.CodeNotFound, "payor not found or invalid credit card number"))
	}

	payment := models.Payment{
		ID:               req.ID,
		CreditCardNumber: *req.CreditCardNumber,
		Amount:           req.Amount,
		PayorEmail:       payor.Email,
	}
	if err := s.store.Save(ctx, payment); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store payment")
	}

	s.logger.InfoContext(ctx, "payment processed", "payor", payment.PayorEmail, "amount", payment.Amount)
	if s.metrics != nil {
		s.metrics.IncrementPaymentsProcessed()
	}
	return nil
}

// FindByPayor returns the payor's current payment, if any.
func (s *Service) FindByPayor(ctx context.Context, payorEmail string) (models.Payment, error) {
	payment, err := s.store.FindByPayor(ctx, payorEmail)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Payment{}, dErrors.New(dErrors.CodeNotFound, "payment not found")
		}
		return models.Payment{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load payment")
	}
	return payment, nil
}

// List returns the current payment of every payor.
func (s *Service) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list payments")
	}
	return payments, nil
}

func (s *Service) reject(ctx context.Context, err error) error {
	s.logger.WarnContext(ctx, "payment rejected", "error", err.Error())
	if s.metrics != nil {
		s.metrics.IncrementPaymentsRejected(string(dErrors.CodeOf(err)))
	}
	return err
}
