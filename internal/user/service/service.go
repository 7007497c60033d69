// Package service implements the user registry: an ordered validation
// pipeline in front of an atomic check-and-insert store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/platform/metrics"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/validation"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/credential"
	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
	"github.com/Shozab-N18/StreamingServiceAPI/pkg/platform/sentinel"
)

// Store abstracts user persistence. Create must be atomic with respect to
// both uniqueness invariants: only one writer can win a race for the same
// username or email.
type Store interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Service orchestrates registration and lookups over the user store.
type Service struct {
	store   Store
	hasher  credential.Hasher
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
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

// WithClock overrides the time source, used by tests to pin age boundaries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(store Store, hasher credential.Hasher, opts ...Option) *Service {
	s := &Service{
		store:  store,
		hasher: hasher,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the candidate and stores it with a hashed credential.
// The check order is a contract: username, password, email, date of birth,
// credit card shape, then the age rule, then username uniqueness, then email
// uniqueness. The first violation propagates unchanged and leaves the
// registry untouched.
func (s *Service) Register(ctx context.Context, reg models.Registration) error {
	now := s.now()

	if err := validation.Username(reg.Username); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.Password(reg.Password); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.Email(reg.Email); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.DateOfBirth(reg.DateOfBirth.Time, now); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.CreditCardNumber(reg.CreditCardNumber); err != nil {
		return s.reject(ctx, err)
	}
	if err := validation.UserAge(reg.DateOfBirth.Time, now); err != nil {
		return s.reject(ctx, err)
	}

	hashed, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := models.User{
		ID:               reg.ID,
		Username:         reg.Username,
		Credential:       hashed,
		Email:            reg.Email,
		DateOfBirth:      reg.DateOfBirth,
		CreditCardNumber: reg.CreditCardNumber,
	}

	if err := s.store.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrUsernameTaken):
			return s.reject(ctx, dErrors.New(dErrors.CodeConflict, "username already exists"))
		case errors.Is(err, sentinel.ErrEmailTaken):
			return s.reject(ctx, dErrors.New(dErrors.CodeConflict, "email already exists"))
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store user")
		}
	}

	s.logger.InfoContext(ctx, "user registered", "username", reg.Username)
	if s.metrics != nil {
		s.metrics.IncrementUsersRegistered()
	}
	return nil
}

// FindByEmail returns the user stored under email. The returned record is a
// defensive copy; mutating it cannot affect registry state.
func (s *Service) FindByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.User{}, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return models.User{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return user, nil
}

// List returns registered users, optionally filtered by credit-card
// presence: true keeps users with a card on file, false keeps the
// complement, nil returns everyone. Order is unspecified.
func (s *Service) List(ctx context.Context, hasCreditCard *bool) ([]models.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	if hasCreditCard == nil {
		return users, nil
	}

	filtered := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.HasCreditCard() == *hasCreditCard {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (s *Service) reject(ctx context.Context, err error) error {
	s.logger.WarnContext(ctx, "registration rejected", "error", err.Error())
	if s.metrics != nil {
		s.metrics.IncrementRegistrationsRejected(string(dErrors.CodeOf(err)))
	}
	return err
}
