package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Shozab-N18/StreamingServiceAPI/internal/payment/models"
	"github.com/Shozab-N18/StreamingServiceAPI/internal/payment/store"
	userModel "github.com/Shozab-N18/StreamingServiceAPI/internal/user/models"
	userService "github.com/Shozab-N18/StreamingServiceAPI/internal/user/service"
	userStore "github.com/Shozab-N18/StreamingServiceAPI/internal/user/store"
	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, cred string) bool { return cred == "hashed:"+password }

func card(n int64) *int64 { return &n }

type PaymentServiceSuite struct {
	suite.Suite
	users   *userService.Service
	store   *store.InMemory
	service *Service
	ctx     context.Context
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	s.users = userService.New(userStore.NewInMemory(), stubHasher{},
		userService.WithClock(func() time.Time { return now }))
	s.store = store.NewInMemory()
	s.service = New(s.store, s.users)
	s.ctx = context.Background()

	s.Require().NoError(s.users.Register(s.ctx, userModel.Registration{
		ID:               1,
		Username:         "johndoe",
		Password:         "Password1",
		Email:            "johndoe@example.org",
		DateOfBirth:      userModel.NewDate(2003, time.January, 1),
		CreditCardNumber: card(1234567812345678),
	}))
	s.Require().NoError(s.users.Register(s.ctx, userModel.Registration{
		ID:          2,
		Username:    "janedoe",
		Password:    "Password1",
		Email:       "janedoe@example.org",
		DateOfBirth: userModel.NewDate(2000, time.March, 5),
		// no card on file
	}))
}

func (s *PaymentServiceSuite) validRequest() models.Request {
	return models.Request{
		ID:               1,
		CreditCardNumber: card(1234567812345678),
		Amount:           100,
		PayorEmail:       "johndoe@example.org",
	}
}

func (s *PaymentServiceSuite) TestProcess() {
	s.Run("matching payor and card is stored", func() {
		s.Require().NoError(s.service.Process(s.ctx, s.validRequest()))

		payment, err := s.service.FindByPayor(s.ctx, "johndoe@example.org")
		s.Require().NoError(err)
		s.Equal(100, payment.Amount)
		s.Equal(int64(1234567812345678), payment.CreditCardNumber)
	})

	s.Run("a later payment overwrites the stored record", func() {
		req := s.validRequest()
		req.ID = 2
		req.Amount = 250
		s.Require().NoError(s.service.Process(s.ctx, req))

		payment, err := s.service.FindByPayor(s.ctx, "johndoe@example.org")
		s.Require().NoError(err)
		s.Equal(250, payment.Amount, "only the latest payment is retrievable")

		payments, err := s.service.List(s.ctx)
		s.Require().NoError(err)
		s.Len(payments, 1)
	})
}

func (s *PaymentServiceSuite) TestProcessValidation() {
	s.Run("missing card is invalid", func() {
		req := s.validRequest()
		req.CreditCardNumber = nil
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("short card is invalid", func() {
		req := s.validRequest()
		req.CreditCardNumber = card(12345678)
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("amount 1000 is invalid regardless of payor validity", func() {
		req := s.validRequest()
		req.Amount = 1000
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("card is checked before amount", func() {
		req := s.validRequest()
		req.CreditCardNumber = nil
		req.Amount = 0
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.Contains(err.Error(), "credit card")
	})
}

func (s *PaymentServiceSuite) TestProcessPayorCrossCheck() {
	s.Run("unknown payor is not matched", func() {
		req := s.validRequest()
		req.PayorEmail = "nobody@example.org"
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("registered payor with a different card is not matched", func() {
		req := s.validRequest()
		req.CreditCardNumber = card(1234567812345671)
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound),
			"mismatch reports the not-found kind even though the email is registered")
	})

	s.Run("payor without a card on file is not matched", func() {
		req := s.validRequest()
		req.PayorEmail = "janedoe@example.org"
		err := s.service.Process(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("nothing is stored on a failed cross-check", func() {
		req := s.validRequest()
		req.PayorEmail = "janedoe@example.org"
		s.Require().Error(s.service.Process(s.ctx, req))

		_, err := s.service.FindByPayor(s.ctx, "janedoe@example.org")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
