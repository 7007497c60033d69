// Package validation holds the stateless field predicates shared by the user
// and payment registries. Every function either succeeds or fails with a
// coded domain error naming the offending field; none of them touch registry
// state. Time-dependent checks take now as a parameter so they stay pure.
package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	dErrors "github.com/Shozab-N18/StreamingServiceAPI/pkg/domain-errors"
)

const (
	usernameMinLength = 3
	passwordMinLength = 8
	cardDigitLength   = 16
	minimumAgeYears   = 18
	paymentAmountMin  = 1
	paymentAmountMax  = 999
)

const (
	usernamePattern = `^[a-zA-Z0-9_-]+$`
	// Local part allows alphanumerics and %+._- ; the domain must start with
	// an alphanumeric label and end in a top-level label of at least two
	// letters. Consecutive dots are rejected separately.
	emailPattern = `^[a-zA-Z0-9%+._-]+@[a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,}$`
)

// Username requires at least three characters drawn from [A-Za-z0-9_-].
func Username(username string) error {
	if username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	if utf8.RuneCountInString(username) < usernameMinLength {
		return dErrors.Newf(dErrors.CodeValidation, "username must be at least %d characters", usernameMinLength)
	}
	if !govalidator.Matches(username, usernamePattern) {
		return dErrors.New(dErrors.CodeValidation, "username may only contain letters, digits, underscores and hyphens")
	}
	return nil
}

// Password requires at least eight characters, one uppercase letter and one
// digit. It always runs on the plaintext, before hashing.
func Password(password string) error {
	if password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	if utf8.RuneCountInString(password) < passwordMinLength {
		return dErrors.Newf(dErrors.CodeValidation, "password must be at least %d characters", passwordMinLength)
	}
	if !govalidator.HasUpperCase(password) {
		return dErrors.New(dErrors.CodeValidation, "password must contain an uppercase letter")
	}
	if !govalidator.Matches(password, `[0-9]`) {
		return dErrors.New(dErrors.CodeValidation, "password must contain a digit")
	}
	return nil
}

// Email enforces the constrained address grammar. Consecutive dots are
// rejected anywhere in the address so domains like a..b never pass.
func Email(email string) error {
	if email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if !govalidator.Matches(email, emailPattern) || strings.Contains(email, "..") {
		return dErrors.New(dErrors.CodeValidation, "invalid email")
	}
	return nil
}

// DateOfBirth requires a present date strictly before today. Both sides are
// compared at calendar-date granularity, so a birth date equal to today is
// rejected no matter the wall-clock time. The minimum-age rule is a separate
// check, see UserAge.
func DateOfBirth(dob, now time.Time) error {
	if dob.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "date of birth is required")
	}
	if !dateOf(dob).Before(dateOf(now)) {
		return dErrors.New(dErrors.CodeValidation, "date of birth must be in the past")
	}
	return nil
}

// UserAge requires the date of birth to be strictly more than eighteen years
// before today, at calendar-date granularity. This is a business rule, not a
// field-shape rule, and reports a distinct error kind.
func UserAge(dob, now time.Time) error {
	cutoff := dateOf(now).AddDate(-minimumAgeYears, 0, 0)
	if dob.IsZero() || !dateOf(dob).Before(cutoff) {
		return dErrors.Newf(dErrors.CodeAgeRestricted, "user must be at least %d years old", minimumAgeYears)
	}
	return nil
}

// dateOf truncates a timestamp to its calendar date at midnight UTC so the
// birth-date rules never depend on the time of day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreditCardNumber validates the optional card on a user record: absent is
// fine, present must have exactly sixteen decimal digits. The rule is about
// the numeric value's decimal length, not a fixed-width string.
func CreditCardNumber(number *int64) error {
	if number == nil {
		return nil
	}
	if !hasCardDigitLength(*number) {
		return dErrors.New(dErrors.CodeValidation, "invalid credit card number")
	}
	return nil
}

// PaymentCreditCardNumber validates the required card on a payment: it must
// be present with exactly sixteen decimal digits.
func PaymentCreditCardNumber(number *int64) error {
	if number == nil || !hasCardDigitLength(*number) {
		return dErrors.New(dErrors.CodeValidation, "invalid credit card number")
	}
	return nil
}

// PaymentAmount accepts whole amounts between 1 and 999 inclusive.
func PaymentAmount(amount int) error {
	if amount < paymentAmountMin || amount > paymentAmountMax {
		return dErrors.New(dErrors.CodeValidation, "invalid payment amount")
	}
	return nil
}

func hasCardDigitLength(number int64) bool {
	return len(strconv.FormatInt(number, 10)) == cardDigitLength
}
