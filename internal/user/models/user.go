package models

// User is a registered subscriber. The registry keys users by Email;
// Username is unique across the registry as well.
//
// Invariants (enforced by the user service before a record is stored):
//   - Username has at least 3 characters from [A-Za-z0-9_-]
//   - Credential holds the hashed password, never the plaintext
//   - Email matches the constrained address grammar and is the storage key
//   - DateOfBirth is in the past and at least 18 years before registration
//   - CreditCardNumber is absent or has exactly 16 decimal digits
//
// ID is caller-supplied and opaque; the registry neither validates nor
// deduplicates it. Records are immutable once stored.
type User struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Credential       string `json:"-"`
	Email            string `json:"email"`
	DateOfBirth      Date   `json:"dateOfBirth"`
	CreditCardNumber *int64 `json:"creditCardNumber,omitempty"`
}

// HasCreditCard reports whether a card is on file.
func (u User) HasCreditCard() bool {
	return u.CreditCardNumber != nil
}

// Clone returns a deep copy. The card pointer is duplicated so callers can
// never reach registry-internal state through a returned record.
func (u User) Clone() User {
	out := u
	if u.CreditCardNumber != nil {
		card := *u.CreditCardNumber
		out.CreditCardNumber = &card
	}
	return out
}

// Registration carries the candidate fields for a new user. Password is the
// plaintext submitted by the caller; it is validated and hashed during
// registration and never stored.
type Registration struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	Email            string `json:"email"`
	DateOfBirth      Date   `json:"dateOfBirth"`
	CreditCardNumber *int64 `json:"creditCardNumber,omitempty"`
}
