// Package models defines the payment entities.
package models

// Payment records a charge against a registered payor. The registry keys
// payments by PayorEmail and keeps only the latest record per payor: a
// second accepted payment for the same payor replaces the first.
//
// Invariants (enforced by the payment service before a record is stored):
//   - CreditCardNumber has exactly 16 decimal digits
//   - Amount is between 1 and 999 inclusive
//   - A user exists whose email equals PayorEmail and whose card on file
//     equals CreditCardNumber
//
// ID is caller-supplied and opaque; the registry does not validate it.
type Payment struct {
	ID               int64  `json:"id"`
	CreditCardNumber int64  `json:"creditCardNumber"`
	Amount           int    `json:"amount"`
	PayorEmail       string `json:"payorEmail"`
}

// Request carries the submitted payment fields. CreditCardNumber is a
// pointer so an absent card is distinguishable from zero; the digit-length
// rule is applied to the numeric value.
type Request struct {
	ID               int64  `json:"id"`
	CreditCardNumber *int64 `json:"creditCardNumber"`
	Amount           int    `json:"amount"`
	PayorEmail       string `json:"payorEmail"`
}
