// Package common holds domain errors shared across domain packages.
package common

import "errors"

// ErrInvalidCurrencyCode is returned when a currency code is invalid.
var ErrInvalidCurrencyCode = errors.New("invalid currency code")

// ErrUnsupportedCurrency is returned when a currency code is well-formed but
// not in the supported registry.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrCurrencyMismatch is returned when a monetary operation mixes currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrInvalidDecimalPlaces is returned when a monetary amount has more decimal
// places than allowed by the currency.
var ErrInvalidDecimalPlaces = errors.New("amount has more decimal places than allowed by the currency")

// ErrAmountExceedsMaxSafeInt is returned when an amount would overflow the
// smallest-unit integer representation.
var ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
