// Package currency holds the currency metadata the ledger needs to convert
// between display amounts and smallest-unit integer amounts.
package currency

import (
	"fmt"
	"regexp"
)

// Code is an ISO 4217 currency code (3 uppercase letters).
type Code string

// DefaultCurrency is used when no currency code is supplied.
const DefaultCurrency Code = "USD"

// USD is the default currency code.
const USD Code = "USD"

// Meta describes a supported currency.
type Meta struct {
	Code     Code
	Name     string
	Decimals int
}

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// supported is the fixed registry of currencies the ledger accepts.
// Multi-currency conversion is out of scope; this only drives minor-unit math.
var supported = map[Code]Meta{
	"USD": {Code: "USD", Name: "US Dollar", Decimals: 2},
	"EUR": {Code: "EUR", Name: "Euro", Decimals: 2},
	"GBP": {Code: "GBP", Name: "Pound Sterling", Decimals: 2},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Decimals: 2},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Decimals: 0},
}

// IsValidCurrencyFormat reports whether code is syntactically a currency code.
func IsValidCurrencyFormat(code string) bool {
	return codeFormat.MatchString(code)
}

// IsSupported reports whether the registry knows the given code.
func IsSupported(code string) bool {
	_, ok := supported[Code(code)]
	return ok
}

// Get returns the metadata for a currency code.
func Get(code string) (Meta, error) {
	meta, ok := supported[Code(code)]
	if !ok {
		return Meta{}, fmt.Errorf("unsupported currency: %s", code)
	}
	return meta, nil
}

// String implements fmt.Stringer.
func (c Code) String() string { return string(c) }
