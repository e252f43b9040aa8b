// Package money provides the Money value object used for all balances and
// transaction amounts. Amounts are stored as integers in the smallest currency
// unit (cents for USD) so that balance arithmetic never touches binary floats.
package money

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/adamfarahx/finance-analytics-db/pkg/currency"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/common"
)

// Amount is a monetary amount as an integer in the smallest currency unit.
type Amount = int64

// Money represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit.
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates a Money value object from a display amount (e.g. dollars).
// The amount must not carry more decimal places than the currency allows.
func New(amount float64, currencyCode currency.Code) (Money, error) {
	if currencyCode == "" {
		currencyCode = currency.DefaultCurrency
	}
	if !currency.IsValidCurrencyFormat(string(currencyCode)) {
		return Money{}, common.ErrInvalidCurrencyCode
	}

	smallestUnit, err := convertToSmallestUnit(amount, string(currencyCode))
	if err != nil {
		return Money{}, err
	}
	return Money{amount: smallestUnit, currency: currencyCode}, nil
}

// NewFromSmallestUnit creates a Money value object directly from an amount in
// the smallest currency unit. Used when hydrating from the data store.
func NewFromSmallestUnit(amount int64, currencyCode currency.Code) (Money, error) {
	if currencyCode == "" {
		currencyCode = currency.DefaultCurrency
	}
	if !currency.IsValidCurrencyFormat(string(currencyCode)) {
		return Money{}, common.ErrInvalidCurrencyCode
	}
	return Money{amount: amount, currency: currencyCode}, nil
}

// NewFromData hydrates a Money from stored data without validation.
// Only for mapping persistence models back to the domain.
func NewFromData(amount int64, currencyCode string) Money {
	if currencyCode == "" {
		currencyCode = string(currency.DefaultCurrency)
	}
	return Money{amount: amount, currency: currency.Code(currencyCode)}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount { return m.amount }

// AmountFloat returns the amount as a float64 in the main currency unit.
func (m Money) AmountFloat() float64 {
	meta, err := currency.Get(string(m.currency))
	if err != nil {
		return float64(m.amount)
	}
	return float64(m.amount) / math.Pow10(meta.Decimals)
}

// Currency returns the currency code.
func (m Money) Currency() currency.Code { return m.currency }

// Add adds another Money value. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, common.ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract subtracts another Money value. Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, common.ErrCurrencyMismatch
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Negate returns the Money value with its sign flipped.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m.amount < 0 {
		return m.Negate()
	}
	return m
}

// Equals reports whether both currency and amount match.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// IsSameCurrency reports whether the other Money has the same currency.
func (m Money) IsSameCurrency(other Money) bool { return m.currency == other.currency }

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool { return m.amount < 0 }

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// String returns a human-readable representation, e.g. "75.50 USD".
func (m Money) String() string {
	meta, err := currency.Get(string(m.currency))
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%.*f %s", meta.Decimals, m.AmountFloat(), m.currency)
}

// convertToSmallestUnit converts a display amount to the smallest currency
// unit using big.Rat so no precision is lost on the way in.
func convertToSmallestUnit(amount float64, currencyCode string) (int64, error) {
	meta, err := currency.Get(currencyCode)
	if err != nil {
		return 0, err
	}

	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > meta.Decimals {
			return 0, common.ErrInvalidDecimalPlaces
		}
	}

	amountStr = fmt.Sprintf("%.*f", meta.Decimals, amount)
	amountRat, ok := new(big.Rat).SetString(amountStr)
	if !ok {
		return 0, fmt.Errorf("invalid amount format: %f", amount)
	}

	multiplier := math.Pow10(meta.Decimals)
	smallestUnitRat := new(big.Rat).Mul(amountRat, big.NewRat(int64(multiplier), 1))
	if !smallestUnitRat.IsInt() {
		return 0, common.ErrInvalidDecimalPlaces
	}

	smallestUnit := smallestUnitRat.Num()
	if !smallestUnit.IsInt64() {
		return 0, common.ErrAmountExceedsMaxSafeInt
	}
	return smallestUnit.Int64(), nil
}
