package money_test

import (
	"testing"

	"github.com/adamfarahx/finance-analytics-db/pkg/currency"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/common"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_Precision(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency currency.Code
		expected int64
		wantErr  error
	}{
		{"USD with cents", 100.50, "USD", 10050, nil},
		{"EUR with cents", 99.99, "EUR", 9999, nil},
		{"JPY whole numbers", 1000.0, "JPY", 1000, nil},
		{"empty code defaults to USD", 12.34, "", 1234, nil},
		{"too many decimals for USD", 100.123, "USD", 0, common.ErrInvalidDecimalPlaces},
		{"too many decimals for JPY", 100.5, "JPY", 0, common.ErrInvalidDecimalPlaces},
		{"invalid currency format", 100.0, "usd", 0, common.ErrInvalidCurrencyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Amount())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	usd100, err := money.New(100.0, "USD")
	require.NoError(t, err)
	usd50, err := money.New(50.0, "USD")
	require.NoError(t, err)
	eur100, err := money.New(100.0, "EUR")
	require.NoError(t, err)

	t.Run("add same currency", func(t *testing.T) {
		result, err := usd100.Add(usd50)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), result.Amount())
	})

	t.Run("add different currency", func(t *testing.T) {
		_, err := usd100.Add(eur100)
		assert.ErrorIs(t, err, common.ErrCurrencyMismatch)
	})

	t.Run("subtract same currency", func(t *testing.T) {
		result, err := usd100.Subtract(usd50)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.Amount())
	})

	t.Run("subtract different currency", func(t *testing.T) {
		_, err := usd100.Subtract(eur100)
		assert.ErrorIs(t, err, common.ErrCurrencyMismatch)
	})

	t.Run("negate and abs", func(t *testing.T) {
		neg := usd100.Negate()
		assert.Equal(t, int64(-10000), neg.Amount())
		assert.True(t, neg.IsNegative())
		assert.Equal(t, int64(10000), neg.Abs().Amount())
		assert.True(t, usd100.Equals(neg.Abs()))
	})
}

func TestMoney_NewFromSmallestUnit(t *testing.T) {
	m, err := money.NewFromSmallestUnit(7550, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(7550), m.Amount())
	assert.InDelta(t, 75.50, m.AmountFloat(), 0.001)

	_, err = money.NewFromSmallestUnit(100, "us")
	assert.ErrorIs(t, err, common.ErrInvalidCurrencyCode)
}

func TestMoney_String(t *testing.T) {
	m, err := money.New(75.5, "USD")
	require.NoError(t, err)
	assert.Equal(t, "75.50 USD", m.String())

	jpy, err := money.New(1200.0, "JPY")
	require.NoError(t, err)
	assert.Equal(t, "1200 JPY", jpy.String())
}

func TestMoney_ZeroAndSign(t *testing.T) {
	zero := money.NewFromData(0, "USD")
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
}
