package schedule_test

import (
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefinition(t *testing.T, cadence schedule.Cadence, next time.Time) *schedule.Definition {
	t.Helper()
	amount, err := money.New(15.99, "USD")
	require.NoError(t, err)
	return &schedule.Definition{
		ID:             uuid.New(),
		AccountID:      uuid.New(),
		Amount:         amount,
		Merchant:       "StreamFlix",
		Cadence:        cadence,
		StartDate:      next,
		NextOccurrence: next,
		Active:         true,
	}
}

func TestDefinition_DueAsOf(t *testing.T) {
	next := date(2024, 1, 1)
	asOf := date(2024, 1, 15)

	t.Run("due when next occurrence has passed", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, next)
		assert.True(t, def.DueAsOf(asOf))
	})

	t.Run("due on the exact day", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, asOf)
		assert.True(t, def.DueAsOf(asOf))
	})

	t.Run("not due when next occurrence is in the future", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, date(2024, 2, 1))
		assert.False(t, def.DueAsOf(asOf))
	})

	t.Run("not due when inactive", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, next)
		def.Active = false
		assert.False(t, def.DueAsOf(asOf))
	})

	t.Run("not due when end date has passed", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, next)
		end := date(2024, 1, 10)
		def.EndDate = &end
		assert.False(t, def.DueAsOf(asOf))
	})
}

func TestDefinition_Advance(t *testing.T) {
	t.Run("monthly advances one month", func(t *testing.T) {
		def := newDefinition(t, schedule.Monthly, date(2024, 1, 1))
		require.True(t, def.Advance())
		assert.Equal(t, date(2024, 2, 1), def.NextOccurrence)
	})

	t.Run("unrecognized cadence leaves date unchanged", func(t *testing.T) {
		def := newDefinition(t, schedule.Cadence("fortnightly"), date(2024, 1, 1))
		assert.False(t, def.Advance())
		assert.Equal(t, date(2024, 1, 1), def.NextOccurrence)
	})
}

func TestDefinition_Validate(t *testing.T) {
	def := newDefinition(t, schedule.Monthly, date(2024, 1, 1))
	assert.NoError(t, def.Validate())

	def.Cadence = "sometimes"
	assert.ErrorIs(t, def.Validate(), schedule.ErrInvalidCadence)

	def = newDefinition(t, schedule.Monthly, date(2024, 1, 1))
	def.Amount = money.NewFromData(0, "USD")
	assert.ErrorIs(t, def.Validate(), schedule.ErrAmountMustBePositive)
}
