package schedule_test

import (
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCadence_Next(t *testing.T) {
	tests := []struct {
		name    string
		cadence schedule.Cadence
		from    time.Time
		want    time.Time
	}{
		{"daily", schedule.Daily, date(2024, 1, 15), date(2024, 1, 16)},
		{"weekly", schedule.Weekly, date(2024, 1, 15), date(2024, 1, 22)},
		{"biweekly", schedule.Biweekly, date(2024, 1, 15), date(2024, 1, 29)},
		{"monthly", schedule.Monthly, date(2024, 1, 15), date(2024, 2, 15)},
		{"monthly rolls past short month", schedule.Monthly, date(2024, 1, 31), date(2024, 3, 2)},
		{"quarterly", schedule.Quarterly, date(2024, 1, 15), date(2024, 4, 15)},
		{"yearly", schedule.Yearly, date(2024, 2, 29), date(2025, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.cadence.Next(tt.from)
			require.True(t, ok)
			assert.Equal(t, tt.want, next)
		})
	}

	t.Run("unrecognized cadence is a no-op", func(t *testing.T) {
		from := date(2024, 1, 15)
		next, ok := schedule.Cadence("fortnightly").Next(from)
		assert.False(t, ok)
		assert.Equal(t, from, next)
	})
}

func TestCadence_Valid(t *testing.T) {
	for _, c := range []schedule.Cadence{
		schedule.Daily, schedule.Weekly, schedule.Biweekly,
		schedule.Monthly, schedule.Quarterly, schedule.Yearly,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, schedule.Cadence("hourly").Valid())
}
