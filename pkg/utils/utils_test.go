package utils_test

import (
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	in := time.Date(2024, 3, 5, 23, 30, 0, 0, est)
	// 23:30 EST is already March 6 in UTC
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), utils.DateOnly(in))

	utc := time.Date(2024, 3, 5, 14, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), utils.DateOnly(utc))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)
	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, utils.IsEmail("jordan@example.com"))
	assert.False(t, utils.IsEmail("not-an-email"))
	assert.False(t, utils.IsEmail(""))
}
