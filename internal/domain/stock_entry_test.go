package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanConsume(t *testing.T) {
	entry := StockEntry{Quantity: 100}

	assert.True(t, entry.CanConsume(100))
	assert.True(t, entry.CanConsume(30))
	assert.True(t, entry.CanConsume(0))
	assert.False(t, entry.CanConsume(101))
	assert.False(t, entry.CanConsume(-1))
}

func TestDateOf_StripsTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	assert.NoError(t, err)

	at := time.Date(2025, time.March, 14, 23, 59, 58, 123, loc)
	day := DateOf(at)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, loc), day)
	assert.Equal(t, loc, day.Location())
}

func TestDateOf_Idempotent(t *testing.T) {
	day := DateOf(time.Now())
	assert.Equal(t, day, DateOf(day))
}

func TestToday_IsDateOnly(t *testing.T) {
	day := Today()

	assert.Zero(t, day.Hour())
	assert.Zero(t, day.Minute())
	assert.Zero(t, day.Second())
	assert.Zero(t, day.Nanosecond())
}
