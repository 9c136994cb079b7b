package service

import (
	"io"
	"testing"

	"go-doctor-appointment/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSlotCacheDisabled(t *testing.T) {
	cache, err := NewSlotCache(0, quietLogger())
	require.NoError(t, err)
	assert.Nil(t, cache)

	calls := 0
	gen := func() []entity.TimeSlot { calls++; return []entity.TimeSlot{{ID: "a"}} }
	key := SlotCacheKey{DoctorID: "d"}

	cache.GetOrGenerate(key, gen)
	cache.GetOrGenerate(key, gen)
	cache.Purge()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, cache.Len())
}

func TestSlotCacheHitAndPurge(t *testing.T) {
	cache, err := NewSlotCache(8, quietLogger())
	require.NoError(t, err)

	calls := 0
	gen := func() []entity.TimeSlot { calls++; return []entity.TimeSlot{{ID: "a"}, {ID: "b"}} }
	key := KeyFor("d", entity.WeeklySchedule{DayOfWeek: "Monday", AvailableAt: "9:00AM", AvailableUntil: "10:00AM"})

	first := cache.GetOrGenerate(key, gen)
	second := cache.GetOrGenerate(key, gen)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	second[0].ID = "mutated"
	third := cache.GetOrGenerate(key, gen)
	assert.Equal(t, "a", third[0].ID)

	other := KeyFor("d", entity.WeeklySchedule{DayOfWeek: "Monday", AvailableAt: "9:00AM", AvailableUntil: "11:00AM"})
	cache.GetOrGenerate(other, gen)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	cache.GetOrGenerate(key, gen)
	assert.Equal(t, 3, calls)
}
