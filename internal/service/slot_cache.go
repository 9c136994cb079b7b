package service

import (
	"slices"

	"go-doctor-appointment/internal/domain/entity"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// SlotCacheKey identifies one generated schedule entry
type SlotCacheKey struct {
	DoctorID       string
	DayOfWeek      string
	AvailableAt    string
	AvailableUntil string
}

// SlotCache memoizes generated slots per schedule entry. A nil *SlotCache is
// valid and caches nothing.
type SlotCache struct {
	cache *lru.Cache[SlotCacheKey, []entity.TimeSlot]
	log   *logrus.Logger
}

// NewSlotCache returns nil when size is not positive
func NewSlotCache(size int, log *logrus.Logger) (*SlotCache, error) {
	if size <= 0 {
		log.Info("Slot cache disabled")
		return nil, nil
	}

	cache, err := lru.New[SlotCacheKey, []entity.TimeSlot](size)
	if err != nil {
		return nil, err
	}

	return &SlotCache{cache: cache, log: log}, nil
}

// KeyFor builds the cache key of a doctor's schedule entry
func KeyFor(doctorID string, schedule entity.WeeklySchedule) SlotCacheKey {
	return SlotCacheKey{
		DoctorID:       doctorID,
		DayOfWeek:      schedule.DayOfWeek,
		AvailableAt:    schedule.AvailableAt,
		AvailableUntil: schedule.AvailableUntil,
	}
}

// GetOrGenerate returns the cached slots for key, calling generate on a miss
func (c *SlotCache) GetOrGenerate(key SlotCacheKey, generate func() []entity.TimeSlot) []entity.TimeSlot {
	if c == nil {
		return generate()
	}

	if slots, ok := c.cache.Get(key); ok {
		return slices.Clone(slots)
	}

	slots := generate()
	c.cache.Add(key, slices.Clone(slots))
	return slots
}

// Purge drops every entry. Called whenever the doctor catalog is replaced.
func (c *SlotCache) Purge() {
	if c == nil {
		return
	}
	c.cache.Purge()
	c.log.Debug("Slot cache purged")
}

// Len returns the number of cached entries
func (c *SlotCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
