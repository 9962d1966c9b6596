package cache

import (
	"context"
	"sync"
	"time"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/pkg/clock"
	"restaurant-crm/internal/usecase/shared"
)

// MemorySlotCache keeps entries in process. Used when CACHE_BACKEND=memory and in tests.
type MemorySlotCache struct {
	mu      sync.RWMutex
	clock   clock.Clock
	entries map[string]memoryEntry
}

type memoryEntry struct {
	slots     []slot.Slot
	expiresAt time.Time
}

func NewMemorySlotCache(clk clock.Clock) *MemorySlotCache {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &MemorySlotCache{
		clock:   clk,
		entries: make(map[string]memoryEntry),
	}
}

func (c *MemorySlotCache) Get(_ context.Context, restaurantID int64, date booking.Date) ([]slot.Slot, error) {
	key := SlotKey(restaurantID, date)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, shared.ErrCacheMiss
	}
	if !c.clock.Now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, shared.ErrCacheMiss
	}
	return cloneSlots(entry.slots), nil
}

func (c *MemorySlotCache) Set(_ context.Context, restaurantID int64, date booking.Date, slots []slot.Slot, ttl time.Duration) error {
	now := c.clock.Now()
	entry := memoryEntry{slots: cloneSlots(slots), expiresAt: now.Add(ttl)}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.entries[SlotKey(restaurantID, date)] = entry
	return nil
}

func cloneSlots(slots []slot.Slot) []slot.Slot {
	out := make([]slot.Slot, len(slots))
	copy(out, slots)
	return out
}
