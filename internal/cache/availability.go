package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/navalhaclub/booking-api/internal/domain/schedule"
)

// SlotCache guarda por pouco tempo a grade resolvida de (barbeiro, data).
// É só atalho de leitura: reservas nunca confiam no cache, então perder uma
// invalidação custa no máximo um slot exibido como livre até o TTL vencer.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{
		rdb: rdb,
		ttl: 60 * time.Second,
	}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date string) ([]schedule.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date string, slots []schedule.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(barberID, date), raw, c.ttl)
}

func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(barberID, date))
}
