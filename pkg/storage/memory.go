package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"perfumeHelper/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type memoryItem struct {
	raw       []byte
	expiresAt time.Time
}

func (i memoryItem) isExpired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// MemoryClient keeps everything in process memory, it replaces redis when REDIS_ADDR is not set.
type MemoryClient struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	now   func() time.Time
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		items: map[string]memoryItem{},
		now:   time.Now,
	}
}

func (c *MemoryClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.isExpired(c.now()) {
		logrus.WithContext(ctx).Debugf("nothing found in memory under key %q", key)
		return nil, false, nil
	}

	res := make([]byte, len(item.raw))
	copy(res, item.raw)

	return res, true, nil
}

func (c *MemoryClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	item := memoryItem{raw: make([]byte, len(raw))}
	copy(item.raw, raw)

	if exp > 0 {
		item.expiresAt = c.now().Add(exp)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()

	if isLoggable(ctx) {
		logrus.WithContext(ctx).Debugf("wrote data %q to memory under key %q", string(raw), key)
	}

	return nil
}

func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()

	return nil
}

func (c *MemoryClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	rawData, found, err := c.Read(ctx, key)
	if err != nil || !found {
		return false, err
	}

	return true, unmarshal(ctx, rawData, target)
}

func (c *MemoryClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", utils.GetType(data))
	}

	return c.Write(ctx, key, rawBytes, validity)
}

// Close drops everything, the client stays usable.
func (c *MemoryClient) Close() error {
	c.mu.Lock()
	c.items = map[string]memoryItem{}
	c.mu.Unlock()

	return nil
}
