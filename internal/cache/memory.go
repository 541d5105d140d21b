package cache

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"ceybyte/terminal/internal/domain"
)

// MemoryCache backs the offline cache when the sqlite file cannot be opened,
// mirroring how the server falls back to an in-memory repository. Contents do
// not survive a restart.
type MemoryCache struct {
	mu       sync.Mutex
	recent   []recentEntry
	pending  map[string]QueuedSale
	pinUsers map[string]PINUser
}

type recentEntry struct {
	product domain.ProductResponse
	usedAt  time.Time
}

func NewMemory() *MemoryCache {
	return &MemoryCache{
		pending:  make(map[string]QueuedSale),
		pinUsers: make(map[string]PINUser),
	}
}

func (c *MemoryCache) Close() error { return nil }

func (c *MemoryCache) TouchRecentProduct(_ context.Context, product domain.ProductResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.recent[:0]
	for _, entry := range c.recent {
		if entry.product.ID != product.ID {
			kept = append(kept, entry)
		}
	}
	c.recent = append(kept, recentEntry{product: product, usedAt: time.Now()})
	if len(c.recent) > RecentProductLimit {
		c.recent = c.recent[len(c.recent)-RecentProductLimit:]
	}
	return nil
}

func (c *MemoryCache) RecentProducts(_ context.Context, limit int) ([]domain.ProductResponse, error) {
	if limit <= 0 || limit > RecentProductLimit {
		limit = RecentProductLimit
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]domain.ProductResponse, 0, limit)
	for i := len(c.recent) - 1; i >= 0 && len(products) < limit; i-- {
		products = append(products, c.recent[i].product)
	}
	return products, nil
}

func (c *MemoryCache) QueueSale(_ context.Context, sale QueuedSale) error {
	if strings.TrimSpace(sale.ID) == "" {
		return errors.New("queued sale id required")
	}
	if sale.QueuedAt.IsZero() {
		sale.QueuedAt = time.Now().UTC()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.pending[sale.ID]; !exists {
		c.pending[sale.ID] = sale
	}
	return nil
}

func (c *MemoryCache) PendingSales(_ context.Context) ([]QueuedSale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sales := make([]QueuedSale, 0, len(c.pending))
	for _, sale := range c.pending {
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].QueuedAt.Before(sales[j].QueuedAt)
	})
	return sales, nil
}

func (c *MemoryCache) DeleteQueuedSale(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
	return nil
}

func (c *MemoryCache) PendingCount(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending), nil
}

func (c *MemoryCache) UpsertPINUser(_ context.Context, user PINUser) error {
	username := strings.ToLower(strings.TrimSpace(user.Username))
	if username == "" {
		return errors.New("username required")
	}
	user.Username = username
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = time.Now().UTC()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinUsers[username] = user
	return nil
}

func (c *MemoryCache) GetPINUser(_ context.Context, username string) (*PINUser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user, ok := c.pinUsers[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
