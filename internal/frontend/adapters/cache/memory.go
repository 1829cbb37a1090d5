package cache

import (
	"context"
	"sync"
	"time"

	"nclexfront/internal/frontend/ports/cache"
)

// memoryEntry - значение с моментом истечения.
type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache реализует интерфейс Cache в памяти процесса.
// Используется в тестах и при локальной разработке без Redis.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache создает новый экземпляр MemoryCache.
func NewMemoryCache() cache.Cache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

// Get получает значение по ключу. Отсутствие ключа не считается ошибкой.
func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

// Set устанавливает значение для ключа с временем жизни.
func (c *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete удаляет значение по ключу.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Close освобождает ресурсы кэша.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}
