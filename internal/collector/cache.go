package collector

import (
	"sync"

	"github.com/prabalesh/uptop/internal/models"
)

// CounterCache holds the previous counter reading per interface.
type CounterCache struct {
	previous map[string]models.InterfaceCounters

	mutex sync.RWMutex
}

func NewCounterCache() *CounterCache {
	return &CounterCache{
		previous: make(map[string]models.InterfaceCounters),
	}
}

// Swap stores current and returns the reading it replaced.
func (c *CounterCache) Swap(current models.InterfaceCounters) (models.InterfaceCounters, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	prev, ok := c.previous[current.Name]
	c.previous[current.Name] = current
	return prev, ok
}

func (c *CounterCache) Previous(name string) (models.InterfaceCounters, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	prev, ok := c.previous[name]
	return prev, ok
}

func (c *CounterCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.previous = make(map[string]models.InterfaceCounters)
}
