package terminal

import (
	"sync"

	"github.com/doeshing/termdrop/internal/domain"
	"github.com/doeshing/termdrop/internal/ports"
)

// Cache holds the last EnvironmentContext. It detects lazily on first use and
// only re-detects when Refresh is called; there is no expiry.
type Cache struct {
	detector ports.EnvironmentDetector
	mu       sync.RWMutex
	snap     *domain.EnvironmentContext
}

// NewCache wraps a detector.
func NewCache(detector ports.EnvironmentDetector) *Cache {
	return &Cache{detector: detector}
}

// Snapshot returns the cached context, detecting it once if needed.
func (c *Cache) Snapshot() domain.EnvironmentContext {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return cloneContext(*snap)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil {
		env := c.detector.Detect()
		c.snap = &env
	}
	return cloneContext(*c.snap)
}

// Refresh re-runs detection and replaces the snapshot.
func (c *Cache) Refresh() domain.EnvironmentContext {
	env := c.detector.Detect()
	c.mu.Lock()
	c.snap = &env
	c.mu.Unlock()
	return cloneContext(env)
}

// cloneContext copies the slice so callers cannot mutate the shared snapshot.
func cloneContext(env domain.EnvironmentContext) domain.EnvironmentContext {
	env.Available = append([]string(nil), env.Available...)
	return env
}

var _ ports.EnvironmentProvider = (*Cache)(nil)
