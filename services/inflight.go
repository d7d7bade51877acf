package services

import (
	"errors"
	"fmt"
	"sync"
)

// ErrMutationInFlight is returned when a mutation is requested for an
// entity that already has one pending. The caller retries after the
// first call resolves; nothing is queued.
var ErrMutationInFlight = errors.New("another change for this record is still in progress")

// inflightGuard is a per-entity mutation lock: acquired for the duration
// of a mutating call and released on completion or failure, so rapid
// repeated actions (e.g. double "mark paid") cannot race.
type inflightGuard struct {
	mu   sync.Mutex
	held map[string]bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{held: make(map[string]bool)}
}

func entityKey(kind string, id uint) string {
	return fmt.Sprintf("%s/%d", kind, id)
}

// acquire reserves the key, failing fast when it is already held.
func (g *inflightGuard) acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held[key] {
		return ErrMutationInFlight
	}
	g.held[key] = true
	return nil
}

func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
}
