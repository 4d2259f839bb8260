package rest

import (
	"sync"
	"time"
)

// nonceGenerator hands out strictly increasing nonces. The first one is the
// current unix time in seconds; later ones are last+1, or the current time if
// that is larger.
type nonceGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newNonceGenerator(now func() time.Time) *nonceGenerator {
	return &nonceGenerator{now: now}
}

func (n *nonceGenerator) next() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	candidate := n.last
	if candidate != 0 {
		candidate++
	}
	if wall := n.now().Unix(); wall > candidate {
		candidate = wall
	}
	n.last = candidate
	return candidate
}
