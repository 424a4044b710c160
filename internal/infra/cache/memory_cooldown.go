// Package cache implements the alert cooldown used to debounce geofence alerts.
package cache

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"tracker/internal/domain/service"

	"github.com/google/uuid"
)

type cooldownEntry struct {
	userID    uuid.UUID
	deviceID  uuid.UUID
	expiresAt time.Time
	index     int
}

// expiryQueue is a min-heap of entries ordered by expiry.
type expiryQueue []*cooldownEntry

func (q expiryQueue) Len() int           { return len(q) }
func (q expiryQueue) Less(i, j int) bool { return q[i].expiresAt.Before(q[j].expiresAt) }
func (q expiryQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *expiryQueue) Push(x any) {
	entry := x.(*cooldownEntry)
	entry.index = len(*q)
	*q = append(*q, entry)
}

func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*q = old[:n-1]

	return entry
}

// memoryCooldown keeps entries in a map indexed by user and evicts them with a
// single timer armed for the earliest expiry.
type memoryCooldown struct {
	mu       sync.Mutex
	clock    service.Clock
	ttl      time.Duration
	entries  map[uuid.UUID]*cooldownEntry
	queue    expiryQueue
	timer    service.Timer
	timerAt  time.Time
	timerSeq uint64 // identifies the armed timer so a superseded callback leaves it alone
	closed   bool
}

// NewMemoryCooldown returns an in-process cooldown cache.
func NewMemoryCooldown(clock service.Clock, ttl time.Duration) service.AlertCooldown {
	return &memoryCooldown{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[uuid.UUID]*cooldownEntry),
	}
}

func (c *memoryCooldown) Suppressed(_ context.Context, userID, deviceID uuid.UUID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[userID]
	if !ok || entry.deviceID != deviceID {
		return false, nil
	}

	return c.clock.Now().Before(entry.expiresAt), nil
}

func (c *memoryCooldown) Mark(_ context.Context, userID, deviceID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	expiresAt := c.clock.Now().Add(c.ttl)
	if entry, ok := c.entries[userID]; ok {
		entry.deviceID = deviceID
		entry.expiresAt = expiresAt
		heap.Fix(&c.queue, entry.index)
	} else {
		entry := &cooldownEntry{userID: userID, deviceID: deviceID, expiresAt: expiresAt}
		c.entries[userID] = entry
		heap.Push(&c.queue, entry)
	}

	c.scheduleLocked()

	return nil
}

func (c *memoryCooldown) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.entries = make(map[uuid.UUID]*cooldownEntry)
	c.queue = nil

	return nil
}

// Len returns the number of live entries.
func (c *memoryCooldown) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// scheduleLocked arms the eviction timer for the head of the queue unless a
// timer for an earlier or equal instant is already pending.
func (c *memoryCooldown) scheduleLocked() {
	if c.closed || len(c.queue) == 0 {
		return
	}

	next := c.queue[0].expiresAt
	if c.timer != nil {
		if !next.Before(c.timerAt) {
			return
		}
		c.timer.Stop()
	}

	c.timerSeq++
	seq := c.timerSeq
	c.timerAt = next
	c.timer = c.clock.AfterFunc(next.Sub(c.clock.Now()), func() { c.evict(seq) })
}

func (c *memoryCooldown) evict(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq == c.timerSeq {
		c.timer = nil
	}
	if c.closed {
		return
	}

	now := c.clock.Now()
	for len(c.queue) > 0 && !c.queue[0].expiresAt.After(now) {
		entry := heap.Pop(&c.queue).(*cooldownEntry)
		delete(c.entries, entry.userID)
	}

	c.scheduleLocked()
}
