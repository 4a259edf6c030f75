// Package toast holds short-lived notifications shown to the user.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skybook/skybook-web/pkg/metrics"
)

// DefaultDuration applies when a caller passes no positive duration.
const DefaultDuration = 3000 * time.Millisecond

// Kind is the visual class of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Message is one visible notification.
type Message struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Kind       Kind      `json:"type"`
	DurationMS int64     `json:"duration"`
	CreatedAt  time.Time `json:"createdAt"`
}

type entry struct {
	msg   Message
	timer Timer
}

// Channel keeps the visible notifications in arrival order. Identical
// messages are not merged.
type Channel struct {
	clock    Clock
	fallback time.Duration

	mu      sync.Mutex
	entries []*entry
}

// New creates a channel. A non-positive defaultDuration uses DefaultDuration.
func New(clock Clock, defaultDuration time.Duration) *Channel {
	if clock == nil {
		clock = RealClock()
	}
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Channel{clock: clock, fallback: defaultDuration}
}

// Emit shows message for d and returns it.
func (c *Channel) Emit(message string, kind Kind, d time.Duration) Message {
	if d <= 0 {
		d = c.fallback
	}
	msg := Message{
		ID:         uuid.NewString(),
		Message:    message,
		Kind:       kind,
		DurationMS: d.Milliseconds(),
		CreatedAt:  c.clock.Now(),
	}

	e := &entry{msg: msg}
	c.mu.Lock()
	c.entries = append(c.entries, e)
	e.timer = c.clock.AfterFunc(d, func() { c.Dismiss(msg.ID) })
	c.mu.Unlock()

	metrics.ToastsEmitted.WithLabelValues(string(kind)).Inc()
	return msg
}

func (c *Channel) Success(message string) Message { return c.Emit(message, KindSuccess, 0) }

func (c *Channel) Error(message string) Message { return c.Emit(message, KindError, 0) }

func (c *Channel) Info(message string) Message { return c.Emit(message, KindInfo, 0) }

// Dismiss removes a notification early. It reports whether id was visible.
func (c *Channel) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.msg.ID != id {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		return true
	}
	return false
}

// List returns the visible notifications, oldest first.
func (c *Channel) List() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.msg)
	}
	return out
}
