package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// DefaultNotificationTTL is how long a toast stays up before
// auto-dismissing.
const DefaultNotificationTTL = 5 * time.Second

// Notification is one transient toast message.
type Notification struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Notifier keeps the current stack of toast notifications. Each push
// arms an auto-dismiss timer; dismissing early cancels the timer so it
// never fires against a reused slot.
type Notifier struct {
	ttl time.Duration

	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{
		ttl:    ttl,
		timers: map[string]*time.Timer{},
	}
}

// Push adds a toast and schedules its auto-dismiss.
func (n *Notifier) Push(level Level, message string) Notification {
	item := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = append(n.items, item)
	n.timers[item.ID] = time.AfterFunc(n.ttl, func() {
		n.Dismiss(item.ID)
	})

	return item
}

// Dismiss removes a toast before (or at) its timeout. Reports whether
// the id was present; dismissing twice is harmless.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}

	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the current toasts, oldest first.
func (n *Notifier) List() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Close stops all pending timers.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.items = nil
}
