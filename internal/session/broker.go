package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
)

// Handler receives session events. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(models.SessionEvent)

// Broker is an in-process publish/subscribe hub for session events.
type Broker struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int

	logger *logger.Logger
	now    func() time.Time
}

// NewBroker returns an empty broker.
func NewBroker(log *logger.Logger) *Broker {
	return &Broker{
		handlers: make(map[int]Handler),
		logger:   log,
		now:      time.Now,
	}
}

// Subscribe registers h and returns a function that unregisters it.
// Handlers are invoked in subscription order.
func (b *Broker) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish delivers ev to every subscriber. A zero At is stamped with the
// current time.
func (b *Broker) Publish(ev models.SessionEvent) {
	if ev.At.IsZero() {
		ev.At = b.now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	b.logger.Debug().
		Str("event", ev.Kind.String()).
		Str("reason", ev.Reason).
		Int("subscribers", len(handlers)).
		Msg("session event")

	for _, h := range handlers {
		h(ev)
	}
}
