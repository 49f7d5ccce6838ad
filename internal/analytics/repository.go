// internal/analytics/repository.go

package analytics

import "sync"

// EventLog stores custom analytics events.
type EventLog interface {
	Append(e *Event) error
	List() []*Event
}

type memoryEventLog struct {
	mu     sync.RWMutex
	events []*Event
}

// NewMemoryEventLog returns an empty in-memory event log.
func NewMemoryEventLog() EventLog {
	return &memoryEventLog{}
}

func (l *memoryEventLog) Append(e *Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	return nil
}

func (l *memoryEventLog) List() []*Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Event, len(l.events))
	copy(out, l.events)
	return out
}
