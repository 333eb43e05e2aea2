package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/domain"
)

type recordingEventService struct {
	mu     sync.Mutex
	events []domain.OrderEvent
	done   chan struct{}
	want   int
}

func newRecordingEventService(want int) *recordingEventService {
	return &recordingEventService{done: make(chan struct{}), want: want}
}

func (s *recordingEventService) Process(_ context.Context, event domain.OrderEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingEventService) wait(t *testing.T) []domain.OrderEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OrderEvent(nil), s.events...)
}

func TestDispatcher_ShardIndexDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	first := d.shardIndex("order-1")
	for i := 0; i < 100; i++ {
		if d.shardIndex("order-1") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	svc := newRecordingEventService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.OrderEvent{OrderID: "order-1", Type: domain.OrderEventCreated})
	d.Enqueue(domain.OrderEvent{OrderID: "order-2", Type: domain.OrderEventCreated})
	d.Enqueue(domain.OrderEvent{OrderID: "order-3", Type: domain.OrderEventCaptured})

	events := svc.wait(t)
	seen := map[string]bool{}
	for _, e := range events {
		seen[e.OrderID] = true
	}
	if !seen["order-1"] || !seen["order-2"] || !seen["order-3"] {
		t.Fatalf("missing events: %+v", events)
	}
}

func TestDispatcher_PerOrderOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingEventService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		typ := domain.OrderEventCreated
		if i%2 == 1 {
			typ = domain.OrderEventCaptured
		}
		d.Enqueue(domain.OrderEvent{OrderID: "order-1", Type: typ, Detail: string(rune('a' + i))})
	}

	events := svc.wait(t)
	for i, e := range events {
		if e.Detail != string(rune('a'+i)) {
			t.Fatalf("events for one order arrived out of order at %d: %+v", i, events)
		}
	}
}
