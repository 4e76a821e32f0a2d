package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// AsyncPublisher hands each event to the wrapped publisher on its own
// goroutine so the caller never waits for a broker confirm. The publish runs
// on a context detached from the caller's cancellation; the wrapped
// publisher's own timeout bounds it.
type AsyncPublisher struct {
	next Publisher
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewAsyncPublisher(next Publisher) *AsyncPublisher {
	return &AsyncPublisher{
		next: next,
	}
}

// Publish returns immediately. Failures are logged. Events published after
// Close are dropped.
func (p *AsyncPublisher) Publish(ctx context.Context, exchange string, event *Event, headers Headers) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		zap.L().Warn("Publisher closed, dropping event",
			zap.String("event", event.Event),
			zap.String("correlationId", headers.CorrelationID))
		return nil
	}
	p.wg.Add(1)
	p.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	go func() {
		defer p.wg.Done()

		if err := p.next.Publish(detached, exchange, event, headers); err != nil {
			zap.L().Error("Failed to publish event",
				zap.String("event", event.Event),
				zap.String("exchange", exchange),
				zap.String("correlationId", headers.CorrelationID),
				zap.Error(err),
			)
		}
	}()

	return nil
}

// IsHealthy reports the wrapped publisher's connection state when it
// exposes one.
func (p *AsyncPublisher) IsHealthy() bool {
	checker, ok := p.next.(interface{ IsHealthy() bool })
	return !ok || checker.IsHealthy()
}

// Close waits for in-flight publishes, then closes the wrapped publisher.
func (p *AsyncPublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
	return p.next.Close()
}
