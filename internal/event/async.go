package event

import (
	"context"
	"fmt"
	"sync"
)

// AsyncPublisher publishes events off the request path. Handler failures are
// logged, never returned, so a committed state change is never reported as failed.
type AsyncPublisher struct {
	bus Bus
	wg  sync.WaitGroup
}

// NewAsyncPublisher wraps bus. A nil bus makes every publish a no-op.
func NewAsyncPublisher(bus Bus) *AsyncPublisher {
	return &AsyncPublisher{bus: bus}
}

// PublishAsync dispatches evt in a background goroutine. The request context is
// detached from cancellation but keeps its values (request id).
func (p *AsyncPublisher) PublishAsync(ctx context.Context, evt Event) {
	if p == nil || p.bus == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		PublishAndLog(detached, p.bus, evt)
	}()
}

// Wait blocks until in-flight publishes finish or ctx is done.
func (p *AsyncPublisher) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
