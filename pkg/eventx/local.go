package eventx

import (
	"context"
	"sync"
)

// LocalBus delivers events synchronously to handlers in the same process.
type LocalBus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewLocalBus() *LocalBus { return &LocalBus{} }

func (b *LocalBus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *LocalBus) PublishUserDeleted(ctx context.Context, ev UserDeleted) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
	return nil
}

func (b *LocalBus) Close() error { return nil }
