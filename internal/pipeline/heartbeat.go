package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Heartbeat refreshes the uploader's session on a fixed interval while it is armed.
// A nil Heartbeat, or one without a keeper, does nothing.
type Heartbeat struct {
	log      *slog.Logger
	keeper   SessionKeeper
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewHeartbeat(log *slog.Logger, keeper SessionKeeper, interval time.Duration) *Heartbeat {
	return &Heartbeat{
		log:      log,
		keeper:   keeper,
		interval: interval,
	}
}

// Start arms the heartbeat. Starting an armed heartbeat is a no-op.
func (h *Heartbeat) Start(ctx context.Context, identity string) {
	if h == nil || h.keeper == nil || h.interval <= 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})

	go h.run(ctx, identity, h.done)
}

// Stop disarms the heartbeat and waits for the ticker goroutine to exit.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancel == nil {
		return
	}

	h.cancel()
	<-h.done

	h.cancel = nil
	h.done = nil
}

func (h *Heartbeat) Armed() bool {
	if h == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.cancel != nil
}

func (h *Heartbeat) run(ctx context.Context, identity string, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := h.keeper.KeepAlive(ctx, identity); err != nil && ctx.Err() == nil {
				h.log.WarnContext(ctx, "failed to keep session alive",
					slog.String("identity", identity),
					slog.String("err", err.Error()),
				)
			}

		case <-ctx.Done():
			return
		}
	}
}
