package worker

import (
	"context"
	"log/slog"
	"time"
)

// Pinger is the part of the websocket hub the keepalive worker drives.
type Pinger interface {
	PingAll() int
	ConnectionCount() int
}

// KeepaliveWorker pings websocket clients on a fixed interval so dead
// connections leave the hub before a store update is pushed to them.
type KeepaliveWorker struct {
	hub    Pinger
	log    *slog.Logger
	ticker *time.Ticker
}

func NewKeepaliveWorker(hub Pinger, log *slog.Logger, interval time.Duration) *KeepaliveWorker {
	return &KeepaliveWorker{
		hub:    hub,
		log:    log,
		ticker: time.NewTicker(interval),
	}
}

func (w *KeepaliveWorker) StartWorker(ctx context.Context) {
	defer w.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.ticker.C:
			w.ping()
		}
	}
}

func (w *KeepaliveWorker) ping() {
	dropped := w.hub.PingAll()
	if dropped > 0 {
		w.log.Info("ws keepalive dropped connections", "dropped", dropped, "connections", w.hub.ConnectionCount())
	}
}
