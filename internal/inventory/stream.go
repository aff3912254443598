package inventory

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream bridges the Redis change channel to Server-Sent Events. Clients
// reconnect on their own when a response ends, so errors simply close the
// stream.
type Stream struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStream constructs a Stream.
func NewStream(client *redis.Client, logger *slog.Logger) *Stream {
	return &Stream{client: client, logger: logger}
}

// ServeHTTP subscribes to inventory changes and relays them as SSE frames.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The stream outlives the server's write timeout; heartbeats below keep
	// the connection honest instead.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		s.logger.Debug("clear stream write deadline", slog.Any("error", err))
	}

	ctx := r.Context()
	sub := s.client.Subscribe(ctx, ChangeChannel)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Heartbeats keep proxies from reaping idle connections.
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case msg, open := <-ch:
			if !open {
				return
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", msg.Payload); err != nil {
				s.logger.Debug("inventory stream write failed", slog.Any("error", err))
				return
			}
			flusher.Flush()
		}
	}
}
