package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChangeChannel is the Redis pub/sub channel carrying item changes. Pages
// subscribe on mount and tear down on unmount; the SSE handler bridges the
// channel to the browser.
const ChangeChannel = "inventory.changed"

// Change operations.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpReset  = "reset"
)

// ChangeEvent notifies subscribers that the inventory table changed.
type ChangeEvent struct {
	Op            string    `json:"op"`
	ItemID        int64     `json:"item_id,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	At            time.Time `json:"at"`
}

// Publisher broadcasts change events over Redis.
type Publisher struct {
	client *redis.Client
}

// NewPublisher constructs a Publisher.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish sends the event; delivery is best effort.
func (p *Publisher) Publish(ctx context.Context, evt ChangeEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, ChangeChannel, payload).Err()
}
