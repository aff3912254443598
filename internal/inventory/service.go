package inventory

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// EventsPort broadcasts inventory change events.
type EventsPort interface {
	Publish(ctx context.Context, evt ChangeEvent) error
}

// ActivityPort records inventory actions in the activity log.
type ActivityPort interface {
	Record(ctx context.Context, entry shared.ActivityEntry) error
}

// Service carries inventory business rules.
type Service struct {
	repo     Repository
	events   EventsPort
	activity ActivityPort
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(repo Repository, events EventsPort, activity ActivityPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, events: events, activity: activity, logger: logger}
}

// Schema maps items onto the report pipeline. Every list request reloads the
// authoritative rows and reapplies criteria; nothing is filtered in place.
func Schema() reportkit.Schema[Item] {
	return reportkit.Schema[Item]{
		SearchFields: []func(Item) string{
			func(i Item) string { return i.Name },
			func(i Item) string { return i.Description },
		},
		Category: func(i Item) string { return i.Category },
		Date:     func(i Item) time.Time { return i.CreatedAt },
		SortKeys: map[string]reportkit.KeyFunc[Item]{
			"name":     func(i Item) reportkit.Key { return reportkit.StrKey(i.Name) },
			"price":    func(i Item) reportkit.Key { return reportkit.NumKey(i.Price) },
			"quantity": func(i Item) reportkit.Key { return reportkit.IntKey(i.StockQuantity) },
			"created":  func(i Item) reportkit.Key { return reportkit.TimeKey(i.CreatedAt) },
		},
	}
}

// List returns items matching the criteria.
func (s *Service) List(ctx context.Context, criteria reportkit.Criteria) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return reportkit.Run(items, Schema(), criteria), nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id int64) (Item, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and inserts a new item, then broadcasts the change.
func (s *Service) Create(ctx context.Context, in CreateInput) (Item, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Item{}, ErrNameRequired
	}
	if in.Price < 0 {
		return Item{}, ErrInvalidPrice
	}
	if in.StockQuantity < 0 {
		return Item{}, ErrInvalidQuantity
	}
	item, err := s.repo.Insert(ctx, in)
	if err != nil {
		return Item{}, err
	}
	s.broadcast(ctx, ChangeEvent{Op: OpInsert, ItemID: item.ID, StockQuantity: item.StockQuantity, At: time.Now().UTC()})
	s.record(ctx, in.ActorID, "inventory:create", item.ID, map[string]any{"name": item.Name})
	return item, nil
}

// SetStock overwrites the stock quantity of an item.
func (s *Service) SetStock(ctx context.Context, actorID, id int64, quantity int) (Item, error) {
	if quantity < 0 {
		return Item{}, ErrInvalidQuantity
	}
	item, err := s.repo.UpdateStock(ctx, id, quantity)
	if err != nil {
		return Item{}, err
	}
	s.broadcast(ctx, ChangeEvent{Op: OpUpdate, ItemID: item.ID, StockQuantity: item.StockQuantity, At: time.Now().UTC()})
	s.record(ctx, actorID, "inventory:set_stock", item.ID, map[string]any{"quantity": quantity})
	return item, nil
}

// ResetAllStock zeroes every item and reports how many rows changed.
func (s *Service) ResetAllStock(ctx context.Context, actorID int64) (int64, error) {
	affected, err := s.repo.ResetAllStock(ctx)
	if err != nil {
		return 0, err
	}
	s.broadcast(ctx, ChangeEvent{Op: OpReset, At: time.Now().UTC()})
	s.record(ctx, actorID, "inventory:reset_stock", 0, map[string]any{"affected": affected})
	return affected, nil
}

// Summary aggregates the whole inventory for the dashboard header.
type Summary struct {
	TotalItems   int                `json:"total_items"`
	TotalValue   float64            `json:"total_value"`
	LowStock     int                `json:"low_stock"`
	OutOfStock   int                `json:"out_of_stock"`
	ByCategory   []reportkit.Bucket `json:"by_category"`
	AveragePrice float64            `json:"average_price"`
}

// Summarize computes the dashboard summary from all items.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TotalItems: len(items),
		TotalValue: reportkit.Sum(items, func(i Item) float64 {
			return i.Price * float64(i.StockQuantity)
		}),
		LowStock: reportkit.Count(items, func(i Item) bool {
			return i.StockBand() != reportkit.BandGood
		}),
		OutOfStock: reportkit.Count(items, func(i Item) bool {
			return i.StockQuantity == 0
		}),
		ByCategory: reportkit.Buckets(items,
			func(i Item) string { return i.Category },
			func(i Item) float64 { return i.Price * float64(i.StockQuantity) },
		),
		AveragePrice: reportkit.Average(items, func(i Item) float64 { return i.Price }),
	}, nil
}

func (s *Service) broadcast(ctx context.Context, evt ChangeEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.logger.Warn("inventory event publish failed", slog.String("op", evt.Op), slog.Any("error", err))
	}
}

func (s *Service) record(ctx context.Context, actorID int64, action string, itemID int64, meta map[string]any) {
	if s.activity == nil {
		return
	}
	entry := shared.ActivityEntry{
		ActorID:  actorID,
		Action:   action,
		Entity:   "inventory_item",
		EntityID: strconv.FormatInt(itemID, 10),
		Meta:     meta,
	}
	if err := s.activity.Record(ctx, entry); err != nil {
		s.logger.Warn("activity record failed", slog.String("action", action), slog.Any("error", err))
	}
}
