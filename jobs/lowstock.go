package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hibiken/asynq"

	"github.com/wheels-hub/wheels-hub/internal/inventory"
	"github.com/wheels-hub/wheels-hub/internal/reportkit"
	"github.com/wheels-hub/wheels-hub/internal/shared"
	jobmetrics "github.com/wheels-hub/wheels-hub/internal/jobs"
)

// LowStockPayload scopes a stock sweep.
type LowStockPayload struct {
	// Band limits findings to this severity and worse; empty means Warning.
	Band string `json:"band,omitempty"`
}

// NewLowStockScanTask constructs the nightly sweep task.
func NewLowStockScanTask(band string) (*asynq.Task, error) {
	data, err := json.Marshal(LowStockPayload{Band: band})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeLowStockScan, data), nil
}

// ActivityPort records sweep findings in the activity log.
type ActivityPort interface {
	Record(ctx context.Context, entry shared.ActivityEntry) error
}

// LowStockScanJob walks the inventory and records an activity entry for each
// item at or below the requested band.
type LowStockScanJob struct {
	repo     inventory.Repository
	activity ActivityPort
	logger   *slog.Logger
	metrics  *jobmetrics.Metrics
}

// NewLowStockScanJob constructs a LowStockScanJob.
func NewLowStockScanJob(repo inventory.Repository, activity ActivityPort, logger *slog.Logger, metrics *jobmetrics.Metrics) *LowStockScanJob {
	return &LowStockScanJob{repo: repo, activity: activity, logger: logger, metrics: metrics}
}

// Handle processes TaskTypeLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track("low_stock_scan")

	var payload LowStockPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(asynq.SkipRetry)
	}
	floor := reportkit.BandWarning
	if payload.Band != "" {
		floor = reportkit.Band(payload.Band)
	}

	items, err := j.repo.List(ctx)
	if err != nil {
		return tracker.End(fmt.Errorf("jobs: list inventory: %w", err))
	}

	var flagged int
	for _, item := range items {
		band := item.StockBand()
		if band.Rank() > floor.Rank() {
			continue
		}
		flagged++
		j.metrics.AddLowStock(string(band), 1)
		err := j.activity.Record(ctx, shared.ActivityEntry{
			Action:   "inventory:low_stock",
			Entity:   "inventory_item",
			EntityID: strconv.FormatInt(item.ID, 10),
			Meta: map[string]any{
				"name":          item.Name,
				"band":          string(band),
				"quantity":      item.StockQuantity,
				"reorder_level": item.ReorderLevel,
			},
		})
		if err != nil {
			j.logger.Warn("low stock record failed",
				slog.Int64("item_id", item.ID), slog.Any("error", err))
		}
	}
	j.logger.Info("low stock scan finished",
		slog.Int("scanned", len(items)), slog.Int("flagged", flagged))
	return tracker.End(nil)
}
