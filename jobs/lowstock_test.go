package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wheels-hub/wheels-hub/internal/inventory"
	"github.com/wheels-hub/wheels-hub/internal/shared"
)

type stubInventory struct {
	items []inventory.Item
}

func (s *stubInventory) List(_ context.Context) ([]inventory.Item, error) {
	return s.items, nil
}

func (s *stubInventory) Get(_ context.Context, _ int64) (inventory.Item, error) {
	return inventory.Item{}, shared.ErrNotFound
}

func (s *stubInventory) Insert(_ context.Context, _ inventory.CreateInput) (inventory.Item, error) {
	return inventory.Item{}, nil
}

func (s *stubInventory) UpdateStock(_ context.Context, _ int64, _ int) (inventory.Item, error) {
	return inventory.Item{}, shared.ErrNotFound
}

func (s *stubInventory) ResetAllStock(_ context.Context) (int64, error) {
	return 0, nil
}

type captureActivity struct {
	entries []shared.ActivityEntry
}

func (c *captureActivity) Record(_ context.Context, entry shared.ActivityEntry) error {
	c.entries = append(c.entries, entry)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLowStockScanFlagsWarningAndWorse(t *testing.T) {
	repo := &stubInventory{items: []inventory.Item{
		{ID: 1, Name: "Brake Pad Set", StockQuantity: 2, ReorderLevel: 10, CreatedAt: time.Now()},
		{ID: 2, Name: "Oil Filter", StockQuantity: 5, ReorderLevel: 10},
		{ID: 3, Name: "Spark Plug", StockQuantity: 40, ReorderLevel: 12},
	}}
	activity := &captureActivity{}
	job := NewLowStockScanJob(repo, activity, testLogger(), nil)

	task, err := NewLowStockScanTask("")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	require.Len(t, activity.entries, 2)
	require.Equal(t, "inventory:low_stock", activity.entries[0].Action)
	require.Equal(t, "1", activity.entries[0].EntityID)
	require.Equal(t, "Critical", activity.entries[0].Meta["band"])
	require.Equal(t, "Warning", activity.entries[1].Meta["band"])
}

func TestLowStockScanCriticalOnly(t *testing.T) {
	repo := &stubInventory{items: []inventory.Item{
		{ID: 1, Name: "Brake Pad Set", StockQuantity: 2, ReorderLevel: 10},
		{ID: 2, Name: "Oil Filter", StockQuantity: 5, ReorderLevel: 10},
	}}
	activity := &captureActivity{}
	job := NewLowStockScanJob(repo, activity, testLogger(), nil)

	task, err := NewLowStockScanTask("Critical")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	require.Len(t, activity.entries, 1)
	require.Equal(t, "1", activity.entries[0].EntityID)
}

func TestSendEmailTaskRoundTrip(t *testing.T) {
	task, err := NewSendEmailTask(SendEmailPayload{To: "ops@wheels.local", Subject: "hi", Body: "x"})
	require.NoError(t, err)
	require.Equal(t, TaskTypeSendEmail, task.Type())
	require.JSONEq(t, `{"to":"ops@wheels.local","subject":"hi","body":"x"}`, string(task.Payload()))
}
