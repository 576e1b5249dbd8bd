package merge

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"olist/internal/config"
	"olist/internal/dataset"
	"olist/internal/logging"
	"olist/internal/services"
	"olist/internal/stage"
)

const stageName = "merge-master"

// requiredTables must all be cleaned before the merge can run.
var requiredTables = []string{
	dataset.Orders, dataset.Customers, dataset.OrderItems, dataset.Products,
	dataset.Sellers, dataset.Payments, dataset.Reviews, dataset.Geolocation,
}

// MasterStage joins the cleaned tables into the master dataset and writes
// master_dataset.csv.
type MasterStage struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewMaster constructs the merge stage.
func NewMaster(cfg *config.Config, logger *slog.Logger) *MasterStage {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MasterStage{cfg: cfg, logger: logger}
}

// Name returns the stage name.
func (s *MasterStage) Name() string { return stageName }

// Prepare verifies every cleaned table the merge depends on is in the batch.
func (s *MasterStage) Prepare(_ context.Context, batch *dataset.Batch) error {
	for _, name := range requiredTables {
		if batch.Table(name) == nil {
			return services.Wrap(services.ErrValidation, stageName, "prepare", name+" table not cleaned", nil)
		}
	}
	return nil
}

// HealthCheck always reports ready; the merge consumes in-memory tables.
func (s *MasterStage) HealthCheck(context.Context) stage.Health {
	return stage.Healthy(stageName)
}

// Execute builds the master dataset.
func (s *MasterStage) Execute(ctx context.Context, batch *dataset.Batch) error {
	start := time.Now()
	logger := logging.WithContext(ctx, s.logger)

	master := batch.Table(dataset.Orders)
	steps := []struct {
		name  string
		right func() (*dataset.Table, error)
		key   string
	}{
		{"customers", func() (*dataset.Table, error) { return batch.Table(dataset.Customers), nil }, "customer_id"},
		{"order items", func() (*dataset.Table, error) { return batch.Table(dataset.OrderItems), nil }, "order_id"},
		{"products", func() (*dataset.Table, error) { return batch.Table(dataset.Products), nil }, "product_id"},
		{"sellers", func() (*dataset.Table, error) { return batch.Table(dataset.Sellers), nil }, "seller_id"},
		{"payments", func() (*dataset.Table, error) { return aggregatePayments(batch.Table(dataset.Payments)) }, "order_id"},
		{"reviews", func() (*dataset.Table, error) { return aggregateReviews(batch.Table(dataset.Reviews)) }, "order_id"},
		{"geolocation", func() (*dataset.Table, error) { return customerGeolocation(batch.Table(dataset.Geolocation)) }, "customer_zip_code_prefix"},
	}
	for _, step := range steps {
		right, err := step.right()
		if err != nil {
			return services.Wrap(services.ErrValidation, stageName, "aggregate "+step.name, "", err)
		}
		master, err = leftJoin(master, right, step.key)
		if err != nil {
			return services.Wrap(services.ErrValidation, stageName, "join "+step.name, "", err)
		}
		logger.Debug("merge step applied",
			logging.String("step", step.name),
			logging.Int("rows", master.Len()),
			logging.Int("columns", master.ColumnCount()),
		)
	}

	if err := addDerivedColumns(master); err != nil {
		return services.Wrap(services.ErrValidation, stageName, "derive columns", "", err)
	}

	batch.Master = master
	if err := master.Save(s.cfg.MasterPath()); err != nil {
		return services.Wrap(services.ErrTransient, stageName, "export", "master dataset", err)
	}

	logger.Info("master dataset created",
		logging.Int("rows", master.Len()),
		logging.Int("columns", master.ColumnCount()),
		logging.Duration("duration", time.Since(start)),
	)
	return nil
}

// customerGeolocation renames the geolocation columns into the customer
// namespace so the zip-prefix join lands beside the other customer fields.
func customerGeolocation(geo *dataset.Table) (*dataset.Table, error) {
	renames := map[string]string{
		"geolocation_zip_code_prefix": "customer_zip_code_prefix",
		"geolocation_lat":             "customer_lat",
		"geolocation_lng":             "customer_lng",
		"geolocation_city":            "customer_geo_city",
		"geolocation_state":           "customer_geo_state",
	}
	columns := geo.Columns()
	renamed := make([]string, len(columns))
	for i, col := range columns {
		if newName, ok := renames[col]; ok {
			renamed[i] = newName
		} else {
			renamed[i] = col
		}
	}
	out, err := dataset.New("customer_geolocation", renamed)
	if err != nil {
		return nil, err
	}
	for row := 0; row < geo.Len(); row++ {
		cells := geo.Row(row)
		copied := make([]string, len(cells))
		copy(copied, cells)
		if err := out.Append(copied); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// addDerivedColumns appends order_item_total (price + freight) and
// delivery_days (purchase to customer delivery, floored to whole days, so a
// delivery stamped before the purchase goes negative). Rows missing either
// operand keep an empty cell.
func addDerivedColumns(master *dataset.Table) error {
	if err := master.AddColumn("order_item_total", ""); err != nil {
		return err
	}
	if err := master.AddColumn("delivery_days", ""); err != nil {
		return err
	}
	for row := 0; row < master.Len(); row++ {
		price, okPrice := parseFloat(master.Value(row, "price"))
		freight, okFreight := parseFloat(master.Value(row, "freight_value"))
		if okPrice && okFreight {
			master.Set(row, "order_item_total", formatMoney(price+freight))
		}

		purchased, okPurchased := parseTimestamp(master.Value(row, "order_purchase_timestamp"))
		delivered, okDelivered := parseTimestamp(master.Value(row, "order_delivered_customer_date"))
		if okPurchased && okDelivered {
			days := int(math.Floor(delivered.Sub(purchased).Hours() / 24))
			master.Set(row, "delivery_days", strconv.Itoa(days))
		}
	}
	return nil
}

func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
