package dataset

import "time"

// Canonical dataset names. These double as keys into Batch.Tables and as the
// suffix of the exported cleaned_<name>.csv files.
const (
	Orders      = "orders"
	OrderItems  = "order_items"
	Customers   = "customers"
	Products    = "products"
	Sellers     = "sellers"
	Payments    = "payments"
	Reviews     = "reviews"
	Geolocation = "geolocation"
	Translation = "product_translation"
)

// Names returns the dataset names in canonical load order.
func Names() []string {
	return []string{
		Orders, OrderItems, Customers, Products, Sellers,
		Payments, Reviews, Geolocation, Translation,
	}
}

// Outcome records what a cleaning stage did to one dataset.
type Outcome struct {
	Dataset           string
	RowsIn            int
	RowsOut           int
	DroppedMalformed  int
	DroppedDuplicates int
	DroppedInvalid    int
	RepairedCells     int
	ImputedCells      int
	Duration          time.Duration
}

// Batch carries the state of one pipeline run between stages.
type Batch struct {
	RunID    string
	Tables   map[string]*Table
	Master   *Table
	Outcomes map[string]Outcome
}

// NewBatch constructs an empty batch for the given run.
func NewBatch(runID string) *Batch {
	return &Batch{
		RunID:    runID,
		Tables:   make(map[string]*Table),
		Outcomes: make(map[string]Outcome),
	}
}

// Table returns the named table, or nil when it has not been loaded.
func (b *Batch) Table(name string) *Table {
	if b == nil {
		return nil
	}
	return b.Tables[name]
}

// SetOutcome stores the outcome for a dataset.
func (b *Batch) SetOutcome(o Outcome) {
	b.Outcomes[o.Dataset] = o
}
