package config

const (
	defaultInputDir       = "~/olist/raw"
	defaultOutputDir      = "~/olist/cleaned_data"
	defaultLogDir         = "~/.local/share/olist/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultMinReviewScore = 1
	defaultMaxReviewScore = 5
)

// defaultValidOrderStatuses mirrors the status whitelist of the upstream
// Olist preparation pipeline. Orders in other states (e.g. unavailable,
// approved) are dropped during cleaning.
func defaultValidOrderStatuses() []string {
	return []string{"delivered", "shipped", "processing", "canceled", "invoiced", "created"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Datasets: Datasets{
			Orders:      "olist_orders_dataset.csv",
			OrderItems:  "olist_order_items_dataset.csv",
			Customers:   "olist_customers_dataset.csv",
			Products:    "olist_products_dataset.csv",
			Sellers:     "olist_sellers_dataset.csv",
			Payments:    "olist_order_payments_dataset.csv",
			Reviews:     "olist_order_reviews_dataset.csv",
			Geolocation: "olist_geolocation_dataset.csv",
			Translation: "product_category_name_translation.csv",
		},
		Cleaning: Cleaning{
			ValidOrderStatuses: defaultValidOrderStatuses(),
			MinReviewScore:     defaultMinReviewScore,
			MaxReviewScore:     defaultMaxReviewScore,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
