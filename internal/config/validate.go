package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDatasets(); err != nil {
		return err
	}
	if err := c.validateCleaning(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.InputDir == "" {
		return errors.New("paths.input_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.OutputDir == c.Paths.InputDir {
		return errors.New("paths.output_dir must differ from paths.input_dir")
	}
	return nil
}

func (c *Config) validateDatasets() error {
	names := map[string]string{
		"datasets.orders":              c.Datasets.Orders,
		"datasets.order_items":         c.Datasets.OrderItems,
		"datasets.customers":           c.Datasets.Customers,
		"datasets.products":            c.Datasets.Products,
		"datasets.sellers":             c.Datasets.Sellers,
		"datasets.payments":            c.Datasets.Payments,
		"datasets.reviews":             c.Datasets.Reviews,
		"datasets.geolocation":         c.Datasets.Geolocation,
		"datasets.product_translation": c.Datasets.Translation,
	}
	for key, value := range names {
		if value == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	return nil
}

func (c *Config) validateCleaning() error {
	if len(c.Cleaning.ValidOrderStatuses) == 0 {
		return errors.New("cleaning.valid_order_statuses must not be empty")
	}
	if c.Cleaning.MinReviewScore > c.Cleaning.MaxReviewScore {
		return errors.New("cleaning.min_review_score must not exceed cleaning.max_review_score")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
