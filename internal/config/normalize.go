package config

import "strings"

func (c *Config) normalize() error {
	for _, field := range []*string{&c.Paths.InputDir, &c.Paths.OutputDir, &c.Paths.LogDir} {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	for _, field := range []*string{
		&c.Datasets.Orders, &c.Datasets.OrderItems, &c.Datasets.Customers,
		&c.Datasets.Products, &c.Datasets.Sellers, &c.Datasets.Payments,
		&c.Datasets.Reviews, &c.Datasets.Geolocation, &c.Datasets.Translation,
	} {
		*field = strings.TrimSpace(*field)
	}

	statuses := make([]string, 0, len(c.Cleaning.ValidOrderStatuses))
	for _, status := range c.Cleaning.ValidOrderStatuses {
		status = strings.ToLower(strings.TrimSpace(status))
		if status != "" {
			statuses = append(statuses, status)
		}
	}
	c.Cleaning.ValidOrderStatuses = statuses

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
