package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"olist/internal/dataset"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Datasets maps each dataset to its raw file name under input_dir.
type Datasets struct {
	Orders      string `toml:"orders"`
	OrderItems  string `toml:"order_items"`
	Customers   string `toml:"customers"`
	Products    string `toml:"products"`
	Sellers     string `toml:"sellers"`
	Payments    string `toml:"payments"`
	Reviews     string `toml:"reviews"`
	Geolocation string `toml:"geolocation"`
	Translation string `toml:"product_translation"`
}

// Cleaning contains tunable data-quality thresholds.
type Cleaning struct {
	ValidOrderStatuses []string `toml:"valid_order_statuses"`
	MinReviewScore     int      `toml:"min_review_score"`
	MaxReviewScore     int      `toml:"max_review_score"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the pipeline.
//
// Configuration sections:
//   - Paths: raw input directory, cleaned output directory, log directory
//   - Datasets: raw CSV file names per dataset
//   - Cleaning: valid order statuses and review score bounds
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Datasets Datasets `toml:"datasets"`
	Cleaning Cleaning `toml:"cleaning"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/olist/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/olist/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("olist.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// InputPath returns the raw CSV path for the named dataset.
func (c *Config) InputPath(name string) string {
	return filepath.Join(c.Paths.InputDir, c.fileFor(name))
}

// CleanedPath returns the cleaned CSV output path for the named dataset.
func (c *Config) CleanedPath(name string) string {
	return filepath.Join(c.Paths.OutputDir, "cleaned_"+name+".csv")
}

// MasterPath returns the output path for the merged master dataset.
func (c *Config) MasterPath() string {
	return filepath.Join(c.Paths.OutputDir, "master_dataset.csv")
}

// ReportDBPath returns the run-history database path.
func (c *Config) ReportDBPath() string {
	return filepath.Join(c.Paths.LogDir, "report.db")
}

// LockPath returns the run lock file path.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "olist.lock")
}

// ValidStatusSet returns the valid order statuses as a lookup set.
func (c *Config) ValidStatusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Cleaning.ValidOrderStatuses))
	for _, status := range c.Cleaning.ValidOrderStatuses {
		set[status] = struct{}{}
	}
	return set
}

func (c *Config) fileFor(name string) string {
	switch name {
	case dataset.Orders:
		return c.Datasets.Orders
	case dataset.OrderItems:
		return c.Datasets.OrderItems
	case dataset.Customers:
		return c.Datasets.Customers
	case dataset.Products:
		return c.Datasets.Products
	case dataset.Sellers:
		return c.Datasets.Sellers
	case dataset.Payments:
		return c.Datasets.Payments
	case dataset.Reviews:
		return c.Datasets.Reviews
	case dataset.Geolocation:
		return c.Datasets.Geolocation
	case dataset.Translation:
		return c.Datasets.Translation
	default:
		return name + ".csv"
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
