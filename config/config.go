// Package config loads the optional YAML configuration that overrides the
// fixed Shopee export layout. Every field has a compiled-in default matching
// the current export format, so running without a config file is the normal
// case.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duwiantor-dev/price-shopee/services"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
}

// LayoutConfig mirrors services.Layout in YAML form.
type LayoutConfig struct {
	// DataStartRow is the first 1-based data row in mass-update files.
	DataStartRow int `yaml:"data_start_row"`
	// SKUColumn is the 1-based composite SKU column in mass-update files.
	SKUColumn int `yaml:"sku_column"`
	// PriceColumn is the 1-based price column in mass-update files.
	PriceColumn int `yaml:"price_column"`
	// HeaderScanRows bounds the header keyword scan for the pricelist and
	// addon files.
	HeaderScanRows int `yaml:"header_scan_rows"`
}

// Default returns the configuration for the current Shopee export format.
func Default() *Config {
	l := services.DefaultLayout()
	return &Config{
		Layout: LayoutConfig{
			DataStartRow:   l.DataStartRow,
			SKUColumn:      l.SKUColumn,
			PriceColumn:    l.PriceColumn,
			HeaderScanRows: l.HeaderScanRows,
		},
	}
}

// Load reads the configuration file at path. A missing file is not an error;
// the defaults are returned. Fields omitted from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	l := c.Layout
	if l.DataStartRow < 1 {
		return fmt.Errorf("layout.data_start_row must be at least 1, got %d", l.DataStartRow)
	}
	if l.SKUColumn < 1 {
		return fmt.Errorf("layout.sku_column must be at least 1, got %d", l.SKUColumn)
	}
	if l.PriceColumn < 1 {
		return fmt.Errorf("layout.price_column must be at least 1, got %d", l.PriceColumn)
	}
	if l.HeaderScanRows < 1 {
		return fmt.Errorf("layout.header_scan_rows must be at least 1, got %d", l.HeaderScanRows)
	}
	return nil
}

// ServiceLayout converts the configuration into the layout consumed by the
// reconciliation core.
func (c *Config) ServiceLayout() services.Layout {
	return services.Layout{
		DataStartRow:   c.Layout.DataStartRow,
		SKUColumn:      c.Layout.SKUColumn,
		PriceColumn:    c.Layout.PriceColumn,
		HeaderScanRows: c.Layout.HeaderScanRows,
	}
}
