package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadCatalogFile reads a catalog from path. Files ending in .yaml or .yml are
// decoded as YAML, anything else is read with Parse. The error is only set
// when nothing could be read; dropped blocks are returned in the slice.
func LoadCatalogFile(path string) (*CatalogConfig, []error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var cfg CatalogConfig
		if err := loadYAML(path, &cfg); err != nil {
			return nil, nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		return &cfg, nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	cfg, errs := Parse(bytes.NewReader(b))
	return cfg, errs, nil
}
