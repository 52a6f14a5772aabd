package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"anketa/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig resolves and loads the configuration for a command.
func loadConfig(configPath string) (config.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(resolved)
}

// selectedVariants maps positional ids to config variants; no ids selects
// every variant.
func selectedVariants(cfg config.Config, ids []string) ([]config.Variant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	variants := make([]config.Variant, 0, len(ids))
	for _, id := range ids {
		variant, ok := cfg.VariantByID(strings.TrimSpace(id))
		if !ok {
			return nil, fmt.Errorf("unknown questionnaire %q", id)
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
