package taxonomy

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ressKim-io/text-haptics/api-service/internal/domain/entity"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Default returns the built-in taxonomy for mode
func Default(mode entity.TaxonomyMode) (*entity.Taxonomy, error) {
	data, err := defaults.ReadFile("defaults/" + string(mode) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no built-in taxonomy for mode %q", mode)
	}
	return Parse(data)
}

// LoadFile reads and validates a taxonomy YAML file
func LoadFile(path string) (*entity.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a taxonomy document
func Parse(data []byte) (*entity.Taxonomy, error) {
	var t entity.Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load returns the taxonomy at path, or the built-in one for mode when path is empty
func Load(path, mode string) (*entity.Taxonomy, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Default(entity.TaxonomyMode(mode))
}
