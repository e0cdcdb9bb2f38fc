// Package resume detects technical skills in plain resume text.
package resume

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned for a catalog that fails validation.
var ErrInvalidCatalog = errors.New("invalid skill catalog")

//go:embed catalog.yaml
var defaultCatalog []byte

// Category is a named group of skills.
type Category struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills" validate:"min=1,dive,required"`
}

// Catalog lists the skills to look for.
type Catalog struct {
	Categories []Category `yaml:"categories" validate:"min=1,dive"`
	Priority   []string   `yaml:"priority" validate:"dive,required"`
}

var validate = validator.New()

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &c, nil
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = ParseCatalog(defaultCatalog)
	})
	return defaultCat, defaultErr
}
