// Package seed loads the static catalog the shop starts with. A seed that
// cannot be parsed or validated is fatal: there is no way to repair an
// inconsistent catalog at runtime.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

//go:embed default.yaml
var defaultSeed []byte

// DefaultSource names the embedded seed in error messages and logs.
const DefaultSource = "embedded:default.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is the on-disk layout of a seed file.
type Document struct {
	Category string   `yaml:"category" validate:"omitempty,category"`
	Items    []Record `yaml:"items" validate:"required,min=1,dive"`
}

// Record is one item as written in a seed file. Price stays textual until
// validation so that malformed amounts are reported with their field name.
type Record struct {
	ID          *int   `yaml:"id" validate:"required,min=0"`
	Name        string `yaml:"name" validate:"required"`
	Image       string `yaml:"image" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Price       string `yaml:"price" validate:"required,price"`
	Category    string `yaml:"category,omitempty" validate:"omitempty,category"`
}

// Seed is a validated seed catalog.
type Seed struct {
	Source   string
	Category catalog.Category
	Items    []catalog.Item
}

// Default returns the embedded seed catalog.
func Default() (*Seed, error) {
	return Parse(defaultSeed, DefaultSource)
}

// Load reads a seed file from disk. An empty path loads the embedded seed.
func Load(path string) (*Seed, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shoperrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates seed data. source is only used in errors.
func Parse(data []byte, source string) (*Seed, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, shoperrors.NewParseError(source, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&doc); err != nil {
		return nil, convertValidationError(err)
	}

	category := catalog.CategoryCookies
	if doc.Category != "" {
		category = catalog.Category(doc.Category)
	}

	items := make([]catalog.Item, 0, len(doc.Items))
	for i, rec := range doc.Items {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, shoperrors.NewValidationError(fieldForItem(i, "price"), err.Error(), err)
		}

		itemCategory := category
		if rec.Category != "" {
			itemCategory = catalog.Category(rec.Category)
		}

		items = append(items, catalog.Item{
			ID:          *rec.ID,
			Name:        rec.Name,
			Image:       rec.Image,
			Description: rec.Description,
			Price:       price,
			Category:    itemCategory,
		})
	}

	// catalog.New enforces id uniqueness; checking here keeps the error close
	// to the file that caused it.
	if _, err := catalog.New(items); err != nil {
		return nil, err
	}

	return &Seed{Source: source, Category: category, Items: items}, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
