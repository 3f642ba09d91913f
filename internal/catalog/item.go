package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category tags the kind of catalog an item belongs to.
type Category string

const (
	CategoryCookies  Category = "cookies"
	CategoryProducts Category = "products"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryCookies, CategoryProducts:
		return true
	default:
		return false
	}
}

// Title returns the capitalised category name used in navigation labels.
func (c Category) Title() string {
	name := string(c)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Singular returns the category name for a single item ("cookie", "product").
func (c Category) Singular() string {
	return strings.TrimSuffix(string(c), "s")
}

// ParseCategory converts user input into a Category.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (expected cookies or products)", value)
	}
	return c, nil
}

// Item is a single catalog entry. Cookies and products share this shape and are
// distinguished by Category.
type Item struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Image       string          `json:"image" yaml:"image"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Category    Category        `json:"category" yaml:"category"`
}

// currencySuffix is appended to every displayed price.
const currencySuffix = "KD"

// DisplayPrice renders the price the way the shop front shows it, e.g. "3.5 KD".
func (i Item) DisplayPrice() string {
	return FormatPrice(i.Price)
}

// FormatPrice renders a price with the shop currency suffix.
func FormatPrice(price decimal.Decimal) string {
	return fmt.Sprintf("%s %s", price.String(), currencySuffix)
}
