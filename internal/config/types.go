package config

import (
	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// Config holds the settings of a shop session.
type Config struct {
	ShopName string `mapstructure:"shop_name" validate:"required,max=60"`
	Category string `mapstructure:"category" validate:"required,category"`
	Theme    string `mapstructure:"theme" validate:"required,theme_name"`
	Seed     string `mapstructure:"seed"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error"`
	LogFile  string `mapstructure:"log_file"`
}

// Keys understood by Load. Environment variables use the COOKIESHOP_ prefix and
// upper case, e.g. COOKIESHOP_THEME.
const (
	KeyShopName = "shop_name"
	KeyCategory = "category"
	KeyTheme    = "theme"
	KeySeed     = "seed"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		ShopName: "Cookie Shop",
		Category: string(catalog.CategoryCookies),
		Theme:    string(theme.Light),
		LogLevel: "info",
	}
}

// CatalogCategory returns the configured catalog section.
func (c Config) CatalogCategory() catalog.Category {
	return catalog.Category(c.Category)
}

// ThemeName returns the configured initial theme.
func (c Config) ThemeName() theme.Name {
	return theme.Name(c.Theme)
}
