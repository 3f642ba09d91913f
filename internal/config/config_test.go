package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cookieshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.Equal(t, catalog.CategoryCookies, cfg.CatalogCategory())
	require.Equal(t, theme.Light, cfg.ThemeName())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
shop_name: Gadget Store
category: Products
theme: dark
seed: ./products.yaml
log_level: debug
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "Gadget Store", cfg.ShopName)
	require.Equal(t, catalog.CategoryProducts, cfg.CatalogCategory())
	require.Equal(t, theme.Dark, cfg.ThemeName())
	require.Equal(t, "./products.yaml", cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "theme: dark\nlog_level: warn\n")
	t.Setenv("COOKIESHOP_LOG_LEVEL", "error")
	t.Setenv("COOKIESHOP_CATEGORY", "products")

	cfg, err := Load(LoadOptions{
		Path:      path,
		Overrides: map[string]any{KeyTheme: "light"},
	})
	require.NoError(t, err)
	require.Equal(t, theme.Light, cfg.ThemeName())
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, catalog.CategoryProducts, cfg.CatalogCategory())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		field     string
	}{
		{name: "theme", overrides: map[string]any{KeyTheme: "sepia"}, field: "theme"},
		{name: "category", overrides: map[string]any{KeyCategory: "cakes"}, field: "category"},
		{name: "log level", overrides: map[string]any{KeyLogLevel: "chatty"}, field: "log_level"},
		{name: "shop name", overrides: map[string]any{KeyShopName: "  "}, field: "shop_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(LoadOptions{Overrides: tt.overrides})
			var validationErr *shoperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestLoadReportsBrokenFile(t *testing.T) {
	path := writeConfig(t, "theme: [dark\n")

	_, err := Load(LoadOptions{Path: path})
	var parseErr *shoperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
}

func TestToSnake(t *testing.T) {
	t.Parallel()

	require.Equal(t, "log_level", toSnake("LogLevel"))
	require.Equal(t, "shop_name", toSnake("ShopName"))
	require.Equal(t, "theme", toSnake("Theme"))
}
