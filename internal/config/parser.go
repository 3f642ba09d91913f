package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COOKIESHOP"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadOptions controls where configuration comes from. Later sources win:
// defaults, then the config file, then environment, then Overrides.
type LoadOptions struct {
	Path      string
	Overrides map[string]any
}

// Load builds and validates the session configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyShopName, defaults.ShopName)
	v.SetDefault(KeyCategory, defaults.Category)
	v.SetDefault(KeyTheme, defaults.Theme)
	v.SetDefault(KeySeed, defaults.Seed)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogFile, defaults.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, shoperrors.NewParseError(opts.Path, extractLine(err), err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, shoperrors.NewParseError(opts.Path, 0, err)
	}

	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func normalize(cfg *Config) {
	cfg.Category = strings.ToLower(strings.TrimSpace(cfg.Category))
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.ShopName = strings.TrimSpace(cfg.ShopName)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
