package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	seximal "github.com/shabbyrobe/go-seximal"
)

const (
	configFileName = "seximal"
	configFileType = "yaml"
	envPrefix      = "SEXIMAL"

	cfgKeyKind       = "kind"
	cfgKeyFracDigits = "frac_digits"
	cfgKeyVerbose    = "verbose"

	defaultKind = "si144"
)

// Config is the resolved configuration shared by every command. Each value
// comes from the first of: command line flag, SEXIMAL_* environment variable,
// seximal.yaml in the config directory, built-in default.
type Config struct {
	Kind seximal.Kind

	// FracDigits overrides the fractional digit budget of float output. Zero
	// keeps the kind's own budget.
	FracDigits int

	Verbose bool
}

// loadConfig prepares a viper instance with defaults, environment lookup and,
// when configDir is set, seximal.yaml from that directory. A missing file is
// not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyKind, defaultKind)
	v.SetDefault(cfgKeyFracDigits, 0)
	v.SetDefault(cfgKeyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configDir == "" {
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// decodeConfig reads the resolved values out of v. Environment and file
// values arrive as strings or YAML scalars, so they go through cast.
func decodeConfig(v *viper.Viper) (Config, error) {
	var cfg Config

	kindName, err := cast.ToStringE(v.Get(cfgKeyKind))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgKeyKind, err)
	}
	if cfg.Kind, err = seximal.ParseKind(kindName); err != nil {
		return cfg, err
	}

	if cfg.FracDigits, err = cast.ToIntE(v.Get(cfgKeyFracDigits)); err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgKeyFracDigits, err)
	}
	if cfg.FracDigits < 0 {
		return cfg, fmt.Errorf("%s: must not be negative, got %d", cfgKeyFracDigits, cfg.FracDigits)
	}

	if cfg.Verbose, err = cast.ToBoolE(v.Get(cfgKeyVerbose)); err != nil {
		return cfg, fmt.Errorf("%s: %w", cfgKeyVerbose, err)
	}
	return cfg, nil
}
