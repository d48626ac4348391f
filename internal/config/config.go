package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/edakit/internal/analysis"
	"github.com/KaramelBytes/edakit/internal/logging"
	"github.com/KaramelBytes/edakit/internal/prepare"
)

// Global configuration structure.
type Global struct {
	// Profiling limits
	TopNullRows         int  `mapstructure:"top_null_rows" yaml:"top_null_rows"`
	NumericTopValues    int  `mapstructure:"numeric_top_values" yaml:"numeric_top_values"`
	CategoricalModes    int  `mapstructure:"categorical_modes" yaml:"categorical_modes"`
	ModesIncludeMissing bool `mapstructure:"modes_include_missing" yaml:"modes_include_missing"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// Preparation recipe; nil means prepare.DefaultRecipe.
	Recipe *prepare.Recipe `mapstructure:"recipe" yaml:"recipe,omitempty"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.edakit/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDAKIT")
	v.AutomaticEnv()

	def := analysis.DefaultOptions()
	v.SetDefault("top_null_rows", def.TopNullRows)
	v.SetDefault("numeric_top_values", def.NumericTopValues)
	v.SetDefault("categorical_modes", def.CategoricalModes)
	v.SetDefault("modes_include_missing", def.ModesIncludeMissing)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", logging.FormatConsole)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".edakit"), nil
}

// AnalysisOptions maps the profiling keys onto analysis.Options. Out and Logger keep
// their defaults.
func (c *Global) AnalysisOptions() analysis.Options {
	opt := analysis.DefaultOptions()
	opt.TopNullRows = c.TopNullRows
	opt.NumericTopValues = c.NumericTopValues
	opt.CategoricalModes = c.CategoricalModes
	opt.ModesIncludeMissing = c.ModesIncludeMissing
	return opt
}

// PrepareRecipe returns the configured recipe, or the default one.
func (c *Global) PrepareRecipe() prepare.Recipe {
	if c.Recipe == nil {
		return prepare.DefaultRecipe()
	}
	return *c.Recipe
}

// Logger builds the configured logger writing to w.
func (c *Global) Logger(w io.Writer) (zerolog.Logger, error) {
	return logging.New(c.LogLevel, c.LogFormat, w)
}
