// Package config loads mcuimport settings from mcuimport.yaml, MCUIMPORT_*
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	mcuschema "github.com/reoring/mcuschema"
	"github.com/reoring/mcuschema/logger"
)

// Keys understood in the config file, the environment and bound flags.
const (
	KeyDataDir   = "data_dir"
	KeySubdir    = "subdir"
	KeyExtension = "extension"
	KeyStrict    = "strict"
	KeyLogLevel  = "log_level"
	KeyMaxDepth  = "max_depth"
	KeyMaxBytes  = "max_bytes"
)

// Config holds the resolved importer settings.
type Config struct {
	DataDir   string
	Subdir    string
	Extension string
	Strict    bool
	LogLevel  logger.Level
	MaxDepth  int
	MaxBytes  int64

	// File is the config file that was read, empty when none was found.
	File string
}

// New returns a viper instance with defaults and environment overrides set.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataDir, "3dparty/st-open-pins")
	v.SetDefault(KeySubdir, "mcu")
	v.SetDefault(KeyExtension, ".xml")
	v.SetDefault(KeyStrict, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMaxDepth, 64)
	v.SetDefault(KeyMaxBytes, 0)

	v.SetEnvPrefix("MCUIMPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and resolves every key. An explicit file must
// exist; otherwise mcuimport.yaml is searched in the working directory and
// $HOME/.config/mcuimport and may be absent.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("mcuimport")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mcuimport"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	lvl, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		DataDir:   v.GetString(KeyDataDir),
		Subdir:    v.GetString(KeySubdir),
		Extension: v.GetString(KeyExtension),
		Strict:    v.GetBool(KeyStrict),
		LogLevel:  lvl,
		MaxDepth:  v.GetInt(KeyMaxDepth),
		MaxBytes:  v.GetInt64(KeyMaxBytes),
		File:      v.ConfigFileUsed(),
	}
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", KeyMaxDepth)
	}
	if cfg.MaxBytes < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", KeyMaxBytes)
	}
	return cfg, nil
}

// Dir returns the directory scanned for description files.
func (c Config) Dir() string { return filepath.Join(c.DataDir, c.Subdir) }

// BuildOpt returns the record build options for this configuration.
func (c Config) BuildOpt(l mcuschema.Logger) mcuschema.BuildOpt {
	mode := mcuschema.ModeStrict
	if !c.Strict {
		mode = mcuschema.ModePermissive
	}
	return mcuschema.BuildOpt{Mode: mode, Logger: l}
}

// DocumentOpt returns the XML reading limits for this configuration. Outside
// strict mode duplicate attributes are logged instead of rejected.
func (c Config) DocumentOpt(l mcuschema.Logger) mcuschema.DocumentOpt {
	opt := mcuschema.DocumentOpt{MaxDepth: c.MaxDepth, MaxBytes: c.MaxBytes}
	if !c.Strict {
		opt.OnDuplicateAttr = mcuschema.Warn
		opt.Logger = l
	}
	return opt
}
