package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MODELGEN_OUTPUT_ROOT.
const EnvPrefix = "MODELGEN"

// FileNames are the project config names searched for, in preference order.
var FileNames = []string{"modelgen.toml", "modelgen.yaml", "modelgen.yml"}

// SetDefaults registers every key with its default value. Keys must be known
// to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("output.root", def.Output.Root)
	v.SetDefault("output.extension", def.Output.Extension)

	v.SetDefault("java.ordered_collection", def.Java.OrderedCollection)
	v.SetDefault("java.unordered_collection", def.Java.UnorderedCollection)
	v.SetDefault("java.types", map[string]string{})

	v.SetDefault("generator.workers", def.Generator.Workers)
	v.SetDefault("generator.skip_same_namespace_imports", def.Generator.SkipSameNamespaceImports)

	v.SetDefault("log.verbosity", def.Log.Verbosity)
	v.SetDefault("log.json", def.Log.JSON)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads configuration from path, or from the nearest project config
// found walking up from the working directory when path is empty.
// Precedence (lowest to highest): defaults < file < environment.
func Load(path string) (*Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = FindProjectConfig(wd)
		}
	}

	v := New()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHintf(err, "check %s", describeSource(path))
	}

	return &cfg, nil
}

func describeSource(path string) string {
	if path == "" {
		return EnvPrefix + "_* environment variables"
	}

	return path + " and " + EnvPrefix + "_* environment variables"
}

// FindProjectConfig walks up from dir looking for one of FileNames.
// Returns "" when none is found.
func FindProjectConfig(dir string) string {
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// WriteDefault writes the default configuration as TOML. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("config file %s already exists", path),
			"use --force to overwrite it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating config file %s", path)
	}

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "encoding default config")
	}

	return errors.Wrapf(f.Close(), "closing config file %s", path)
}
