package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"modelgen/internal/gen"
	"modelgen/primitive"
	"modelgen/utils"
)

// MaxWorkers caps generator.workers.
const MaxWorkers = 256

// Config is the modelgen configuration file (modelgen.toml or modelgen.yaml).
type Config struct {
	Output    OutputConfig    `mapstructure:"output" toml:"output"`
	Java      JavaConfig      `mapstructure:"java" toml:"java"`
	Generator GeneratorConfig `mapstructure:"generator" toml:"generator"`
	Log       LogConfig       `mapstructure:"log" toml:"log"`

	// Source is the file the configuration was read from, if any.
	Source string `mapstructure:"-" toml:"-"`
}

type OutputConfig struct {
	Root      string `mapstructure:"root" toml:"root"`
	Extension string `mapstructure:"extension" toml:"extension"`
}

type JavaConfig struct {
	OrderedCollection   string `mapstructure:"ordered_collection" toml:"ordered_collection"`
	UnorderedCollection string `mapstructure:"unordered_collection" toml:"unordered_collection"`
	// Types overrides the Java text of primitive symbols, e.g. date = "java.time.Instant".
	Types map[string]string `mapstructure:"types" toml:"types,omitempty"`
}

type GeneratorConfig struct {
	// Workers bounds concurrent unit planning; 0 means one per CPU.
	Workers                  int  `mapstructure:"workers" toml:"workers"`
	SkipSameNamespaceImports bool `mapstructure:"skip_same_namespace_imports" toml:"skip_same_namespace_imports"`
}

type LogConfig struct {
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"`
	JSON      bool `mapstructure:"json" toml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	def := gen.DefaultConfig()

	return &Config{
		Output: OutputConfig{
			Root:      "generated",
			Extension: def.Extension,
		},
		Java: JavaConfig{
			OrderedCollection:   def.OrderedCollection,
			UnorderedCollection: def.UnorderedCollection,
		},
	}
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.Output.Root == "" {
		return errors.New("output.root must not be empty")
	}

	if !strings.HasPrefix(c.Output.Extension, ".") || len(c.Output.Extension) < 2 {
		return errors.Newf("output.extension %q must start with a dot", c.Output.Extension)
	}

	if c.Java.OrderedCollection == "" || c.Java.UnorderedCollection == "" {
		return errors.New("java.ordered_collection and java.unordered_collection must not be empty")
	}

	if !utils.IsInRange(0, c.Generator.Workers, MaxWorkers) {
		return errors.Newf("generator.workers must be between 0 and %d, got %d", MaxWorkers, c.Generator.Workers)
	}

	if _, err := primitive.NewTable(c.Java.Types); err != nil {
		return errors.Wrap(err, "java.types")
	}

	return nil
}

// GenConfig converts the configuration into generator settings.
func (c *Config) GenConfig() (gen.Config, error) {
	table, err := primitive.NewTable(c.Java.Types)
	if err != nil {
		return gen.Config{}, errors.Wrap(err, "java.types")
	}

	cfg := gen.DefaultConfig()
	cfg.Extension = c.Output.Extension
	cfg.OrderedCollection = c.Java.OrderedCollection
	cfg.UnorderedCollection = c.Java.UnorderedCollection
	cfg.Types = table
	cfg.Workers = utils.Clamp(0, c.Generator.Workers, MaxWorkers)
	cfg.SkipSameNamespaceImports = c.Generator.SkipSameNamespaceImports

	return cfg, nil
}
