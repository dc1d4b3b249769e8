package config

import "github.com/wattwise/wattwise/internal/energy"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Synthesis   SynthesisConfig   `yaml:"synthesis"`
	Catalog     []energy.Plan     `yaml:"catalog"`
}

// ServerConfig configures the metrics/status HTTP listener used by the
// serve command.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PersistenceConfig struct {
	DataDir string `yaml:"data_dir"`
}

// SynthesisConfig configures corpus generation.
type SynthesisConfig struct {
	// DatasetSize is the default corpus size for a training run.
	DatasetSize int `yaml:"dataset_size"`

	// Seed fixes the random generator for reproducible corpora.
	// Zero selects a time-based seed.
	Seed int64 `yaml:"seed"`
}

// PlanCatalog returns the configured catalog, or the default four
// plans when none is configured.
func (c *Config) PlanCatalog() []energy.Plan {
	return energy.ValidCatalog(c.Catalog)
}
