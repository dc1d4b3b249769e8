package config

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Persistence: PersistenceConfig{
			DataDir: "/var/lib/wattwise",
		},
		Synthesis: SynthesisConfig{
			DatasetSize: 1000,
			Seed:        0,
		},
		// Catalog left empty: the default four-plan catalog applies.
	}
}
