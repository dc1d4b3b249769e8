package config

import "fmt"

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Persistence.DataDir == "" {
		return fmt.Errorf("persistence.data_dir must not be empty")
	}

	if c.Synthesis.DatasetSize < 1 {
		return fmt.Errorf("synthesis.dataset_size must be at least 1, got %d", c.Synthesis.DatasetSize)
	}

	for i, plan := range c.Catalog {
		if plan.Name == "" {
			return fmt.Errorf("catalog[%d]: name must not be empty", i)
		}
		if plan.RatePerKwh <= 0 {
			return fmt.Errorf("catalog[%d] (%s): rate_per_kwh must be positive", i, plan.Name)
		}
		if plan.FixedFee < 0 {
			return fmt.Errorf("catalog[%d] (%s): fixed_fee must not be negative", i, plan.Name)
		}
		if plan.UsageCapKwh < 0 {
			return fmt.Errorf("catalog[%d] (%s): usage_cap_kwh must not be negative", i, plan.Name)
		}
	}

	return nil
}
