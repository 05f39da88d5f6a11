package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if err := c.Engagement.validate(); err != nil {
		return fmt.Errorf("engagement: %w", err)
	}
	return nil
}

func (e *EngagementConfig) validate() error {
	if e.InteractionListLimit <= 0 {
		return fmt.Errorf("interaction_list_limit must be > 0 (got %d)", e.InteractionListLimit)
	}
	if e.InteractionListMaxLimit < e.InteractionListLimit {
		return fmt.Errorf("interaction_list_max_limit (%d) must be >= interaction_list_limit (%d)",
			e.InteractionListMaxLimit, e.InteractionListLimit)
	}
	return nil
}
