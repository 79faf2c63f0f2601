package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.ResetTokenSecret) < 32 {
		return fmt.Errorf("auth.reset_token_secret must be at least 32 characters (got %d)", len(c.Auth.ResetTokenSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.PayPal.validate(); err != nil {
		return fmt.Errorf("paypal: %w", err)
	}

	if err := c.Settlement.validate(); err != nil {
		return fmt.Errorf("settlement: %w", err)
	}

	if err := c.Reconcile.validate(); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	return nil
}

func (p *PayPalConfig) validate() error {
	switch p.Mode {
	case "sandbox", "live":
	default:
		return fmt.Errorf("mode must be sandbox or live (got %q)", p.Mode)
	}
	if len(p.Currency) != 3 || strings.ToUpper(p.Currency) != p.Currency {
		return fmt.Errorf("currency must be a 3-letter upper-case code (got %q)", p.Currency)
	}
	return nil
}

func (s *SettlementConfig) validate() error {
	if s.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be > 0 (got %v)", s.StoreTimeout)
	}
	if s.ConflictRetries < 0 {
		return fmt.Errorf("conflict_retries must be >= 0 (got %d)", s.ConflictRetries)
	}
	if s.StoreRetries < 0 {
		return fmt.Errorf("store_retries must be >= 0 (got %d)", s.StoreRetries)
	}
	return nil
}

func (r *ReconcileConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if strings.TrimSpace(r.JournalPath) == "" {
		return fmt.Errorf("journal_path is required when reconciliation is enabled")
	}
	if r.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", r.BatchSize)
	}
	if _, err := ParseSchedule(r.Schedule); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}

// ParseSchedule parses a standard cron expression or a descriptor such as "@every 5m".
func ParseSchedule(spec string) (cron.Schedule, error) {
	s, err := cron.ParseStandard(strings.TrimSpace(spec))
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}
