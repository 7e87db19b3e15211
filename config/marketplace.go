package config

import "time"

// MarketplaceConfig holds lifecycle policy and listing limits.
type MarketplaceConfig struct {
	// WithdrawWindow is how long after placement a pending bid may be withdrawn.
	// A bid exactly WithdrawWindow old is still withdrawable.
	WithdrawWindow time.Duration `env:"MARKETPLACE_WITHDRAW_WINDOW" envDefault:"24h"`

	JobsDefaultLimit int `env:"MARKETPLACE_JOBS_DEFAULT_LIMIT" envDefault:"10"`
	JobsMaxLimit     int `env:"MARKETPLACE_JOBS_MAX_LIMIT"     envDefault:"50"`

	// StudentFriendlyMax is the longest job duration tagged student-friendly.
	StudentFriendlyMax time.Duration `env:"MARKETPLACE_STUDENT_FRIENDLY_MAX" envDefault:"4h"`
	// UrgentWithin is the horizon inside which a scheduled job is tagged urgent.
	UrgentWithin time.Duration `env:"MARKETPLACE_URGENT_WITHIN" envDefault:"48h"`

	// LocationsFile optionally replaces the embedded location dataset.
	LocationsFile string `env:"MARKETPLACE_LOCATIONS_FILE"`
}

// Sanitize applies guardrails to marketplace configuration values.
func (c *MarketplaceConfig) Sanitize() {
	if c.WithdrawWindow <= 0 {
		c.WithdrawWindow = 24 * time.Hour
	}
	if c.JobsMaxLimit < 1 {
		c.JobsMaxLimit = 50
	}
	if c.JobsDefaultLimit < 1 {
		c.JobsDefaultLimit = 10
	}
	if c.JobsDefaultLimit > c.JobsMaxLimit {
		c.JobsDefaultLimit = c.JobsMaxLimit
	}
	if c.StudentFriendlyMax <= 0 {
		c.StudentFriendlyMax = 4 * time.Hour
	}
	if c.UrgentWithin <= 0 {
		c.UrgentWithin = 48 * time.Hour
	}
}
