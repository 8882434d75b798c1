package domain

import "time"

// ProviderScheduleConfig represents one row of a provider's scheduling
// configuration. Supports two levels:
// 1. Service-specific (provider_id, service_type) - duration override for one service
// 2. Provider defaults (provider_id, NULL) - default duration and booking limits
type ProviderScheduleConfig struct {
	ID                      int64
	ProviderID              int64
	ServiceType             *string // NULL = defaults for all services
	DurationMinutes         int
	MaxBookingsPerDay       int // 0 = unlimited
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsDefault returns true if this is the provider-wide defaults row
func (c *ProviderScheduleConfig) IsDefault() bool {
	return c.ServiceType == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *ProviderScheduleConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// HasDailyLimit returns true if the provider caps the number of bookings per day
func (c *ProviderScheduleConfig) HasDailyLimit() bool {
	return c.MaxBookingsPerDay > 0
}
