package domain

import "strings"

// StandardDurations is the closed set of service durations in minutes.
// Any raw duration is snapped to the nearest member of this set.
var StandardDurations = []int{15, 30, 45, 60, 90, 120}

// StandardizeDuration snaps raw minutes to the nearest standard duration.
// Ties break toward the lower candidate. The result is always a member of
// StandardDurations, so the function is idempotent.
func StandardizeDuration(raw int) int {
	best := StandardDurations[0]
	bestDiff := absInt(raw - best)

	for _, candidate := range StandardDurations[1:] {
		diff := absInt(raw - candidate)
		// Строгое сравнение: при равном расстоянии остаётся меньший кандидат
		if diff < bestDiff {
			best = candidate
			bestDiff = diff
		}
	}

	return best
}

// BaseServiceType strips a parenthetical qualifier from a service label:
// "Oil Change (Synthetic)" -> "Oil Change". Labels without a qualifier are
// returned trimmed.
func BaseServiceType(label string) string {
	if idx := strings.Index(label, "("); idx >= 0 {
		label = label[:idx]
	}
	return strings.TrimSpace(label)
}

// DurationTable maps service-type labels to standardized durations for one
// provider. Tables are assembled per request from the provider's stored
// schedule configuration, so custom durations never leak between providers.
type DurationTable struct {
	durations      map[string]int
	defaultMinutes int
}

// NewDurationTable creates an empty table with the given default duration.
// The default itself is standardized.
func NewDurationTable(defaultMinutes int) *DurationTable {
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultServiceDurationMinutes
	}
	return &DurationTable{
		durations:      make(map[string]int),
		defaultMinutes: StandardizeDuration(defaultMinutes),
	}
}

// Register maps a service-type label to a standardized duration.
func (t *DurationTable) Register(serviceType string, minutes int) {
	key := strings.TrimSpace(serviceType)
	if key == "" {
		return
	}
	t.durations[key] = StandardizeDuration(minutes)
}

// Resolve returns the duration for a service label:
// exact label first, then the parenthetical-stripped base label, then the
// table default. Unmapped labels are never an error.
func (t *DurationTable) Resolve(label string) int {
	if minutes, ok := t.durations[strings.TrimSpace(label)]; ok {
		return minutes
	}
	if minutes, ok := t.durations[BaseServiceType(label)]; ok {
		return minutes
	}
	return t.defaultMinutes
}

// DefaultMinutes returns the table's fallback duration.
func (t *DurationTable) DefaultMinutes() int {
	return t.defaultMinutes
}

// Len returns the number of registered service types.
func (t *DurationTable) Len() int {
	return len(t.durations)
}

// ResolveBookingDuration возвращает длительность бронирования:
// явно заданную (после стандартизации) или из таблицы по типу услуги
func ResolveBookingDuration(b *Booking, table *DurationTable) int {
	if b.DurationMinutes > 0 {
		return StandardizeDuration(b.DurationMinutes)
	}
	return table.Resolve(b.ServiceType)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
