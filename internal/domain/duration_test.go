package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeDuration_SnapsToNearest(t *testing.T) {
	cases := []struct {
		raw      int
		expected int
	}{
		{0, 15},
		{10, 15},
		{15, 15},
		{20, 15},  // 20: |20-15|=5 < |20-30|=10
		{25, 30},
		{37, 30},  // |37-30|=7 < |37-45|=8
		{38, 45},  // |38-30|=8 > |38-45|=7
		{50, 45},
		{55, 60},
		{70, 60},
		{80, 90},
		{100, 90},
		{110, 120},
		{240, 120},
		{-5, 15},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, StandardizeDuration(tc.raw), "raw=%d", tc.raw)
	}
}

func TestStandardizeDuration_TieBreaksTowardLower(t *testing.T) {
	// 22.5 недостижимо на int, ближайшая настоящая ничья: 75 между 60 и 90
	assert.Equal(t, 60, StandardizeDuration(75))
}

func TestStandardizeDuration_Idempotent(t *testing.T) {
	for raw := -10; raw <= 300; raw++ {
		once := StandardizeDuration(raw)
		assert.Equal(t, once, StandardizeDuration(once), "raw=%d", raw)
		assert.Contains(t, StandardDurations, once, "raw=%d", raw)
	}
}

func TestBaseServiceType(t *testing.T) {
	assert.Equal(t, "Oil Change", BaseServiceType("Oil Change (Synthetic)"))
	assert.Equal(t, "Oil Change", BaseServiceType("Oil Change"))
	assert.Equal(t, "Brake Service", BaseServiceType("  Brake Service (Front) "))
	assert.Equal(t, "", BaseServiceType("(weird)"))
}

func TestDurationTable_ResolveExactMatch(t *testing.T) {
	table := NewDurationTable(DefaultServiceDurationMinutes)
	table.Register("Oil Change", 30)
	table.Register("Oil Change (Synthetic)", 45)

	assert.Equal(t, 45, table.Resolve("Oil Change (Synthetic)"))
	assert.Equal(t, 30, table.Resolve("Oil Change"))
}

func TestDurationTable_ResolveFallsBackToBaseLabel(t *testing.T) {
	table := NewDurationTable(DefaultServiceDurationMinutes)
	table.Register("Oil Change", 30)

	// Нет точного ключа "Oil Change (Synthetic)" - используется базовый
	assert.Equal(t, table.Resolve("Oil Change"), table.Resolve("Oil Change (Synthetic)"))
}

func TestDurationTable_ResolveUnmappedUsesDefault(t *testing.T) {
	table := NewDurationTable(60)

	assert.Equal(t, 60, table.Resolve("Exhaust Repair"))
}

func TestDurationTable_RegisterStandardizes(t *testing.T) {
	table := NewDurationTable(60)
	table.Register("Tire Rotation", 35)

	assert.Equal(t, 30, table.Resolve("Tire Rotation"))
}

func TestDurationTable_DefaultIsStandardized(t *testing.T) {
	table := NewDurationTable(50)
	assert.Equal(t, 45, table.DefaultMinutes())

	table = NewDurationTable(0)
	assert.Equal(t, DefaultServiceDurationMinutes, table.DefaultMinutes())
}

func TestDurationTable_TablesAreIndependent(t *testing.T) {
	first := NewDurationTable(60)
	second := NewDurationTable(60)

	first.Register("Detailing", 120)

	assert.Equal(t, 120, first.Resolve("Detailing"))
	assert.Equal(t, 60, second.Resolve("Detailing"))
}
