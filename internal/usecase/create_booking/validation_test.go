package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var testNow = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func openDay(open, close string) providerservice.DaySchedule {
	return providerservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		UserID:      1,
		ProviderID:  2,
		ServiceType: "Oil Change",
		Date:        testNow,
		StartTime:   "10:00",
	}
	require.NoError(t, validateRequest(valid))

	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero provider", func(r *Request) { r.ProviderID = 0 }},
		{"empty service", func(r *Request) { r.ServiceType = "  " }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := *valid
			tc.mutate(&req)
			assert.ErrorIs(t, validateRequest(&req), ErrInvalidInput)
		})
	}
}

func TestValidateDate(t *testing.T) {
	t.Run("past date rejected", func(t *testing.T) {
		yesterday := testNow.AddDate(0, 0, -1)
		assert.ErrorIs(t, validateDate(yesterday, testNow, 0), ErrInvalidDate)
	})

	t.Run("today allowed", func(t *testing.T) {
		assert.NoError(t, validateDate(testNow, testNow, 0))
	})

	t.Run("no advance limit", func(t *testing.T) {
		farFuture := testNow.AddDate(1, 0, 0)
		assert.NoError(t, validateDate(farFuture, testNow, 0))
	})

	t.Run("advance limit enforced", func(t *testing.T) {
		assert.NoError(t, validateDate(testNow.AddDate(0, 0, 14), testNow, 14))
		assert.ErrorIs(t, validateDate(testNow.AddDate(0, 0, 15), testNow, 14), ErrDateTooFarInFuture)
	})
}

func TestValidateBookingTime(t *testing.T) {
	t.Run("future date skips notice check", func(t *testing.T) {
		tomorrow := testNow.AddDate(0, 0, 1)
		assert.NoError(t, validateBookingTime(tomorrow, "10:05", testNow, 60))
	})

	t.Run("today violating notice rejected", func(t *testing.T) {
		// now = 10:00, notice = 60 минут, слот 10:30 - слишком рано
		err := validateBookingTime(testNow, "10:30", testNow, 60)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("today respecting notice allowed", func(t *testing.T) {
		assert.NoError(t, validateBookingTime(testNow, "11:00", testNow, 60))
	})
}

func TestValidateWorkingHours(t *testing.T) {
	day := openDay("09:00", "18:00")

	t.Run("closed day", func(t *testing.T) {
		closed := providerservice.DaySchedule{IsOpen: false}
		assert.ErrorIs(t, validateWorkingHours(closed, "10:00", 60), ErrProviderClosed)
	})

	t.Run("before opening", func(t *testing.T) {
		assert.ErrorIs(t, validateWorkingHours(day, "08:30", 60), ErrOutsideWorkingHours)
	})

	t.Run("crosses closing time", func(t *testing.T) {
		assert.ErrorIs(t, validateWorkingHours(day, "17:30", 60), ErrOutsideWorkingHours)
	})

	t.Run("ends exactly at closing", func(t *testing.T) {
		assert.NoError(t, validateWorkingHours(day, "17:00", 60))
	})

	t.Run("inside working hours", func(t *testing.T) {
		assert.NoError(t, validateWorkingHours(day, "10:00", 90))
	})
}

func TestHasOverlappingBooking(t *testing.T) {
	table := domain.NewDurationTable(60)
	table.Register("Brake Service", 90)

	active := func(start types.TimeString, duration int) *domain.Booking {
		return &domain.Booking{
			ServiceType:     "Brake Service",
			StartTime:       start,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
		}
	}

	t.Run("real overlap blocks", func(t *testing.T) {
		bookings := []*domain.Booking{active("09:00", 90)}

		overlaps, err := hasOverlappingBooking("10:00", 60, bookings, table)
		require.NoError(t, err)
		assert.True(t, overlaps)
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		bookings := []*domain.Booking{active("09:00", 60)}

		overlaps, err := hasOverlappingBooking("10:00", 60, bookings, table)
		require.NoError(t, err)
		assert.False(t, overlaps)
	})

	t.Run("cancelled booking ignored", func(t *testing.T) {
		cancelled := active("10:00", 60)
		cancelled.Status = domain.StatusCancelled

		overlaps, err := hasOverlappingBooking("10:00", 60, []*domain.Booking{cancelled}, table)
		require.NoError(t, err)
		assert.False(t, overlaps)
	})

	t.Run("completed booking ignored", func(t *testing.T) {
		completed := active("10:00", 60)
		completed.Status = domain.StatusCompleted

		overlaps, err := hasOverlappingBooking("10:00", 60, []*domain.Booking{completed}, table)
		require.NoError(t, err)
		assert.False(t, overlaps)
	})

	t.Run("duration resolved from table when unset", func(t *testing.T) {
		// 90 минут из таблицы: бронирование 09:00-10:30 пересекает слот 10:00
		unset := active("09:00", 0)

		overlaps, err := hasOverlappingBooking("10:00", 60, []*domain.Booking{unset}, table)
		require.NoError(t, err)
		assert.True(t, overlaps)
	})
}
