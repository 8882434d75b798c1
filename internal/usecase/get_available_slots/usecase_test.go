package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Фиксированное "сейчас": понедельник 2024-03-04, 10:00 UTC
var testNow = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeConfigRepo struct {
	config *domain.ProviderScheduleConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ string) (*domain.ProviderScheduleConfig, error) {
	if f.config == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

type fakeDurationResolver struct {
	table *domain.DurationTable
}

func (f *fakeDurationResolver) BuildDurationTable(_ context.Context, _ int64, _ *providerservice.Provider) (*domain.DurationTable, error) {
	return f.table, nil
}

type fakeProviderClient struct {
	provider *providerservice.Provider
}

func (f *fakeProviderClient) GetProvider(_ context.Context, id int64) (*providerservice.Provider, error) {
	if f.provider == nil || f.provider.ID != id {
		return nil, providerservice.ErrProviderNotFound
	}
	return f.provider, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testProvider() *providerservice.Provider {
	weekdays := providerservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("12:00"),
	}
	return &providerservice.Provider{
		ID:       1,
		Name:     "AutoFix",
		Timezone: "UTC",
		WorkingHours: providerservice.WeekSchedule{
			Monday:  weekdays,
			Tuesday: weekdays,
			// Среда - выходной
		},
		Services: []providerservice.Service{
			{Name: "Oil Change", DurationMinutes: ptr.Ptr(30)},
		},
	}
}

func newTestUseCase(bookings []*domain.Booking) *UseCase {
	table := domain.NewDurationTable(60)
	table.Register("Oil Change", 30)

	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeConfigRepo{},
		&fakeDurationResolver{table: table},
		&fakeProviderClient{provider: testProvider()},
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	// Следующий понедельник, бронирование в 09:30
	nextMonday := testNow.AddDate(0, 0, 7)
	bookings := []*domain.Booking{{
		ServiceType:     "Oil Change",
		BookingDate:     nextMonday,
		StartTime:       "09:30",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}}

	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      1,
		ProviderID:  1,
		ServiceType: "Oil Change",
		Date:        nextMonday,
	})

	require.NoError(t, err)
	// 09:00-12:00 с шагом 30 минут: 6 слотов
	require.Len(t, resp.Slots, 6)

	for _, slot := range resp.Slots {
		if slot.StartTime == "09:30" {
			assert.False(t, slot.IsAvailable, "занятый слот должен быть помечен")
		} else {
			assert.True(t, slot.IsAvailable, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	nextMonday := testNow.AddDate(0, 0, 7)
	bookings := []*domain.Booking{{
		ServiceType:     "Oil Change",
		BookingDate:     nextMonday,
		StartTime:       "09:30",
		DurationMinutes: 30,
		Status:          domain.StatusCancelled,
	}}

	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  1,
		ServiceType: "Oil Change",
		Date:        nextMonday,
	})

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable, "slot %s", slot.StartTime)
	}
}

func TestExecute_ClosedDayReturnsNoSlots(t *testing.T) {
	// Следующая среда - выходной
	nextWednesday := testNow.AddDate(0, 0, 9)
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  1,
		ServiceType: "Oil Change",
		Date:        nextWednesday,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayFiltersByNoticeMinutes(t *testing.T) {
	// Сегодня понедельник, now = 10:00, notice по умолчанию 60 минут:
	// остаются только слоты с 11:00
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  1,
		ServiceType: "Oil Change",
		Date:        testNow,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[1].StartTime)
}

func TestExecute_NoticeWindowPastMidnightReturnsNoSlots(t *testing.T) {
	// now = 10:00, notice 15 часов: окно уходит за полночь,
	// на сегодня слотов нет - без ошибки
	uc := newTestUseCase(nil)
	uc.configRepo = &fakeConfigRepo{config: &domain.ProviderScheduleConfig{
		DurationMinutes:         30,
		MinBookingNoticeMinutes: 15 * 60,
	}}

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID:  1,
		ServiceType: "Oil Change",
		Date:        testNow,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:  1,
		ServiceType: "Transmission Swap",
		Date:        testNow.AddDate(0, 0, 7),
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID:  99,
		ServiceType: "Oil Change",
		Date:        testNow.AddDate(0, 0, 7),
	})

	assert.ErrorIs(t, err, ErrProviderNotFound)
}
