package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Фейки для unit-тестов

type fakeConfigRepo struct {
	configs  []*domain.ProviderScheduleConfig
	upserted *domain.ProviderScheduleConfig
}

func (r *fakeConfigRepo) Upsert(_ context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error) {
	saved := *config
	saved.ID = 1
	r.upserted = &saved
	return &saved, nil
}

func (r *fakeConfigRepo) GetByProviderAndService(_ context.Context, providerID int64, serviceType *string) (*domain.ProviderScheduleConfig, error) {
	for _, cfg := range r.configs {
		if cfg.ProviderID != providerID {
			continue
		}
		if serviceType == nil && cfg.ServiceType == nil {
			return cfg, nil
		}
		if serviceType != nil && cfg.ServiceType != nil && *serviceType == *cfg.ServiceType {
			return cfg, nil
		}
	}
	return nil, nil
}

func (r *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, providerID int64, serviceType string) (*domain.ProviderScheduleConfig, error) {
	return nil, nil
}

func (r *fakeConfigRepo) GetAllByProvider(_ context.Context, providerID int64) ([]*domain.ProviderScheduleConfig, error) {
	out := make([]*domain.ProviderScheduleConfig, 0)
	for _, cfg := range r.configs {
		if cfg.ProviderID == providerID {
			out = append(out, cfg)
		}
	}
	return out, nil
}

func (r *fakeConfigRepo) DeleteByProviderAndService(_ context.Context, providerID int64, serviceType *string) error {
	return nil
}

type fakeProviderClient struct {
	provider *providerservice.Provider
}

func (c *fakeProviderClient) GetProvider(_ context.Context, providerID int64) (*providerservice.Provider, error) {
	if c.provider == nil || c.provider.ID != providerID {
		return nil, providerservice.ErrProviderNotFound
	}
	return c.provider, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testProvider() *providerservice.Provider {
	return &providerservice.Provider{
		ID:         1,
		Name:       "AutoFix Center",
		Timezone:   "Europe/Moscow",
		ManagerIDs: []int64{100},
		Services: []providerservice.Service{
			{Name: "Oil Change", DurationMinutes: ptr.Ptr(30)},
			{Name: "Tire Rotation", DurationMinutes: ptr.Ptr(45)},
			{Name: "Inspection"}, // без длительности в каталоге
		},
	}
}

func TestBuildDurationTable_CatalogOnly(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	table, err := svc.BuildDurationTable(context.Background(), 1, testProvider())
	require.NoError(t, err)

	assert.Equal(t, 30, table.Resolve("Oil Change"))
	assert.Equal(t, 45, table.Resolve("Tire Rotation"))
	// Услуга без длительности в каталоге получает значение по умолчанию
	assert.Equal(t, domain.DefaultServiceDurationMinutes, table.Resolve("Inspection"))
	assert.Equal(t, domain.DefaultServiceDurationMinutes, table.DefaultMinutes())
}

func TestBuildDurationTable_ConfigOverridesCatalog(t *testing.T) {
	repo := &fakeConfigRepo{
		configs: []*domain.ProviderScheduleConfig{
			{ProviderID: 1, ServiceType: ptr.Ptr("Oil Change"), DurationMinutes: 90},
		},
	}
	svc := NewService(repo, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	table, err := svc.BuildDurationTable(context.Background(), 1, testProvider())
	require.NoError(t, err)

	// Конфигурация менеджера важнее каталога
	assert.Equal(t, 90, table.Resolve("Oil Change"))
	// Остальные услуги не затронуты
	assert.Equal(t, 45, table.Resolve("Tire Rotation"))
}

func TestBuildDurationTable_DefaultRowSetsFallback(t *testing.T) {
	repo := &fakeConfigRepo{
		configs: []*domain.ProviderScheduleConfig{
			{ProviderID: 1, ServiceType: nil, DurationMinutes: 45},
		},
	}
	svc := NewService(repo, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	table, err := svc.BuildDurationTable(context.Background(), 1, testProvider())
	require.NoError(t, err)

	assert.Equal(t, 45, table.DefaultMinutes())
	// Неизвестная услуга получает значение по умолчанию центра
	assert.Equal(t, 45, table.Resolve("Brake Check"))
	// Явные длительности каталога сохраняются
	assert.Equal(t, 30, table.Resolve("Oil Change"))
}

func TestBuildDurationTable_IsolatedPerProvider(t *testing.T) {
	// Конфигурация чужого центра не должна влиять на таблицу
	repo := &fakeConfigRepo{
		configs: []*domain.ProviderScheduleConfig{
			{ProviderID: 2, ServiceType: ptr.Ptr("Oil Change"), DurationMinutes: 120},
		},
	}
	svc := NewService(repo, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	table, err := svc.BuildDurationTable(context.Background(), 1, testProvider())
	require.NoError(t, err)

	assert.Equal(t, 30, table.Resolve("Oil Change"))
}

func TestUpsert_Validation(t *testing.T) {
	svc := NewService(&fakeConfigRepo{}, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpsertConfigRequest
	}{
		{
			name: "zero duration",
			req:  &models.UpsertConfigRequest{UserID: 100, ProviderID: 1, DurationMinutes: 0},
		},
		{
			name: "negative duration",
			req:  &models.UpsertConfigRequest{UserID: 100, ProviderID: 1, DurationMinutes: -30},
		},
		{
			name: "negative daily limit",
			req: &models.UpsertConfigRequest{
				UserID: 100, ProviderID: 1, DurationMinutes: 60,
				MaxBookingsPerDay: ptr.Ptr(-1),
			},
		},
		{
			name: "advance days above limit",
			req: &models.UpsertConfigRequest{
				UserID: 100, ProviderID: 1, DurationMinutes: 60,
				AdvanceBookingDays: ptr.Ptr(domain.MaxAdvanceBookingDays + 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_AccessAndCatalogChecks(t *testing.T) {
	repo := &fakeConfigRepo{}
	svc := NewService(repo, &fakeProviderClient{provider: testProvider()}, nopLogger{})

	t.Run("non-manager is rejected", func(t *testing.T) {
		_, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{
			UserID: 200, ProviderID: 1, DurationMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		_, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{
			UserID: 100, ProviderID: 1, DurationMinutes: 60,
			ServiceType: ptr.Ptr("Engine Swap"),
		})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{
			UserID: 100, ProviderID: 99, DurationMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("manager upserts default row", func(t *testing.T) {
		resp, err := svc.Upsert(context.Background(), &models.UpsertConfigRequest{
			UserID: 100, ProviderID: 1, DurationMinutes: 50,
		})
		require.NoError(t, err)
		assert.Nil(t, resp.ServiceType)
		// Длительность приводится к стандартной сетке: 50 -> 45
		assert.Equal(t, 45, resp.DurationMinutes)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, int64(1), repo.upserted.ProviderID)
	})
}
