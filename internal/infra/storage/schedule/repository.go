package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// DBExecutor общий интерфейс выполнения запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"provider_id",
	"service_type",
	"duration_minutes",
	"max_bookings_per_day",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации расписания провайдера
// Хранит дефолтную строку провайдера (service_type IS NULL) и
// строки-переопределения длительности для отдельных услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет строку конфигурации
// Уникальность - по паре (provider_id, service_type), NULL считается отдельным значением
func (r *Repository) Upsert(ctx context.Context, config *domain.ProviderScheduleConfig) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("provider_schedule_config").
		Columns(
			"provider_id",
			"service_type",
			"duration_minutes",
			"max_bookings_per_day",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			config.ProviderID,
			config.ServiceType,
			config.DurationMinutes,
			config.MaxBookingsPerDay,
			config.AdvanceBookingDays,
			config.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (provider_id, COALESCE(service_type, '')) DO UPDATE SET
			duration_minutes = EXCLUDED.duration_minutes,
			max_bookings_per_day = EXCLUDED.max_bookings_per_day,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByProviderAndService получает строку конфигурации для провайдера и услуги
// serviceType = nil означает дефолтную строку провайдера
func (r *Repository) GetByProviderAndService(ctx context.Context, providerID int64, serviceType *string) (*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("provider_schedule_config").
		Where(squirrel.Eq{"provider_id": providerID})

	if serviceType == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_type": *serviceType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndService - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderAndService - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Строка для конкретной услуги (provider_id, service_type)
// 2. Дефолтная строка провайдера (provider_id, NULL)
// Если не найдена ни одна, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, providerID int64, serviceType string) (*domain.ProviderScheduleConfig, error) {
	config, err := r.GetByProviderAndService(ctx, providerID, &serviceType)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - service level: %v", ErrExecQuery, err)
	}

	config, err = r.GetByProviderAndService(ctx, providerID, nil)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - provider level: %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// GetAllByProvider получает все строки конфигурации провайдера
// Дефолтная строка (service_type IS NULL) идёт первой
func (r *Repository) GetAllByProvider(ctx context.Context, providerID int64) ([]*domain.ProviderScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("provider_schedule_config").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("service_type ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByProvider - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByProvider - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.ProviderScheduleConfig, 0)

	for rows.Next() {
		config, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByProvider - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByProvider - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// DeleteByProviderAndService удаляет строку конфигурации
func (r *Repository) DeleteByProviderAndService(ctx context.Context, providerID int64, serviceType *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("provider_schedule_config").
		Where(squirrel.Eq{"provider_id": providerID})

	if serviceType == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"service_type": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"service_type": *serviceType})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProviderAndService - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByProviderAndService - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByProviderAndService - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.ProviderScheduleConfig, error) {
	var config domain.ProviderScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.ProviderID,
		&config.ServiceType,
		&config.DurationMinutes,
		&config.MaxBookingsPerDay,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
