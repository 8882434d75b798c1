package garageservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с GarageService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GarageService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSelectedVehicle получает выбранный автомобиль пользователя
func (c *Client) GetSelectedVehicle(ctx context.Context, userID int64) (*Vehicle, error) {
	url := fmt.Sprintf("%s/internal/users/%d/vehicles/selected", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrVehicleNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var vehicle Vehicle
	if err := json.NewDecoder(resp.Body).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &vehicle, nil
}

// GetSelectedVehicleWithGracefulDegradation получает автомобиль с graceful degradation
// При недоступности GarageService возвращает ErrServiceDegraded - бронирование
// в этом случае создаётся без снапшота автомобиля
func (c *Client) GetSelectedVehicleWithGracefulDegradation(ctx context.Context, userID int64) (*Vehicle, error) {
	c.log.Info("Fetching selected vehicle for user_id=%d", userID)

	vehicle, err := c.GetSelectedVehicle(ctx, userID)
	if err != nil {
		// Бизнес-ошибку пробрасываем как есть
		if err == ErrVehicleNotFound {
			c.log.Info("No selected vehicle found for user_id=%d", userID)
			return nil, err
		}

		// Для остальных ошибок (недоступность, timeout, парсинг) - graceful degradation
		c.log.Error("GarageService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched vehicle for user_id=%d, brand=%s", userID, vehicle.Brand)
	return vehicle, nil
}
