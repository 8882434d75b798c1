package garageservice

// Vehicle модель автомобиля из GarageService
type Vehicle struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Year         int    `json:"year"`
	IsSelected   bool   `json:"is_selected"`
}

// ErrorResponse модель ошибки от GarageService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
