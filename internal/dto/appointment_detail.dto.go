package dto

type AppointmentDetailDTO struct {
	ID     uint   `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
	QRCode string `json:"qr_code"`

	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	DurationMinutes int     `json:"duration_minutes"`

	BarberName     string `json:"barber_name"`
	BarberPhotoURL string `json:"barber_photo_url"`

	Cancellable bool `json:"cancellable"`
}
