package dto

type AppointmentRow struct {
	ID           uint     `json:"id"`
	Date         string   `json:"appointment_date"`
	Time         string   `json:"appointment_time"`
	ClientName   string   `json:"client_name"`
	ClientPhone  string   `json:"client_phone"`
	BarberName   string   `json:"barber_name"`
	ServiceName  string   `json:"service_name"`
	ServicePrice float64  `json:"service_price"`
	Status       string   `json:"status"`
	Actions      []string `json:"actions"`
}
