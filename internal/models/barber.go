package models

import "time"

// Barber nunca se borra físicamente: active = false lo saca de la
// selección de turnos nuevos pero conserva los turnos históricos.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Role     string `gorm:"size:50;default:'Barbero'" json:"role"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
