package models

import "time"

// UserRole es el predicado de autorización: la app solo lo lee.
// Sin fila con role = "admin" no hay acceso al panel.
type UserRole struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"index;not null" json:"user_id"`
	Role   string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
