package repository

import (
	"context"

	"gorm.io/gorm"

	apdomain "github.com/abruzzobarber/abruzzo-api/internal/domain/appointment"
	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

// GormRepository implementa la fachada de datos de la reserva y del
// panel sobre gorm/Postgres.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *GormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) GetActiveBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *GormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *GormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *GormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *GormRepository) ListAppointmentsFrom(
	ctx context.Context,
	from string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("date >= ?", from).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Roles
// --------------------------------------------------

// HasRole es el predicado de autorización del panel. Cero filas es
// denegar; el llamador decide qué hacer con el error (fail-closed).
func (r *GormRepository) HasRole(
	ctx context.Context,
	userID uint,
	role string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time checks
var _ booking.Repository = (*GormRepository)(nil)
var _ apdomain.Repository = (*GormRepository)(nil)
