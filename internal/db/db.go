package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.Appointment{},
		&models.User{},
		&models.UserRole{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seed(db, cfg)

	return db
}

// seed carga el catálogo inicial y el usuario admin de arranque.
// Solo corre sobre tablas vacías.
func seed(db *gorm.DB, cfg *config.Config) {
	var count int64

	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		services := []models.Service{
			{Name: "Corte Clásico", Price: 12000, DurationMin: 30},
			{Name: "Corte + Barba", Price: 16000, DurationMin: 60},
			{Name: "Afeitado Tradicional", Price: 9000, DurationMin: 30},
			{Name: "Perfilado de Barba", Price: 8000, DurationMin: 30},
		}
		if err := db.Create(&services).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed services")
		}
	}

	db.Model(&models.Barber{}).Count(&count)
	if count == 0 {
		barbers := []models.Barber{
			{Name: "Marco Abruzzo", Role: "Barbero Senior", Active: true},
			{Name: "Julián Ferreyra", Role: "Barbero", Active: true},
			{Name: "Tomás Ricci", Role: "Barbero", Active: true},
		}
		if err := db.Create(&barbers).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed barbers")
		}
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")
		return
	}

	admin := models.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	role := models.UserRole{UserID: admin.ID, Role: "admin"}
	if err := db.Create(&role).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin role")
	}
}
