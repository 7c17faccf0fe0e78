package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
	"github.com/abruzzobarber/abruzzo-api/internal/infra/session"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

// fakeBookingRepo trata a los barberos listados en inactive como
// dados de baja: GetActiveBarber los rechaza igual que el filtro
// active = true del repositorio real.
type fakeBookingRepo struct {
	inactive map[uint]bool
}

func (f *fakeBookingRepo) GetActiveBarber(_ context.Context, id uint) (*models.Barber, error) {
	if f.inactive[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Barber{ID: id, Name: "Marco", Active: true}, nil
}

func (f *fakeBookingRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	return &models.Barber{ID: id, Name: "Marco"}, nil
}

func (f *fakeBookingRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	return &models.Service{ID: id, Name: "Corte Clásico"}, nil
}

func (f *fakeBookingRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = 1
	return nil
}

func bookingTestRouter(t *testing.T, repo booking.Repository) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	cfg := &config.Config{Timezone: "America/Argentina/Buenos_Aires"}
	h := NewBookingHandler(store, repo, cfg, nil)

	r := gin.New()
	r.POST("/api/booking/:id/barber", h.SelectBarber)
	return r, store
}

func seedWizard(t *testing.T, store session.Store) *booking.Wizard {
	t.Helper()

	w := booking.New("sess-1", time.Now())
	require.NoError(t, store.Save(context.Background(), w))
	return w
}

func TestSelectBarberRejectsDeactivated(t *testing.T) {
	repo := &fakeBookingRepo{inactive: map[uint]bool{3: true}}
	r, store := bookingTestRouter(t, repo)
	seedWizard(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/booking/sess-1/barber",
		strings.NewReader(`{"barber_id": 3}`),
	)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "barber_not_found")

	// la selección no queda: el asistente sigue sin barbero
	w, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, w.BarberID)
	assert.Equal(t, booking.StepSelectBarber, w.Step)
}

func TestSelectBarberAcceptsActive(t *testing.T) {
	repo := &fakeBookingRepo{inactive: map[uint]bool{}}
	r, store := bookingTestRouter(t, repo)
	seedWizard(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/booking/sess-1/barber",
		strings.NewReader(`{"barber_id": 1}`),
	)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	w, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, w.BarberID)
	assert.Equal(t, uint(1), *w.BarberID)
}
