package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/abruzzobarber/abruzzo-api/internal/domain/appointment"
	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
)

// lunes 2 de marzo de 2026, 10:00
var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type fakeRepo struct {
	created    []*models.Appointment
	failCreate bool
	nextID     uint
}

func (f *fakeRepo) GetActiveBarber(_ context.Context, id uint) (*models.Barber, error) {
	return &models.Barber{ID: id, Name: "Marco", Active: true}, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	return &models.Barber{ID: id, Name: "Marco"}, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	return &models.Service{ID: id, Name: "Corte Clásico", Price: 12000}, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.failCreate {
		return errors.New("connection refused")
	}
	f.nextID++
	ap.ID = f.nextID
	f.created = append(f.created, ap)
	return nil
}

func readyWizard(t *testing.T) *Wizard {
	t.Helper()

	w := New("sess-1", testNow)
	w.SelectBarber(1)
	w.SelectService(2)
	require.NoError(t, w.SelectDateTime("2026-03-03", "10:00", testNow))
	return w
}

func TestNewStartsAtFirstStep(t *testing.T) {
	w := New("sess-1", testNow)

	assert.Equal(t, StepSelectBarber, w.Step)
	assert.False(t, w.CanAdvance(testNow))
	assert.Nil(t, w.AppointmentID)
}

func TestSelectDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		slot    string
		wantErr string
	}{
		{name: "future weekday", date: "2026-03-03", slot: "10:00"},
		{name: "today is allowed", date: "2026-03-02", slot: "18:30"},
		{name: "garbage date", date: "03/03/2026", slot: "10:00", wantErr: "invalid_date"},
		{name: "past date", date: "2026-02-27", slot: "10:00", wantErr: "date_in_past"},
		{name: "sunday", date: "2026-03-08", slot: "10:00", wantErr: "closed_on_sunday"},
		{name: "slot outside range", date: "2026-03-03", slot: "12:00", wantErr: "invalid_time_slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New("sess-1", testNow)
			err := w.SelectDateTime(tt.date, tt.slot, testNow)

			if tt.wantErr != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantErr))
				assert.Empty(t, w.Date, "rejected selection must not stick")
				assert.Empty(t, w.Time)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.date, w.Date)
			assert.Equal(t, tt.slot, w.Time)
		})
	}
}

func TestCanAdvancePerStep(t *testing.T) {
	w := New("sess-1", testNow)

	assert.False(t, w.CanAdvance(testNow))
	w.SelectBarber(1)
	assert.True(t, w.CanAdvance(testNow))

	w.Step = StepSelectService
	assert.False(t, w.CanAdvance(testNow))
	w.SelectService(2)
	assert.True(t, w.CanAdvance(testNow))

	w.Step = StepSelectDateTime
	assert.False(t, w.CanAdvance(testNow))
	require.NoError(t, w.SelectDateTime("2026-03-03", "10:00", testNow))
	assert.True(t, w.CanAdvance(testNow))

	w.Step = StepContactInfo
	assert.False(t, w.CanAdvance(testNow))
	w.SetContact("   ", "  ")
	assert.False(t, w.CanAdvance(testNow), "blank contact does not count")
	w.SetContact("Juan", "123")
	assert.True(t, w.CanAdvance(testNow))
}

func TestCanAdvanceRechecksStaleDate(t *testing.T) {
	w := New("sess-1", testNow)
	w.Step = StepSelectDateTime
	require.NoError(t, w.SelectDateTime("2026-03-03", "10:00", testNow))

	// la fecha elegida quedó en el pasado mientras la sesión vivía
	later := testNow.AddDate(0, 0, 7)
	assert.False(t, w.CanAdvance(later))
}

func TestAdvanceGatesIncompleteSteps(t *testing.T) {
	w := New("sess-1", testNow)
	repo := &fakeRepo{}

	err := w.Advance(context.Background(), repo, testNow)
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))
	assert.Equal(t, StepSelectBarber, w.Step)

	w.SelectBarber(1)
	require.NoError(t, w.Advance(context.Background(), repo, testNow))
	assert.Equal(t, StepSelectService, w.Step)
}

func TestSubmitRejectsBothFieldsAtOnce(t *testing.T) {
	w := readyWizard(t)
	w.Step = StepContactInfo
	w.SetContact("", "11.abc")

	repo := &fakeRepo{}
	err := w.Advance(context.Background(), repo, testNow)

	var fe *FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "El nombre es obligatorio", fe.Name)
	assert.Equal(t, "Formato de teléfono inválido", fe.Phone)

	assert.Empty(t, repo.created, "nothing persisted on validation failure")
	assert.Equal(t, StepContactInfo, w.Step)
	assert.Nil(t, w.AppointmentID)
}

func TestFullWalkCreatesPendingAppointment(t *testing.T) {
	w := New("sess-1", testNow)
	repo := &fakeRepo{}
	ctx := context.Background()

	w.SelectBarber(1)
	require.NoError(t, w.Advance(ctx, repo, testNow))

	w.SelectService(2)
	require.NoError(t, w.Advance(ctx, repo, testNow))

	require.NoError(t, w.SelectDateTime("2026-03-03", "10:00", testNow))
	require.NoError(t, w.Advance(ctx, repo, testNow))

	w.SetContact("  Juan Pérez  ", "+54 11 1234-5678")
	require.NoError(t, w.Advance(ctx, repo, testNow))

	assert.Equal(t, StepConfirmation, w.Step)
	require.NotNil(t, w.AppointmentID)

	require.Len(t, repo.created, 1)
	ap := repo.created[0]
	assert.Equal(t, uint(1), ap.BarberID)
	assert.Equal(t, uint(2), ap.ServiceID)
	assert.Equal(t, "2026-03-03", ap.Date)
	assert.Equal(t, "10:00", ap.Time)
	assert.Equal(t, "Juan Pérez", ap.ClientName, "stored trimmed")
	assert.Equal(t, string(domain.StatusPending), ap.Status)

	// la confirmación es terminal
	err := w.Advance(ctx, repo, testNow)
	assert.True(t, httperr.IsBusiness(err, "wizard_finished"))
	assert.Len(t, repo.created, 1, "no duplicate submission")
}

func TestSubmitRepoFailureKeepsState(t *testing.T) {
	w := readyWizard(t)
	w.Step = StepContactInfo
	w.SetContact("Juan Pérez", "+54 11 1234-5678")

	repo := &fakeRepo{failCreate: true}
	err := w.Advance(context.Background(), repo, testNow)

	require.Error(t, err)
	assert.Equal(t, StepContactInfo, w.Step, "wizard stays where it was")
	assert.Nil(t, w.AppointmentID)
}

func TestRetreat(t *testing.T) {
	w := readyWizard(t)
	w.Step = StepSelectDateTime

	w.Retreat()
	assert.Equal(t, StepSelectService, w.Step)
	w.Retreat()
	assert.Equal(t, StepSelectBarber, w.Step)
	w.Retreat()
	assert.Equal(t, StepSelectBarber, w.Step, "floor at first step")

	// los datos cargados se conservan al volver
	assert.NotNil(t, w.BarberID)
	assert.Equal(t, "2026-03-03", w.Date)

	w.Step = StepConfirmation
	w.Retreat()
	assert.Equal(t, StepConfirmation, w.Step, "no going back after submit")
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "select_barber", StepSelectBarber.String())
	assert.Equal(t, "confirmation", StepConfirmation.String())
	assert.Equal(t, "unknown", Step(9).String())
}
