package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/abruzzobarber/abruzzo-api/internal/httperr"
	"github.com/abruzzobarber/abruzzo-api/internal/models"
	"github.com/abruzzobarber/abruzzo-api/internal/timezone"
)

// Confirmation es el resumen del turno más el deep link a WhatsApp
// con el mensaje prearmado. Entrega best-effort: nada se lee de
// vuelta ni se garantiza el envío.
type Confirmation struct {
	BarberName   string  `json:"barber_name"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	ClientName   string  `json:"client_name"`
	WhatsAppURL  string  `json:"whatsapp_url"`
}

func BuildConfirmation(
	w *Wizard,
	barber *models.Barber,
	svc *models.Service,
	shopName string,
	waNumber string,
	tz string,
) (*Confirmation, error) {

	if w.Step != StepConfirmation {
		return nil, httperr.ErrBusiness("wizard_not_finished")
	}

	d, err := time.ParseInLocation("2006-01-02", w.Date, timezone.Location(tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	longDate := timezone.FormatLongES(d)

	msg := fmt.Sprintf(
		"Hola! Reservé un turno en %s para %s con %s el %s a las %s. Mi nombre es %s.",
		shopName, svc.Name, barber.Name, longDate, w.Time, w.ClientName,
	)

	return &Confirmation{
		BarberName:   barber.Name,
		ServiceName:  svc.Name,
		ServicePrice: svc.Price,
		Date:         longDate,
		Time:         w.Time,
		ClientName:   w.ClientName,
		WhatsAppURL:  WhatsAppLink(waNumber, msg),
	}, nil
}

// WhatsAppLink arma el deep link wa.me con el texto URL-encoded.
func WhatsAppLink(number, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
