package timezone

import (
	"fmt"
	"time"
)

var weekdaysES = [...]string{
	"domingo", "lunes", "martes", "miércoles",
	"jueves", "viernes", "sábado",
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatLongES formatea una fecha como "miércoles 4 de febrero",
// el formato largo del mensaje de confirmación.
func FormatLongES(t time.Time) string {
	return fmt.Sprintf(
		"%s %d de %s",
		weekdaysES[int(t.Weekday())],
		t.Day(),
		monthsES[int(t.Month())-1],
	)
}
