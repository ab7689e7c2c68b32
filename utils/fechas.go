package utils

import (
	"fmt"
	"strconv"
	"time"

	"arriendaya/errors"
)

// MesesEntre calcula la diferencia en meses calendario entre dos fechas
func MesesEntre(inicio, fin time.Time) int {
	meses := (fin.Year()-inicio.Year())*12 + int(fin.Month()) - int(inicio.Month())
	if fin.Day() < inicio.Day() {
		meses--
	}
	if meses < 0 {
		return 0
	}
	return meses
}

// ConvertirHora12a24 convierte hora en formato 12 horas (con AM/PM) a "HH:MM:SS".
// Regla: PM y hora != 12 suma 12; AM y hora == 12 pasa a 0.
func ConvertirHora12a24(hora, minuto, periodo string) (string, error) {
	h, err := strconv.Atoi(hora)
	if err != nil || h < 1 || h > 12 {
		return "", errors.NewAppError(errors.ErrCodeFormatoInvalido, "La hora no es válida", err)
	}

	m, err := strconv.Atoi(minuto)
	if err != nil || m < 0 || m > 59 {
		return "", errors.NewAppError(errors.ErrCodeFormatoInvalido, "Los minutos no son válidos", err)
	}

	switch periodo {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	default:
		return "", errors.NewAppError(errors.ErrCodeFormatoInvalido, "El periodo debe ser AM o PM", nil)
	}

	return fmt.Sprintf("%02d:%02d:00", h, m), nil
}

// ConvertirHora24a12 convierte "HH:MM:SS" al formato de 12 horas con AM/PM
func ConvertirHora24a12(hora24 string) (string, string, string, error) {
	t, err := time.Parse("15:04:05", hora24)
	if err != nil {
		return "", "", "", errors.NewAppError(errors.ErrCodeFormatoInvalido, "La hora no es válida", err)
	}

	h := t.Hour()
	periodo := "AM"
	if h >= 12 {
		periodo = "PM"
	}

	h = h % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%02d", h), fmt.Sprintf("%02d", t.Minute()), periodo, nil
}
