package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertirHora12a24(t *testing.T) {
	casos := []struct {
		hora     string
		minuto   string
		periodo  string
		esperado string
	}{
		{"12", "00", "AM", "00:00:00"},
		{"12", "00", "PM", "12:00:00"},
		{"09", "00", "PM", "21:00:00"},
		{"09", "30", "AM", "09:30:00"},
		{"01", "05", "PM", "13:05:00"},
		{"11", "59", "PM", "23:59:00"},
		{"11", "59", "AM", "11:59:00"},
	}

	for _, c := range casos {
		resultado, err := ConvertirHora12a24(c.hora, c.minuto, c.periodo)
		require.NoError(t, err)
		assert.Equal(t, c.esperado, resultado, "%s:%s %s", c.hora, c.minuto, c.periodo)
	}
}

func TestConvertirHora12a24Invalida(t *testing.T) {
	_, err := ConvertirHora12a24("13", "00", "AM")
	assert.Error(t, err)

	_, err = ConvertirHora12a24("10", "75", "AM")
	assert.Error(t, err)

	_, err = ConvertirHora12a24("10", "00", "XM")
	assert.Error(t, err)
}

// La conversión a 24 horas y de vuelta conserva la hora mostrada
func TestConversionIdaYVuelta(t *testing.T) {
	casos := []struct {
		hora    string
		minuto  string
		periodo string
	}{
		{"12", "00", "AM"},
		{"12", "00", "PM"},
		{"09", "15", "PM"},
		{"01", "30", "AM"},
		{"06", "45", "PM"},
	}

	for _, c := range casos {
		hora24, err := ConvertirHora12a24(c.hora, c.minuto, c.periodo)
		require.NoError(t, err)

		hora, minuto, periodo, err := ConvertirHora24a12(hora24)
		require.NoError(t, err)

		assert.Equal(t, c.hora, hora)
		assert.Equal(t, c.minuto, minuto)
		assert.Equal(t, c.periodo, periodo)
	}
}

func TestMesesEntre(t *testing.T) {
	fecha := func(s string) time.Time {
		f, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return f
	}

	// Una estadía corta dentro del mismo mes no llega a un mes completo
	assert.Equal(t, 0, MesesEntre(fecha("2024-01-15"), fecha("2024-01-20")))

	// Dos meses exactos
	assert.Equal(t, 2, MesesEntre(fecha("2024-01-15"), fecha("2024-03-15")))

	// Un día antes de completar el segundo mes
	assert.Equal(t, 1, MesesEntre(fecha("2024-01-15"), fecha("2024-03-14")))

	// Cruce de año
	assert.Equal(t, 12, MesesEntre(fecha("2024-02-01"), fecha("2025-02-01")))

	// Fechas invertidas no dan meses negativos
	assert.Equal(t, 0, MesesEntre(fecha("2024-03-15"), fecha("2024-01-15")))
}
