package builders

import (
	"time"

	"arriendaya/dto"
	"arriendaya/utils"
	"arriendaya/validator"
)

// CitaBuilder arma el borrador de una cita de visita. La propiedad llega
// siempre como parámetro explícito; no se adivina desde la URL.
type CitaBuilder struct {
	usuarioUID  string
	propiedadID uint

	fecha *time.Time

	hora    string
	minuto  string
	periodo string
}

// NewCitaBuilder crea el borrador para un usuario y una propiedad
func NewCitaBuilder(usuarioUID string, propiedadID uint) *CitaBuilder {
	return &CitaBuilder{
		usuarioUID:  usuarioUID,
		propiedadID: propiedadID,
		hora:        "09",
		minuto:      "00",
		periodo:     "AM",
	}
}

// ConFecha fija la fecha elegida en el calendario
func (b *CitaBuilder) ConFecha(fecha time.Time) *CitaBuilder {
	b.fecha = &fecha
	return b
}

// ConHora fija la hora en formato de 12 horas
func (b *CitaBuilder) ConHora(hora, minuto, periodo string) *CitaBuilder {
	b.hora = hora
	b.minuto = minuto
	b.periodo = periodo
	return b
}

// Build arma la petición final con la hora convertida a 24 horas. Sin
// fecha elegida no se construye nada y no sale ninguna petición.
func (b *CitaBuilder) Build() (*dto.CrearCitaRequest, error) {
	hora24, err := utils.ConvertirHora12a24(b.hora, b.minuto, b.periodo)
	if err != nil {
		return nil, err
	}

	req := &dto.CrearCitaRequest{
		UsuarioUID:  b.usuarioUID,
		PropiedadID: b.propiedadID,
		Hora:        hora24,
	}

	if b.fecha != nil {
		req.Fecha = b.fecha.Format("2006-01-02")
	}

	if err := validator.ValidarCita(req); err != nil {
		return nil, err
	}

	return req, nil
}
