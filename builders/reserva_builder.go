package builders

import (
	"time"

	"arriendaya/dto"
	"arriendaya/utils"
	"arriendaya/validator"
)

// Objetivo de selección del calendario
const (
	ObjetivoLlegada = iota
	ObjetivoSalida
)

// ReservaBuilder arma el borrador de una reserva paso a paso: fechas con
// el calendario (alternando entre llegada y salida), hora de llegada y
// observaciones
type ReservaBuilder struct {
	usuarioUID    string
	propiedadID   uint
	precioMensual float64

	objetivo     int
	fechaLlegada *time.Time
	fechaSalida  *time.Time

	hora    string
	minuto  string
	periodo string

	observaciones string
}

// NewReservaBuilder crea el borrador para un usuario y una propiedad
func NewReservaBuilder(usuarioUID string, propiedadID uint) *ReservaBuilder {
	return &ReservaBuilder{
		usuarioUID:  usuarioUID,
		propiedadID: propiedadID,
		objetivo:    ObjetivoLlegada,
		hora:        "09",
		minuto:      "00",
		periodo:     "AM",
	}
}

// ConPrecioMensual fija el precio mensual traído del backend al abrir
func (b *ReservaBuilder) ConPrecioMensual(precio float64) *ReservaBuilder {
	b.precioMensual = precio
	return b
}

// AlternarObjetivo cambia entre seleccionar llegada y seleccionar salida
func (b *ReservaBuilder) AlternarObjetivo() *ReservaBuilder {
	if b.objetivo == ObjetivoLlegada {
		b.objetivo = ObjetivoSalida
	} else {
		b.objetivo = ObjetivoLlegada
	}
	return b
}

// Objetivo devuelve el objetivo de selección vigente
func (b *ReservaBuilder) Objetivo() int {
	return b.objetivo
}

// SeleccionarFecha aplica la fecha del calendario al objetivo vigente
func (b *ReservaBuilder) SeleccionarFecha(fecha time.Time) *ReservaBuilder {
	if b.objetivo == ObjetivoLlegada {
		b.fechaLlegada = &fecha
	} else {
		b.fechaSalida = &fecha
	}
	return b
}

// ConHora fija la hora de llegada en formato de 12 horas
func (b *ReservaBuilder) ConHora(hora, minuto, periodo string) *ReservaBuilder {
	b.hora = hora
	b.minuto = minuto
	b.periodo = periodo
	return b
}

// ConObservaciones agrega las observaciones del usuario
func (b *ReservaBuilder) ConObservaciones(obs string) *ReservaBuilder {
	b.observaciones = obs
	return b
}

// PrecioTotal calcula la vista previa del total: máx(1, meses entre
// llegada y salida) por el precio mensual. Si la salida aún no está
// elegida, la vista previa asume llegada más un mes sin tocar el
// borrador.
func (b *ReservaBuilder) PrecioTotal() float64 {
	if b.fechaLlegada == nil {
		return 0
	}

	salida := b.fechaSalida
	if salida == nil {
		s := b.fechaLlegada.AddDate(0, 1, 0)
		salida = &s
	}

	meses := utils.MesesEntre(*b.fechaLlegada, *salida)
	if meses < 1 {
		meses = 1
	}

	return float64(meses) * b.precioMensual
}

// Build arma la petición final. La reserva exige sesión iniciada,
// propiedad válida y al menos la fecha de llegada.
func (b *ReservaBuilder) Build() (*dto.CrearReservaRequest, error) {
	hora24, err := utils.ConvertirHora12a24(b.hora, b.minuto, b.periodo)
	if err != nil {
		return nil, err
	}

	req := &dto.CrearReservaRequest{
		UsuarioUID:    b.usuarioUID,
		PropiedadID:   b.propiedadID,
		HoraLlegada:   hora24,
		MontoReserva:  b.PrecioTotal(),
		Observaciones: b.observaciones,
	}

	if b.fechaLlegada != nil {
		req.FechaInicio = b.fechaLlegada.Format("2006-01-02")
	}
	if b.fechaSalida != nil {
		req.FechaFin = b.fechaSalida.Format("2006-01-02")
	}

	if err := validator.ValidarReserva(req); err != nil {
		return nil, err
	}

	return req, nil
}
