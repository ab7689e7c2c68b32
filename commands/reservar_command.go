package commands

import (
	"context"
	"fmt"
	"time"

	"arriendaya/auth"
	"arriendaya/builders"
	"arriendaya/errors"
	"arriendaya/services"
)

// ReservarCommand crea una reserva sobre una propiedad
type ReservarCommand struct {
	sesion      *auth.Sesion
	propiedades *services.PropiedadService
	reservas    *services.ReservaService

	propiedadID uint
	llegada     string
	salida      string
	hora        string
	minuto      string
	periodo     string
	notas       string
}

// NewReservarCommand crea el comando de reserva
func NewReservarCommand(sesion *auth.Sesion, propiedades *services.PropiedadService, reservas *services.ReservaService, propiedadID uint, llegada, salida, hora, minuto, periodo, notas string) *ReservarCommand {
	return &ReservarCommand{
		sesion:      sesion,
		propiedades: propiedades,
		reservas:    reservas,
		propiedadID: propiedadID,
		llegada:     llegada,
		salida:      salida,
		hora:        hora,
		minuto:      minuto,
		periodo:     periodo,
		notas:       notas,
	}
}

func (c *ReservarCommand) Execute() error {
	ctx := context.Background()

	usuario := c.sesion.Usuario()
	if usuario == nil {
		return errors.ErrNoAutenticado
	}

	// El precio vigente se consulta al abrir, como hace la vista
	propiedad, err := c.propiedades.Obtener(ctx, c.propiedadID)
	if err != nil {
		return err
	}

	builder := builders.NewReservaBuilder(usuario.UID, c.propiedadID).
		ConPrecioMensual(propiedad.PrecioMensual).
		ConHora(c.hora, c.minuto, c.periodo).
		ConObservaciones(c.notas)

	if c.llegada != "" {
		fecha, err := time.Parse("2006-01-02", c.llegada)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de llegada no es válida", err)
		}
		builder.SeleccionarFecha(fecha)
	}
	if c.salida != "" {
		fecha, err := time.Parse("2006-01-02", c.salida)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de salida no es válida", err)
		}
		builder.AlternarObjetivo()
		builder.SeleccionarFecha(fecha)
	}

	req, err := builder.Build()
	if err != nil {
		return err
	}

	reserva, err := c.reservas.Crear(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Reserva %d creada por $%.0f (estado: %s)\n", reserva.ID, req.MontoReserva, reserva.Estado)
	return nil
}
