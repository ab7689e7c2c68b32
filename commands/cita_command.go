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

// CitaCommand agenda una cita de visita a una propiedad
type CitaCommand struct {
	sesion *auth.Sesion
	citas  *services.CitaService

	propiedadID uint
	fecha       string
	hora        string
	minuto      string
	periodo     string
}

// NewCitaCommand crea el comando de cita
func NewCitaCommand(sesion *auth.Sesion, citas *services.CitaService, propiedadID uint, fecha, hora, minuto, periodo string) *CitaCommand {
	return &CitaCommand{
		sesion:      sesion,
		citas:       citas,
		propiedadID: propiedadID,
		fecha:       fecha,
		hora:        hora,
		minuto:      minuto,
		periodo:     periodo,
	}
}

func (c *CitaCommand) Execute() error {
	ctx := context.Background()

	usuario := c.sesion.Usuario()
	if usuario == nil {
		return errors.ErrNoAutenticado
	}

	builder := builders.NewCitaBuilder(usuario.UID, c.propiedadID).
		ConHora(c.hora, c.minuto, c.periodo)

	if c.fecha != "" {
		fecha, err := time.Parse("2006-01-02", c.fecha)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de la cita no es válida", err)
		}
		builder.ConFecha(fecha)
	}

	req, err := builder.Build()
	if err != nil {
		return err
	}

	cita, err := c.citas.Crear(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Cita %d agendada para el %s a las %s\n", cita.ID, req.Fecha, req.Hora)
	return nil
}
