package commands

import (
	"context"
	"fmt"

	"arriendaya/auth"
	"arriendaya/builders"
	"arriendaya/errors"
	"arriendaya/services"
)

// OfertarCommand envía una oferta de precio sobre una propiedad
type OfertarCommand struct {
	sesion      *auth.Sesion
	propiedades *services.PropiedadService
	ofertas     *services.OfertaService

	propiedadID uint
	monto       string
	mensaje     string
}

// NewOfertarCommand crea el comando de oferta
func NewOfertarCommand(sesion *auth.Sesion, propiedades *services.PropiedadService, ofertas *services.OfertaService, propiedadID uint, monto, mensaje string) *OfertarCommand {
	return &OfertarCommand{
		sesion:      sesion,
		propiedades: propiedades,
		ofertas:     ofertas,
		propiedadID: propiedadID,
		monto:       monto,
		mensaje:     mensaje,
	}
}

func (c *OfertarCommand) Execute() error {
	ctx := context.Background()

	usuario := c.sesion.Usuario()
	if usuario == nil {
		return errors.ErrNoAutenticado
	}

	propiedad, err := c.propiedades.Obtener(ctx, c.propiedadID)
	if err != nil {
		return err
	}

	builder := builders.NewOfertaBuilder(usuario.UID, c.propiedadID, propiedad.PrecioMensual).
		EscribirMonto(c.monto).
		ConMensaje(c.mensaje)

	req, err := builder.Build()
	if err != nil {
		return err
	}

	oferta, err := c.ofertas.Crear(ctx, req)
	if err != nil {
		return err
	}

	builder.MarcarEnviada()
	fmt.Printf("Oferta %d enviada por $%.0f\n", oferta.ID, req.PrecioOfrecido)
	return nil
}
