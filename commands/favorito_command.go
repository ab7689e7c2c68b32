package commands

import (
	"context"
	"fmt"

	"arriendaya/auth"
	"arriendaya/errors"
	"arriendaya/services"
)

// FavoritoCommand alterna una propiedad en los favoritos del usuario
type FavoritoCommand struct {
	sesion      *auth.Sesion
	favoritos   *services.FavoritoService
	propiedadID uint
}

// NewFavoritoCommand crea el comando de favoritos
func NewFavoritoCommand(sesion *auth.Sesion, favoritos *services.FavoritoService, propiedadID uint) *FavoritoCommand {
	return &FavoritoCommand{
		sesion:      sesion,
		favoritos:   favoritos,
		propiedadID: propiedadID,
	}
}

func (c *FavoritoCommand) Execute() error {
	ctx := context.Background()

	usuario := c.sesion.Usuario()
	if usuario == nil {
		return errors.ErrNoAutenticado
	}

	if err := c.favoritos.Cargar(ctx, usuario.UID); err != nil {
		return err
	}

	marcado, err := c.favoritos.Alternar(ctx, usuario.UID, c.propiedadID)
	if err != nil {
		return err
	}

	if marcado {
		fmt.Printf("Propiedad %d agregada a favoritos\n", c.propiedadID)
	} else {
		fmt.Printf("Propiedad %d quitada de favoritos\n", c.propiedadID)
	}
	return nil
}
