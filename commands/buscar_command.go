package commands

import (
	"context"
	"fmt"

	"arriendaya/dto"
	"arriendaya/services"
)

// BuscarCommand busca propiedades por término o filtros
type BuscarCommand struct {
	propiedades *services.PropiedadService
	termino     string
	filtros     *dto.FiltrosBusqueda
}

// NewBuscarCommand crea el comando de búsqueda
func NewBuscarCommand(propiedades *services.PropiedadService, termino string, filtros *dto.FiltrosBusqueda) *BuscarCommand {
	return &BuscarCommand{
		propiedades: propiedades,
		termino:     termino,
		filtros:     filtros,
	}
}

func (c *BuscarCommand) Execute() error {
	ctx := context.Background()

	resultados, err := c.propiedades.Buscar(ctx, c.termino, c.filtros)
	if err != nil {
		return err
	}

	if len(resultados) == 0 {
		fmt.Println("No se encontraron propiedades.")
		if c.termino != "" {
			// Con los títulos del listado general se arma la sugerencia
			todas, err := c.propiedades.Listar(ctx)
			if err == nil {
				if sugerencia := c.propiedades.Sugerencia(c.termino, todas); sugerencia != "" {
					fmt.Printf("¿Quisiste decir %q?\n", sugerencia)
				}
			}
		}
		return nil
	}

	for _, p := range resultados {
		fmt.Printf("[%d] %s - %s - $%.0f/mes\n", p.ID, p.Titulo, p.Ciudad, p.PrecioMensual)
	}
	return nil
}
