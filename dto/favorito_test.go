package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropiedadIDNormalizado(t *testing.T) {
	casos := []struct {
		nombre string
		fila   FavoritoRow
		quiero uint
	}{
		{"alias directo", FavoritoRow{PropiedadID: 7}, 7},
		{"anidado con _id", FavoritoRow{Propiedad: &PropiedadRef{MongoID: 4}}, 4},
		{"anidado con id", FavoritoRow{Propiedad: &PropiedadRef{ID: 5}}, 5},
		{"id de la fila", FavoritoRow{ID: 9}, 9},
		{"fila vacía", FavoritoRow{}, 0},
		// El alias directo gana sobre los demás
		{"precedencia", FavoritoRow{PropiedadID: 7, ID: 9, Propiedad: &PropiedadRef{MongoID: 4, ID: 5}}, 7},
		{"precedencia anidada", FavoritoRow{Propiedad: &PropiedadRef{MongoID: 4, ID: 5}}, 4},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.quiero, c.fila.PropiedadIDNormalizado())
		})
	}
}
