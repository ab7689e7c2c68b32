package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"arriendaya/dto"
	"arriendaya/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarResenasDeLaPropiedad(t *testing.T) {
	r := gin.New()
	r.GET("/api/resenas", func(c *gin.Context) {
		assert.Equal(t, "7", c.Query("propiedad_id"))
		c.JSON(http.StatusOK, []models.Resena{
			{ID: 1, Puntuacion: 5, Comentario: "Excelente"},
			{ID: 2, Puntuacion: 3, Comentario: "Regular"},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewResenaService(clientePara(srv))

	resenas, err := s.Listar(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, resenas, 2)
	assert.Equal(t, 5, resenas[0].Puntuacion)
}

func TestPromedioSeConsultaAparte(t *testing.T) {
	r := gin.New()
	r.GET("/api/resenas/promedio/:id", func(c *gin.Context) {
		assert.Equal(t, "7", c.Param("id"))
		c.JSON(http.StatusOK, dto.PromedioResenas{PropiedadID: 7, Promedio: 4.2, Total: 12})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewResenaService(clientePara(srv))

	promedio, err := s.Promedio(context.Background(), 7)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, promedio.Promedio, 1e-9)
	assert.Equal(t, 12, promedio.Total)
}

func TestCrearResena(t *testing.T) {
	var recibida dto.CrearResenaRequest
	r := gin.New()
	r.POST("/api/resenas", func(c *gin.Context) {
		require.NoError(t, c.BindJSON(&recibida))
		c.JSON(http.StatusCreated, models.Resena{ID: 3, Puntuacion: recibida.Puntuacion})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewResenaService(clientePara(srv))

	creada, err := s.Crear(context.Background(), &dto.CrearResenaRequest{
		UsuarioUID:  "uid-1",
		PropiedadID: 7,
		Puntuacion:  4,
		Comentario:  "Muy buena ubicación",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), creada.ID)
	assert.Equal(t, "uid-1", recibida.UsuarioUID)
	assert.Equal(t, 4, recibida.Puntuacion)
}
