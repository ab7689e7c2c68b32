package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arriendaya/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListarImagenesDeLaPropiedad(t *testing.T) {
	r := gin.New()
	r.GET("/api/images/:id", func(c *gin.Context) {
		assert.Equal(t, "7", c.Param("id"))
		c.JSON(http.StatusOK, []models.Imagen{
			{ID: 1, PropiedadID: 7, URL: "https://res.example.com/a.jpg"},
			{ID: 2, PropiedadID: 7, URL: "https://res.example.com/b.jpg"},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewImagenService(clientePara(srv), nil)

	imagenes, err := s.Listar(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, imagenes, 2)
	assert.Equal(t, "https://res.example.com/a.jpg", imagenes[0].URL)
}

func TestSubirSinConfigurarFalla(t *testing.T) {
	s := NewImagenService(nil, nil)

	_, err := s.Subir(context.Background(), strings.NewReader("bytes"))
	assert.Error(t, err)

	_, err = s.SubirVarias(context.Background(), []io.Reader{strings.NewReader("bytes")})
	assert.Error(t, err)
}
