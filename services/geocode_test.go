package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arriendaya/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMejorCoordenadaDeRespuesta(t *testing.T) {
	cuerpo := `[
		{"lat":"4.6482837","lon":"-74.0631419","display_name":"Chapinero, Bogotá"},
		{"lat":"4.60971","lon":"-74.08175","display_name":"Bogotá"}
	]`

	lat, lon, err := MejorCoordenadaDeRespuesta(strings.NewReader(cuerpo))
	require.NoError(t, err)
	assert.InDelta(t, 4.6482837, lat, 1e-9)
	assert.InDelta(t, -74.0631419, lon, 1e-9)
}

func TestMejorCoordenadaSinResultados(t *testing.T) {
	_, _, err := MejorCoordenadaDeRespuesta(strings.NewReader(`[]`))
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNoEncontrado, appErr.Code)
}

func TestMejorCoordenadaConCuerpoInvalido(t *testing.T) {
	_, _, err := MejorCoordenadaDeRespuesta(strings.NewReader(`no es json`))
	assert.Error(t, err)

	_, _, err = MejorCoordenadaDeRespuesta(strings.NewReader(`[{"lat":"abc","lon":"1"}]`))
	assert.Error(t, err)
}

func TestCoordenadasDeDireccion(t *testing.T) {
	var query map[string][]string
	r := gin.New()
	r.GET("/search", func(c *gin.Context) {
		query = c.Request.URL.Query()
		c.JSON(http.StatusOK, []ResultadoGeocodificacion{
			{Lat: "6.2476376", Lon: "-75.5658153", DisplayName: "Medellín"},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	lat, lon, err := CoordenadasDeDireccion(srv.URL, "Carrera 43A #1-50", "Medellín")
	require.NoError(t, err)
	assert.InDelta(t, 6.2476376, lat, 1e-9)
	assert.InDelta(t, -75.5658153, lon, 1e-9)

	assert.Equal(t, "Carrera 43A #1-50, Medellín", query["q"][0])
	assert.Equal(t, "json", query["format"][0])
}

func TestDireccionDeCoordenadas(t *testing.T) {
	r := gin.New()
	r.GET("/reverse", func(c *gin.Context) {
		c.JSON(http.StatusOK, ResultadoGeocodificacion{DisplayName: "Chapinero, Bogotá, Colombia"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	nombre, err := DireccionDeCoordenadas(srv.URL, 4.648, -74.063)
	require.NoError(t, err)
	assert.Equal(t, "Chapinero, Bogotá, Colombia", nombre)
}
