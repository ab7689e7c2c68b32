package response

import (
	"net/http"
	"testing"

	"arriendaya/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMensajeDeError(t *testing.T) {
	casos := []struct {
		nombre string
		cuerpo string
		quiero string
	}{
		{"campo mensaje", `{"mensaje":"La propiedad no existe"}`, "La propiedad no existe"},
		{"campo message", `{"message":"not found"}`, "not found"},
		{"campo error", `{"error":"token vencido"}`, "token vencido"},
		{"texto crudo", "Internal Server Error\n", "Internal Server Error"},
		{"json sin campos conocidos", `{"detalle":"otra cosa"}`, `{"detalle":"otra cosa"}`},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.quiero, MensajeDeError([]byte(c.cuerpo)))
		})
	}
}

func TestErrorDelBackendMapeaLosCodigos(t *testing.T) {
	err := ErrorDelBackend(http.StatusNotFound, []byte(`{"mensaje":"no está"}`))
	assert.Equal(t, errors.ErrCodeNoEncontrado, err.Code)
	assert.Equal(t, "no está", err.Message)

	err = ErrorDelBackend(http.StatusUnauthorized, nil)
	assert.Equal(t, errors.ErrCodeNoAutenticado, err.Code)

	err = ErrorDelBackend(http.StatusForbidden, nil)
	assert.Equal(t, errors.ErrCodeNoAutenticado, err.Code)

	err = ErrorDelBackend(http.StatusInternalServerError, []byte("se cayó"))
	assert.Equal(t, errors.ErrCodeBackend, err.Code)
	assert.Equal(t, "se cayó", err.Message)
}

func TestErrorDelBackendSinCuerpo(t *testing.T) {
	err := ErrorDelBackend(http.StatusBadGateway, nil)
	assert.Equal(t, "el servidor respondió 502", err.Message)
}

func TestDecode(t *testing.T) {
	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(t, Decode([]byte(`{"id":7}`), &out))
	assert.Equal(t, uint(7), out.ID)

	// Cuerpo vacío o sin destino no es un error
	assert.NoError(t, Decode(nil, &out))
	assert.NoError(t, Decode([]byte(`{}`), nil))

	err := Decode([]byte(`no es json`), &out)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRespuesta, appErr.Code)
}
