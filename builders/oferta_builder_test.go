package builders

import (
	"testing"

	"arriendaya/errors"
	"arriendaya/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfertaMontoAcotado(t *testing.T) {
	base := 800000.0
	b := NewOfertaBuilder("uid-1", 7, base)

	// El deslizador no puede salirse del rango
	b.DeslizarMonto(100000)
	assert.Equal(t, base*0.5, b.Monto())

	b.DeslizarMonto(5000000)
	assert.Equal(t, base*1.2, b.Monto())

	b.DeslizarMonto(700000)
	assert.Equal(t, 700000.0, b.Monto())
}

func TestOfertaCampoDeTexto(t *testing.T) {
	b := NewOfertaBuilder("uid-1", 7, 800000)

	// El campo numérico sanitiza a dígitos y ajusta al rango
	b.EscribirMonto("$ 650.000")
	assert.Equal(t, 650000.0, b.Monto())

	// Texto sin dígitos no cambia el monto
	b.EscribirMonto("no es un número")
	assert.Equal(t, 650000.0, b.Monto())
}

func TestOfertaSinMensajeNoSeArma(t *testing.T) {
	b := NewOfertaBuilder("uid-1", 7, 800000)

	_, err := b.Build()
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, validator.MensajeOfertaSinMensaje, appErr.Message)
}

func TestOfertaUnSoloEnvio(t *testing.T) {
	b := NewOfertaBuilder("uid-1", 7, 800000).ConMensaje("puedo pagar esto")

	_, err := b.Build()
	require.NoError(t, err)

	// Después del envío el borrador queda bloqueado
	b.MarcarEnviada()
	assert.True(t, b.Enviada())

	_, err = b.Build()
	assert.ErrorIs(t, err, errors.ErrOfertaEnviada)

	// Cancelar vuelve al estado inicial
	b.Cancelar()
	assert.False(t, b.Enviada())
	assert.Equal(t, 800000.0, b.Monto())

	b.ConMensaje("otra justificación")
	_, err = b.Build()
	assert.NoError(t, err)
}
