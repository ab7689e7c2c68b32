package fetcher

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerSoloEjecutaLaUltima(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var ejecuciones int32
	var ultima atomic.Value

	// Simula a alguien tecleando: varias llamadas seguidas
	for _, termino := range []string{"a", "ap", "apa", "apartamento"} {
		termino := termino
		d.Ejecutar(func() {
			atomic.AddInt32(&ejecuciones, 1)
			ultima.Store(termino)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&ejecuciones))
	assert.Equal(t, "apartamento", ultima.Load())
}

func TestDebouncerCancelar(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var ejecuciones int32
	d.Ejecutar(func() {
		atomic.AddInt32(&ejecuciones, 1)
	})
	d.Cancelar()

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&ejecuciones))
}

func TestDebouncerRetardoPorDefecto(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, RetardoBusqueda, d.retardo)
}
