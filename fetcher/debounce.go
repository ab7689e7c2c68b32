package fetcher

import (
	"sync"
	"time"
)

// RetardoBusqueda es el retardo por defecto del buscador
const RetardoBusqueda = 500 * time.Millisecond

// Debouncer agrupa llamadas repetidas y solo ejecuta la última una vez
// que pasa el retardo sin nuevas llamadas (borde de salida)
type Debouncer struct {
	mu      sync.Mutex
	retardo time.Duration
	timer   *time.Timer
}

// NewDebouncer crea un debouncer; con retardo cero usa RetardoBusqueda
func NewDebouncer(retardo time.Duration) *Debouncer {
	if retardo <= 0 {
		retardo = RetardoBusqueda
	}
	return &Debouncer{retardo: retardo}
}

// Ejecutar programa fn; si llega otra llamada antes del retardo, la
// anterior se descarta
func (d *Debouncer) Ejecutar(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.retardo, fn)
}

// Cancelar descarta la llamada pendiente si la hay
func (d *Debouncer) Cancelar() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
