package fetcher

import (
	"context"
	"sync"
	"time"

	"arriendaya/errors"

	"github.com/karlseguin/ccache/v3"
)

// Recurso representa un dato remoto con su estado de carga. Reemplaza el
// patrón repetido de "pedir al montar y guardar cargando/error" que antes
// vivía duplicado en cada vista.
type Recurso[T any] struct {
	mu       sync.Mutex
	cache    *ccache.Cache[T]
	ttl      time.Duration
	datos    T
	cargando bool
	err      error
}

// NewRecurso crea un recurso con caché TTL. Con ttl cero no se cachea.
func NewRecurso[T any](ttl time.Duration) *Recurso[T] {
	r := &Recurso[T]{ttl: ttl}
	if ttl > 0 {
		r.cache = ccache.New(ccache.Configure[T]().MaxSize(256))
	}
	return r
}

// Cargar obtiene el dato con fn, pasando primero por la caché. Mientras
// corre, Cargando() devuelve true; el resultado o el error quedan
// disponibles en los accesores.
func (r *Recurso[T]) Cargar(ctx context.Context, clave string, fn func(context.Context) (T, error)) (T, error) {
	if r.cache != nil && clave != "" {
		if item := r.cache.Get(clave); item != nil && !item.Expired() {
			valor := item.Value()
			r.mu.Lock()
			r.datos = valor
			r.err = nil
			r.mu.Unlock()
			return valor, nil
		}
	}

	r.mu.Lock()
	r.cargando = true
	r.mu.Unlock()

	valor, err := fn(ctx)

	r.mu.Lock()
	r.cargando = false
	r.err = err
	if err == nil {
		r.datos = valor
	}
	r.mu.Unlock()

	if err == nil && r.cache != nil && clave != "" {
		r.cache.Set(clave, valor, r.ttl)
	}

	return valor, err
}

// Invalidar descarta una entrada de la caché
func (r *Recurso[T]) Invalidar(clave string) {
	if r.cache != nil {
		r.cache.Delete(clave)
	}
}

// Datos devuelve el último valor cargado
func (r *Recurso[T]) Datos() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.datos
}

// Cargando indica si hay una carga en curso
func (r *Recurso[T]) Cargando() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cargando
}

// Err devuelve el error de la última carga
func (r *Recurso[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Mutacion protege un envío contra el doble clic: mientras hay una
// petición en vuelo, los reintentos se rechazan en vez de duplicar
// registros en el backend.
type Mutacion struct {
	mu      sync.Mutex
	enCurso bool
}

// Enviar ejecuta fn si no hay otro envío en curso
func (m *Mutacion) Enviar(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	if m.enCurso {
		m.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeEnvioEnCurso, "Ya hay un envío en curso", nil)
	}
	m.enCurso = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.enCurso = false
		m.mu.Unlock()
	}()

	return fn(ctx)
}

// EnCurso indica si hay un envío en vuelo
func (m *Mutacion) EnCurso() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enCurso
}
