package services

import (
	"context"
	"fmt"
	"sync"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/services/logger"
)

// FavoritoService maneja los favoritos del usuario autenticado. Mantiene
// el conjunto local para que cada tarjeta no repita la consulta.
type FavoritoService struct {
	client *api.Client
	log    logger.Logger

	mu        sync.Mutex
	favoritos map[uint]bool
	cargado   bool
}

// NewFavoritoService crea el servicio de favoritos
func NewFavoritoService(client *api.Client, log logger.Logger) *FavoritoService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &FavoritoService{
		client:    client,
		log:       log,
		favoritos: make(map[uint]bool),
	}
}

// Cargar trae la lista de favoritos del usuario y normaliza los
// identificadores una sola vez. El fallo no es crítico: queda en el log
// y el conjunto local sigue vacío.
func (s *FavoritoService) Cargar(ctx context.Context, usuarioUID string) error {
	var filas []dto.FavoritoRow
	if err := s.client.Get(ctx, constants.RutaFavoritos+"?usuario_uid="+usuarioUID, &filas); err != nil {
		s.log.Error("No se pudo cargar los favoritos de %s: %v", usuarioUID, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritos = make(map[uint]bool, len(filas))
	for _, fila := range filas {
		if id := fila.PropiedadIDNormalizado(); id != 0 {
			s.favoritos[id] = true
		}
	}
	s.cargado = true
	return nil
}

// EsFavorito indica si la propiedad está marcada como favorita
func (s *FavoritoService) EsFavorito(propiedadID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favoritos[propiedadID]
}

// Alternar marca o desmarca la propiedad. El estado local solo cambia
// después de que el backend confirma.
func (s *FavoritoService) Alternar(ctx context.Context, usuarioUID string, propiedadID uint) (bool, error) {
	s.mu.Lock()
	marcado := s.favoritos[propiedadID]
	s.mu.Unlock()

	if marcado {
		ruta := fmt.Sprintf("%s/%s/%d", constants.RutaFavoritos, usuarioUID, propiedadID)
		if err := s.client.Delete(ctx, ruta, nil); err != nil {
			return marcado, err
		}
	} else {
		cuerpo := map[string]interface{}{
			"usuario_uid":  usuarioUID,
			"propiedad_id": propiedadID,
		}
		if err := s.client.Post(ctx, constants.RutaFavoritos, cuerpo, nil); err != nil {
			return marcado, err
		}
	}

	s.mu.Lock()
	s.favoritos[propiedadID] = !marcado
	s.mu.Unlock()
	return !marcado, nil
}

// Limpiar vacía el conjunto local (al cerrar sesión)
func (s *FavoritoService) Limpiar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritos = make(map[uint]bool)
	s.cargado = false
}
