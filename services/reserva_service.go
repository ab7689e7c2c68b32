package services

import (
	"context"
	"fmt"
	"time"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/fetcher"
	"arriendaya/models"
)

// TiempoListadoReservas es el tope de espera del listado de reservas
const TiempoListadoReservas = 10 * time.Second

// ReservaService maneja las reservas contra el backend
type ReservaService struct {
	client *api.Client
	envio  fetcher.Mutacion
}

// NewReservaService crea el servicio de reservas
func NewReservaService(client *api.Client) *ReservaService {
	return &ReservaService{client: client}
}

// Crear envía la reserva. El envío está protegido contra el doble clic.
func (s *ReservaService) Crear(ctx context.Context, req *dto.CrearReservaRequest) (*models.Reserva, error) {
	var creada models.Reserva
	err := s.envio.Enviar(ctx, func(ctx context.Context) error {
		return s.client.Post(ctx, constants.RutaReservas, req, &creada)
	})
	if err != nil {
		return nil, err
	}
	return &creada, nil
}

// Listar trae las reservas del usuario. Es la única consulta con tope de
// espera propio: a los 10 segundos se aborta.
func (s *ReservaService) Listar(ctx context.Context, usuarioUID string) ([]models.Reserva, error) {
	ctx, cancel := context.WithTimeout(ctx, TiempoListadoReservas)
	defer cancel()

	var reservas []models.Reserva
	if err := s.client.Get(ctx, constants.RutaReservas+"?usuario_uid="+usuarioUID, &reservas); err != nil {
		return nil, err
	}
	return reservas, nil
}

// ListarPorPropiedad trae las reservas de una propiedad (vista del arrendador)
func (s *ReservaService) ListarPorPropiedad(ctx context.Context, propiedadID uint) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.client.Get(ctx, fmt.Sprintf("%s?propiedad_id=%d", constants.RutaReservas, propiedadID), &reservas); err != nil {
		return nil, err
	}
	return reservas, nil
}

// ActualizarEstado transiciona la reserva (acción del arrendador)
func (s *ReservaService) ActualizarEstado(ctx context.Context, id uint, estado string) error {
	cuerpo := dto.ActualizarEstadoRequest{Estado: estado}
	return s.client.Put(ctx, fmt.Sprintf("%s/%d", constants.RutaReservas, id), cuerpo, nil)
}

// EnvioEnCurso indica si hay una reserva en vuelo (deshabilita el botón)
func (s *ReservaService) EnvioEnCurso() bool {
	return s.envio.EnCurso()
}
