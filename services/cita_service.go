package services

import (
	"context"
	"fmt"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/fetcher"
	"arriendaya/models"
)

// CitaService maneja las citas de visita
type CitaService struct {
	client *api.Client
	envio  fetcher.Mutacion
}

// NewCitaService crea el servicio de citas
func NewCitaService(client *api.Client) *CitaService {
	return &CitaService{client: client}
}

// Crear agenda la cita. El envío está protegido contra el doble clic.
func (s *CitaService) Crear(ctx context.Context, req *dto.CrearCitaRequest) (*models.Cita, error) {
	var creada models.Cita
	err := s.envio.Enviar(ctx, func(ctx context.Context) error {
		return s.client.Post(ctx, constants.RutaCitas, req, &creada)
	})
	if err != nil {
		return nil, err
	}
	return &creada, nil
}

// Listar trae las citas del usuario
func (s *CitaService) Listar(ctx context.Context, usuarioUID string) ([]models.Cita, error) {
	var citas []models.Cita
	if err := s.client.Get(ctx, constants.RutaCitas+"?usuario_uid="+usuarioUID, &citas); err != nil {
		return nil, err
	}
	return citas, nil
}

// ActualizarEstado transiciona la cita
func (s *CitaService) ActualizarEstado(ctx context.Context, id uint, estado string) error {
	cuerpo := dto.ActualizarEstadoRequest{Estado: estado}
	return s.client.Put(ctx, fmt.Sprintf("%s/%d", constants.RutaCitas, id), cuerpo, nil)
}

// Eliminar cancela y borra la cita
func (s *CitaService) Eliminar(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", constants.RutaCitas, id), nil)
}

// EnvioEnCurso indica si hay una cita en vuelo
func (s *CitaService) EnvioEnCurso() bool {
	return s.envio.EnCurso()
}
