package services

import (
	"context"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/fetcher"
	"arriendaya/models"
)

// OfertaService maneja las ofertas de precio
type OfertaService struct {
	client *api.Client
	envio  fetcher.Mutacion
}

// NewOfertaService crea el servicio de ofertas
func NewOfertaService(client *api.Client) *OfertaService {
	return &OfertaService{client: client}
}

// Crear envía la oferta. Una sola en vuelo a la vez.
func (s *OfertaService) Crear(ctx context.Context, req *dto.CrearOfertaRequest) (*models.Oferta, error) {
	var creada models.Oferta
	err := s.envio.Enviar(ctx, func(ctx context.Context) error {
		return s.client.Post(ctx, constants.RutaOfertas, req, &creada)
	})
	if err != nil {
		return nil, err
	}
	return &creada, nil
}

// EnvioEnCurso indica si hay una oferta en vuelo
func (s *OfertaService) EnvioEnCurso() bool {
	return s.envio.EnCurso()
}
