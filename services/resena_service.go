package services

import (
	"context"
	"fmt"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/models"
)

// ResenaService maneja las reseñas y su promedio
type ResenaService struct {
	client *api.Client
}

// NewResenaService crea el servicio de reseñas
func NewResenaService(client *api.Client) *ResenaService {
	return &ResenaService{client: client}
}

// Listar trae las reseñas de una propiedad
func (s *ResenaService) Listar(ctx context.Context, propiedadID uint) ([]models.Resena, error) {
	var resenas []models.Resena
	if err := s.client.Get(ctx, fmt.Sprintf("%s?propiedad_id=%d", constants.RutaResenas, propiedadID), &resenas); err != nil {
		return nil, err
	}
	return resenas, nil
}

// Promedio trae el promedio agregado; se consulta aparte del listado
func (s *ResenaService) Promedio(ctx context.Context, propiedadID uint) (*dto.PromedioResenas, error) {
	var promedio dto.PromedioResenas
	if err := s.client.Get(ctx, fmt.Sprintf("%s/promedio/%d", constants.RutaResenas, propiedadID), &promedio); err != nil {
		return nil, err
	}
	return &promedio, nil
}

// Crear publica una reseña del usuario autenticado
func (s *ResenaService) Crear(ctx context.Context, req *dto.CrearResenaRequest) (*models.Resena, error) {
	var creada models.Resena
	if err := s.client.Post(ctx, constants.RutaResenas, req, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}
