package services

import (
	"context"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/models"
)

// UsuarioService maneja los registros de usuario y arrendador
type UsuarioService struct {
	client *api.Client
}

// NewUsuarioService crea el servicio de usuarios
func NewUsuarioService(client *api.Client) *UsuarioService {
	return &UsuarioService{client: client}
}

// Obtener trae el registro de usuario por uid
func (s *UsuarioService) Obtener(ctx context.Context, uid string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.client.Get(ctx, constants.RutaUsuarios+"/"+uid, &usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Registrar crea el registro mínimo de usuario
func (s *UsuarioService) Registrar(ctx context.Context, req *dto.RegistrarUsuarioRequest) error {
	return s.client.Post(ctx, constants.RutaUsuarios+"/"+req.UID, req, nil)
}

// ListarArrendadores trae la lista completa de arrendadores
func (s *UsuarioService) ListarArrendadores(ctx context.Context) ([]models.Arrendador, error) {
	var arrendadores []models.Arrendador
	if err := s.client.Get(ctx, constants.RutaArrendadores, &arrendadores); err != nil {
		return nil, err
	}
	return arrendadores, nil
}

// RegistrarArrendador da de alta al usuario como arrendador
func (s *UsuarioService) RegistrarArrendador(ctx context.Context, arrendador *models.Arrendador) error {
	return s.client.Post(ctx, constants.RutaArrendadores, arrendador, nil)
}
