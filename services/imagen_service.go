package services

import (
	"context"
	"fmt"
	"io"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/errors"
	"arriendaya/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImagenService maneja las imágenes de una propiedad: el listado viene
// del backend y la subida va directo a Cloudinary
type ImagenService struct {
	client *api.Client
	cld    *cloudinary.Cloudinary
}

// NewImagenService crea el servicio de imágenes
func NewImagenService(client *api.Client, cld *cloudinary.Cloudinary) *ImagenService {
	return &ImagenService{client: client, cld: cld}
}

// Listar trae las imágenes de una propiedad
func (s *ImagenService) Listar(ctx context.Context, propiedadID uint) ([]models.Imagen, error) {
	var imagenes []models.Imagen
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%d", constants.RutaImagenes, propiedadID), &imagenes); err != nil {
		return nil, err
	}
	return imagenes, nil
}

// Subir sube un archivo a Cloudinary y devuelve la URL segura
func (s *ImagenService) Subir(ctx context.Context, archivo io.Reader) (string, error) {
	if s.cld == nil {
		return "", errors.NewAppError(errors.ErrCodeRed, "El servicio de imágenes no está configurado", nil)
	}

	resp, err := s.cld.Upload.Upload(ctx, archivo, uploader.UploadParams{Folder: "propiedades"})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeRed, "La subida de la imagen falló", err)
	}
	return resp.SecureURL, nil
}

// SubirVarias sube varios archivos y devuelve las URLs en orden
func (s *ImagenService) SubirVarias(ctx context.Context, archivos []io.Reader) ([]string, error) {
	var urls []string
	for _, archivo := range archivos {
		u, err := s.Subir(ctx, archivo)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}
