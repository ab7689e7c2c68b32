package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/fetcher"
	"arriendaya/models"
	"arriendaya/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// PropiedadService maneja el listado, la búsqueda y el CRUD de propiedades
type PropiedadService struct {
	client   *api.Client
	log      logger.Logger
	listado  *fetcher.Recurso[[]models.Propiedad]
	debounce *fetcher.Debouncer
}

// NewPropiedadService crea el servicio de propiedades
func NewPropiedadService(client *api.Client, log logger.Logger) *PropiedadService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropiedadService{
		client:   client,
		log:      log,
		listado:  fetcher.NewRecurso[[]models.Propiedad](2 * time.Minute),
		debounce: fetcher.NewDebouncer(fetcher.RetardoBusqueda),
	}
}

// normalizar limpia el término de búsqueda: minúsculas y sin tildes
func normalizar(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Listar trae el listado completo de propiedades (arreglo sin sobre)
func (s *PropiedadService) Listar(ctx context.Context) ([]models.Propiedad, error) {
	return s.listado.Cargar(ctx, "propiedades:todas", func(ctx context.Context) ([]models.Propiedad, error) {
		var propiedades []models.Propiedad
		if err := s.client.Get(ctx, constants.RutaPropiedades, &propiedades); err != nil {
			return nil, err
		}
		return propiedades, nil
	})
}

// BuscarTexto consulta el endpoint de búsqueda por texto. Este endpoint
// devuelve el sobre {data:[...]}, a diferencia del listado plano.
func (s *PropiedadService) BuscarTexto(ctx context.Context, termino string) ([]models.Propiedad, error) {
	q := url.Values{}
	q.Set("q", normalizar(termino))

	var envelope dto.BusquedaEnvelope
	if err := s.client.Get(ctx, constants.RutaPropiedades+"/buscar?"+q.Encode(), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Filtrar consulta el endpoint de filtrado por características
func (s *PropiedadService) Filtrar(ctx context.Context, filtros *dto.FiltrosBusqueda) ([]models.Propiedad, error) {
	q := url.Values{}
	if filtros.Ciudad != nil {
		q.Set("ciudad", *filtros.Ciudad)
	}
	if filtros.PrecioMin != nil {
		q.Set("precio_min", strconv.FormatFloat(*filtros.PrecioMin, 'f', -1, 64))
	}
	if filtros.PrecioMax != nil {
		q.Set("precio_max", strconv.FormatFloat(*filtros.PrecioMax, 'f', -1, 64))
	}
	if filtros.Wifi != nil {
		q.Set("wifi", strconv.FormatBool(*filtros.Wifi))
	}
	if filtros.Amoblada != nil {
		q.Set("amoblada", strconv.FormatBool(*filtros.Amoblada))
	}
	if filtros.Mascotas != nil {
		q.Set("mascotas", strconv.FormatBool(*filtros.Mascotas))
	}
	if filtros.Habitaciones != nil {
		q.Set("habitaciones", strconv.Itoa(*filtros.Habitaciones))
	}
	if filtros.Banos != nil {
		q.Set("banos", strconv.Itoa(*filtros.Banos))
	}

	var propiedades []models.Propiedad
	if err := s.client.Get(ctx, constants.RutaPropiedades+"/filtrar?"+q.Encode(), &propiedades); err != nil {
		return nil, err
	}
	return propiedades, nil
}

// Buscar aplica la precedencia: término de búsqueda > filtros > listado
func (s *PropiedadService) Buscar(ctx context.Context, termino string, filtros *dto.FiltrosBusqueda) ([]models.Propiedad, error) {
	if strings.TrimSpace(termino) != "" {
		return s.BuscarTexto(ctx, termino)
	}
	if !filtros.Vacios() {
		return s.Filtrar(ctx, filtros)
	}
	return s.Listar(ctx)
}

// BuscarConRetardo agrupa las teclas del buscador y dispara una sola
// petición cuando el usuario deja de escribir
func (s *PropiedadService) BuscarConRetardo(ctx context.Context, termino string, filtros *dto.FiltrosBusqueda, entregar func([]models.Propiedad, error)) {
	s.debounce.Ejecutar(func() {
		entregar(s.Buscar(ctx, termino, filtros))
	})
}

// Obtener trae una propiedad por id
func (s *PropiedadService) Obtener(ctx context.Context, id uint) (*models.Propiedad, error) {
	var propiedad models.Propiedad
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%d", constants.RutaPropiedades, id), &propiedad); err != nil {
		return nil, err
	}
	return &propiedad, nil
}

// Crear publica una propiedad nueva (paso de datos básicos del formulario)
func (s *PropiedadService) Crear(ctx context.Context, propiedad *models.Propiedad) (*models.Propiedad, error) {
	var creada models.Propiedad
	if err := s.client.Post(ctx, constants.RutaPropiedades, propiedad, &creada); err != nil {
		return nil, err
	}
	s.listado.Invalidar("propiedades:todas")
	return &creada, nil
}

// Actualizar modifica una propiedad del arrendador
func (s *PropiedadService) Actualizar(ctx context.Context, propiedad *models.Propiedad) error {
	err := s.client.Put(ctx, fmt.Sprintf("%s/%d", constants.RutaPropiedades, propiedad.ID), propiedad, nil)
	if err == nil {
		s.listado.Invalidar("propiedades:todas")
	}
	return err
}

// Desactivar baja la propiedad sin borrarla (baja blanda)
func (s *PropiedadService) Desactivar(ctx context.Context, id uint) error {
	cuerpo := map[string]int{"estado": constants.PropiedadInactiva}
	err := s.client.Put(ctx, fmt.Sprintf("%s/%d/estado", constants.RutaPropiedades, id), cuerpo, nil)
	if err == nil {
		s.listado.Invalidar("propiedades:todas")
	}
	return err
}

// Eliminar borra la propiedad
func (s *PropiedadService) Eliminar(ctx context.Context, id uint) error {
	err := s.client.Delete(ctx, fmt.Sprintf("%s/%d", constants.RutaPropiedades, id), nil)
	if err == nil {
		s.listado.Invalidar("propiedades:todas")
	}
	return err
}

// GuardarCaracteristicas crea o actualiza las características (paso dos
// del formulario de publicación)
func (s *PropiedadService) GuardarCaracteristicas(ctx context.Context, carac *models.Caracteristica, existentes bool) error {
	if existentes {
		return s.client.Put(ctx, fmt.Sprintf("%s/%d", constants.RutaCaracteristicas, carac.PropiedadID), carac, nil)
	}
	return s.client.Post(ctx, constants.RutaCaracteristicas, carac, nil)
}

// IncrementarVistas sube el contador de vistas. Es un efecto secundario
// no crítico: el fallo solo queda en el log.
func (s *PropiedadService) IncrementarVistas(ctx context.Context, id uint) {
	if err := s.client.Post(ctx, fmt.Sprintf("%s/%d/vistas", constants.RutaPropiedades, id), nil, nil); err != nil {
		s.log.Error("No se pudo incrementar las vistas de la propiedad %d: %v", id, err)
	}
}

// similitud entre dos cadenas en [0,1] usando distancia de Levenshtein
func similitud(a, b string) float64 {
	distancia := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distancia)/maxLen
}

// Sugerencia propone un título parecido cuando la búsqueda no devolvió
// nada, sobre los títulos ya vistos en el listado
func (s *PropiedadService) Sugerencia(termino string, propiedades []models.Propiedad) string {
	if len(propiedades) == 0 {
		return ""
	}

	titulos := make([]string, 0, len(propiedades))
	vistos := make(map[string]bool)
	for _, p := range propiedades {
		t := normalizar(p.Titulo)
		if t != "" && !vistos[t] {
			vistos[t] = true
			titulos = append(titulos, t)
		}
	}
	if len(titulos) == 0 {
		return ""
	}

	cm := closestmatch.New(titulos, []int{2, 3})
	candidato := cm.Closest(normalizar(termino))
	if candidato == "" {
		return ""
	}

	// Solo sugerir si el parecido es razonable
	if similitud(normalizar(termino), candidato) < 0.4 {
		return ""
	}
	return candidato
}
