package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"arriendaya/errors"

	"github.com/goccy/go-json"
)

// ResultadoGeocodificacion es una entrada de la respuesta del servicio de
// geocodificación (formato Nominatim: lat y lon vienen como cadenas)
type ResultadoGeocodificacion struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// MejorCoordenadaDeRespuesta toma la primera coordenada de la respuesta
func MejorCoordenadaDeRespuesta(body io.Reader) (float64, float64, error) {
	var resultados []ResultadoGeocodificacion
	if err := json.NewDecoder(body).Decode(&resultados); err != nil {
		return 0, 0, fmt.Errorf("no se pudo interpretar la respuesta: %w", err)
	}

	if len(resultados) == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeNoEncontrado, "La dirección no arrojó resultados", nil)
	}

	mejor := resultados[0] // el primer resultado es el de mayor relevancia
	lat, err := strconv.ParseFloat(mejor.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitud inválida: %w", err)
	}
	lon, err := strconv.ParseFloat(mejor.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitud inválida: %w", err)
	}
	return lat, lon, nil
}

// CoordenadasDeDireccion consulta el servicio externo para obtener las
// coordenadas de una dirección
func CoordenadasDeDireccion(geocodeURL, direccion, ciudad string) (float64, float64, error) {
	completa := fmt.Sprintf("%s, %s", direccion, ciudad)

	apiURL := fmt.Sprintf(
		"%s/search?q=%s&format=json&limit=1",
		geocodeURL,
		url.QueryEscape(completa),
	)

	resp, err := http.Get(apiURL)
	if err != nil {
		return 0, 0, fmt.Errorf("no se pudo consultar el servicio de geocodificación: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("el servicio respondió %d", resp.StatusCode)
	}

	return MejorCoordenadaDeRespuesta(resp.Body)
}

// DireccionDeCoordenadas hace la geocodificación inversa
func DireccionDeCoordenadas(geocodeURL string, lat, lon float64) (string, error) {
	apiURL := fmt.Sprintf(
		"%s/reverse?lat=%f&lon=%f&format=json",
		geocodeURL, lat, lon,
	)

	resp, err := http.Get(apiURL)
	if err != nil {
		return "", fmt.Errorf("no se pudo consultar el servicio de geocodificación: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("el servicio respondió %d", resp.StatusCode)
	}

	var resultado ResultadoGeocodificacion
	if err := json.NewDecoder(resp.Body).Decode(&resultado); err != nil {
		return "", fmt.Errorf("no se pudo interpretar la respuesta: %w", err)
	}

	return resultado.DisplayName, nil
}
