package dto

import "arriendaya/models"

// FiltrosBusqueda son los filtros por características aplicables al listado
type FiltrosBusqueda struct {
	Ciudad       *string  `json:"ciudad,omitempty"`
	PrecioMin    *float64 `json:"precio_min,omitempty"`
	PrecioMax    *float64 `json:"precio_max,omitempty"`
	Wifi         *bool    `json:"wifi,omitempty"`
	Amoblada     *bool    `json:"amoblada,omitempty"`
	Mascotas     *bool    `json:"mascotas,omitempty"`
	Habitaciones *int     `json:"habitaciones,omitempty"`
	Banos        *int     `json:"banos,omitempty"`
}

// Vacios indica si no hay ningún filtro aplicado
func (f *FiltrosBusqueda) Vacios() bool {
	if f == nil {
		return true
	}
	return f.Ciudad == nil && f.PrecioMin == nil && f.PrecioMax == nil &&
		f.Wifi == nil && f.Amoblada == nil && f.Mascotas == nil &&
		f.Habitaciones == nil && f.Banos == nil
}

// BusquedaEnvelope es el sobre {data:[...]} que devuelve el endpoint de
// búsqueda por texto. El listado plano y el filtrado devuelven el arreglo
// sin sobre; la diferencia viene del contrato del backend.
type BusquedaEnvelope struct {
	Data []models.Propiedad `json:"data"`
}

// PromedioResenas es la respuesta del promedio de reseñas de una propiedad
type PromedioResenas struct {
	PropiedadID uint    `json:"propiedad_id"`
	Promedio    float64 `json:"promedio"`
	Total       int     `json:"total"`
}
