package models

import "time"

// Propiedad refleja una propiedad publicada en el backend.
// El cliente nunca la persiste; solo vive mientras dura la vista.
type Propiedad struct {
	ID             uint           `json:"id"`
	Titulo         string         `json:"titulo"`
	Descripcion    string         `json:"descripcion"`
	Direccion      string         `json:"direccion"`
	Ciudad         string         `json:"ciudad"`
	PrecioMensual  float64        `json:"precio_mensual"`
	Latitud        float64        `json:"latitud"`
	Longitud       float64        `json:"longitud"`
	Imagenes       []string       `json:"imagenes"`
	ArrendadorUID  string         `json:"arrendador_uid"`
	Estado         int            `json:"estado"`
	Vistas         int            `json:"vistas"`
	FechaCreacion  time.Time      `json:"fecha_creacion"`
	Caracteristica Caracteristica `json:"caracteristicas"`
}

// Caracteristica agrupa los atributos de una propiedad
type Caracteristica struct {
	PropiedadID    uint `json:"propiedad_id"`
	Wifi           bool `json:"wifi"`
	Amoblada       bool `json:"amoblada"`
	AdmiteMascotas bool `json:"admite_mascotas"`
	Habitaciones   int  `json:"habitaciones"`
	Banos          int  `json:"banos"`
}

// Imagen es una imagen asociada a una propiedad
type Imagen struct {
	ID          uint   `json:"id"`
	PropiedadID uint   `json:"propiedad_id"`
	URL         string `json:"url"`
}
