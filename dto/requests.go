package dto

// CrearReservaRequest es el cuerpo del POST /api/reserva
type CrearReservaRequest struct {
	UsuarioUID    string  `json:"usuario_uid"`
	PropiedadID   uint    `json:"propiedad_id"`
	FechaInicio   string  `json:"fecha_inicio"`
	FechaFin      string  `json:"fecha_fin"`
	HoraLlegada   string  `json:"hora_llegada"`
	MontoReserva  float64 `json:"monto_reserva"`
	Observaciones string  `json:"observaciones"`
}

// CrearCitaRequest es el cuerpo del POST /api/citas
type CrearCitaRequest struct {
	UsuarioUID  string `json:"usuario_uid"`
	PropiedadID uint   `json:"propiedad_id"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
}

// CrearOfertaRequest es el cuerpo del POST /api/ofertas
type CrearOfertaRequest struct {
	UsuarioUID     string  `json:"usuario_uid"`
	PropiedadID    uint    `json:"propiedad_id"`
	PrecioOfrecido float64 `json:"precio_ofrecido"`
	Mensaje        string  `json:"mensaje"`
}

// CrearResenaRequest es el cuerpo del POST /api/resenas
type CrearResenaRequest struct {
	UsuarioUID  string `json:"usuario_uid"`
	PropiedadID uint   `json:"propiedad_id"`
	Puntuacion  int    `json:"puntuacion"`
	Comentario  string `json:"comentario"`
}

// RegistrarUsuarioRequest es el cuerpo del POST /api/usuario/:uid
type RegistrarUsuarioRequest struct {
	UID     string `json:"uid"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	FotoURL string `json:"foto_url"`
}

// ActualizarEstadoRequest cambia el estado de una reserva o cita
type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}
