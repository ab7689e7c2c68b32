package models

// Reserva refleja una reserva creada por un usuario
type Reserva struct {
	ID            uint    `json:"id"`
	UsuarioUID    string  `json:"usuario_uid"`
	PropiedadID   uint    `json:"propiedad_id"`
	FechaInicio   string  `json:"fecha_inicio"`
	FechaFin      string  `json:"fecha_fin"`
	HoraLlegada   string  `json:"hora_llegada"`
	MontoReserva  float64 `json:"monto_reserva"`
	Observaciones string  `json:"observaciones"`
	Estado        string  `json:"estado"`
}

// Cita refleja una cita de visita a una propiedad
type Cita struct {
	ID          uint   `json:"id"`
	UsuarioUID  string `json:"usuario_uid"`
	PropiedadID uint   `json:"propiedad_id"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Estado      string `json:"estado"`
}

// Oferta refleja una oferta de precio sobre una propiedad
type Oferta struct {
	ID             uint    `json:"id"`
	UsuarioUID     string  `json:"usuario_uid"`
	PropiedadID    uint    `json:"propiedad_id"`
	PrecioOfrecido float64 `json:"precio_ofrecido"`
	Mensaje        string  `json:"mensaje"`
	Estado         string  `json:"estado"`
}
