package constants

// Estados de reserva
const (
	ReservaPendiente = "pendiente"
	ReservaAceptada  = "aceptada"
	ReservaCancelada = "cancelada"
)

// Estados de cita
const (
	CitaPendiente = "pendiente"
	CitaAceptada  = "aceptada"
	CitaCancelada = "cancelada"
)

// Estados de oferta
const (
	OfertaSinEnviar = "sin_enviar"
	OfertaEnviada   = "enviada"
)

// Estados de propiedad
const (
	PropiedadActiva   = 1
	PropiedadInactiva = 0
)
