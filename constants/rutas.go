package constants

// Rutas del backend REST
const (
	RutaPropiedades     = "/api/propiedades"
	RutaCaracteristicas = "/api/caracteristicas"
	RutaImagenes        = "/api/images"
	RutaReservas        = "/api/reserva"
	RutaCitas           = "/api/citas"
	RutaOfertas         = "/api/ofertas"
	RutaResenas         = "/api/resenas"
	RutaFavoritos       = "/api/favorites"
	RutaArrendadores    = "/api/arrendador"
	RutaUsuarios        = "/api/usuario"
)
