package models

import "time"

// Usuario refleja el registro mínimo de usuario en el backend
type Usuario struct {
	UID      string `json:"uid"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	FotoURL  string `json:"foto_url"`
	Telefono string `json:"telefono"`
}

// Arrendador refleja un registro de arrendador
type Arrendador struct {
	UID      string `json:"uid"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// Resena refleja una reseña de una propiedad
type Resena struct {
	ID          uint      `json:"id"`
	UsuarioUID  string    `json:"usuario_uid"`
	PropiedadID uint      `json:"propiedad_id"`
	Puntuacion  int       `json:"puntuacion"`
	Comentario  string    `json:"comentario"`
	Fecha       time.Time `json:"fecha"`
}

// Favorito refleja una propiedad marcada como favorita por un usuario
type Favorito struct {
	UsuarioUID  string `json:"usuario_uid"`
	PropiedadID uint   `json:"propiedad_id"`
}
