package validator

import (
	"regexp"
	"time"

	"arriendaya/dto"
	"arriendaya/errors"
)

// MensajeCitaSinFecha es el mensaje cuando se agenda una cita sin fecha
const MensajeCitaSinFecha = "Por favor, selecciona una fecha."

// MensajeOfertaSinMensaje es el mensaje cuando la oferta no trae justificación
const MensajeOfertaSinMensaje = "El mensaje es obligatorio al crear una oferta."

// ValidarReserva valida la reserva antes de enviarla al backend
func ValidarReserva(req *dto.CrearReservaRequest) error {
	if req.UsuarioUID == "" {
		return errors.NewAppError(errors.ErrCodeNoAutenticado, "Debes iniciar sesión para reservar", nil)
	}

	if req.PropiedadID == 0 {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, "La propiedad no es válida", nil)
	}

	if req.FechaInicio == "" {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, "Debes seleccionar la fecha de llegada", nil)
	}

	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de llegada no es válida", err)
	}

	if req.FechaFin != "" {
		fin, err := time.Parse("2006-01-02", req.FechaFin)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de salida no es válida", err)
		}
		if fin.Before(inicio) {
			return errors.NewAppError(errors.ErrCodeValidacion, "La fecha de salida debe ser posterior a la llegada", nil)
		}
	}

	if req.MontoReserva <= 0 {
		return errors.NewAppError(errors.ErrCodeMontoInvalido, "El monto de la reserva no es válido", nil)
	}

	return nil
}

// ValidarCita valida la cita antes de enviarla al backend
func ValidarCita(req *dto.CrearCitaRequest) error {
	if req.UsuarioUID == "" {
		return errors.NewAppError(errors.ErrCodeNoAutenticado, "Debes iniciar sesión para agendar una cita", nil)
	}

	if req.PropiedadID == 0 {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, "La propiedad no es válida", nil)
	}

	if req.Fecha == "" {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, MensajeCitaSinFecha, nil)
	}

	if _, err := time.Parse("2006-01-02", req.Fecha); err != nil {
		return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La fecha de la cita no es válida", err)
	}

	if _, err := time.Parse("15:04:05", req.Hora); err != nil {
		return errors.NewAppError(errors.ErrCodeFormatoInvalido, "La hora de la cita no es válida", err)
	}

	return nil
}

// ValidarOferta valida la oferta antes de enviarla al backend
func ValidarOferta(req *dto.CrearOfertaRequest) error {
	if req.UsuarioUID == "" {
		return errors.NewAppError(errors.ErrCodeNoAutenticado, "Debes iniciar sesión para ofertar", nil)
	}

	if req.PropiedadID == 0 {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, "La propiedad no es válida", nil)
	}

	if req.PrecioOfrecido <= 0 {
		return errors.NewAppError(errors.ErrCodeMontoInvalido, "El precio ofrecido no es válido", nil)
	}

	if req.Mensaje == "" {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, MensajeOfertaSinMensaje, nil)
	}

	return nil
}

// ValidarResena valida la reseña antes de enviarla al backend
func ValidarResena(req *dto.CrearResenaRequest) error {
	if req.UsuarioUID == "" {
		return errors.NewAppError(errors.ErrCodeNoAutenticado, "Debes iniciar sesión para reseñar", nil)
	}

	if req.Puntuacion < 1 || req.Puntuacion > 5 {
		return errors.NewAppError(errors.ErrCodeValidacion, "La puntuación debe estar entre 1 y 5", nil)
	}

	if req.Comentario == "" {
		return errors.NewAppError(errors.ErrCodeCampoObligatorio, "El comentario no puede estar vacío", nil)
	}

	return nil
}

// ValidarEmail verifica que el email sea válido
func ValidarEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeEmailInvalido, "El email no es válido", nil)
	}
	return nil
}

// ValidarPassword verifica que la contraseña sea válida
func ValidarPassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodePasswordInvalida, "La contraseña debe tener al menos 6 caracteres", nil)
	}
	return nil
}
