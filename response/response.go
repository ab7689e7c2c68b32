package response

import (
	"fmt"
	"net/http"
	"strings"

	"arriendaya/errors"

	"github.com/goccy/go-json"
)

// cuerpoError son las formas de cuerpo de error que manda el backend
type cuerpoError struct {
	Mensaje string `json:"mensaje"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MensajeDeError extrae el mensaje de un cuerpo de error. Intenta
// decodificarlo como JSON y si no se puede devuelve el texto crudo.
func MensajeDeError(body []byte) string {
	var cuerpo cuerpoError
	if err := json.Unmarshal(body, &cuerpo); err == nil {
		switch {
		case cuerpo.Mensaje != "":
			return cuerpo.Mensaje
		case cuerpo.Message != "":
			return cuerpo.Message
		case cuerpo.Error != "":
			return cuerpo.Error
		}
	}
	return strings.TrimSpace(string(body))
}

// ErrorDelBackend construye el AppError para una respuesta no 2xx,
// conservando el mensaje del servidor tal cual llegó
func ErrorDelBackend(status int, body []byte) *errors.AppError {
	mensaje := MensajeDeError(body)
	if mensaje == "" {
		mensaje = fmt.Sprintf("el servidor respondió %d", status)
	}

	code := errors.ErrCodeBackend
	if status == http.StatusNotFound {
		code = errors.ErrCodeNoEncontrado
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		code = errors.ErrCodeNoAutenticado
	}

	return errors.NewAppError(code, mensaje, nil)
}

// Decode decodifica el cuerpo de una respuesta 2xx
func Decode(body []byte, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewAppError(errors.ErrCodeRespuesta, "La respuesta del servidor no tiene la forma esperada", err)
	}
	return nil
}
