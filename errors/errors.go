package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error
type ErrorCode string

const (
	// Errores de autenticación
	ErrCodeNoAutenticado    ErrorCode = "NO_AUTENTICADO"
	ErrCodeTokenInvalido    ErrorCode = "TOKEN_INVALIDO"
	ErrCodeTokenExpirado    ErrorCode = "TOKEN_EXPIRADO"
	ErrCodeCredenciales     ErrorCode = "CREDENCIALES_INVALIDAS"
	ErrCodeEmailInvalido    ErrorCode = "EMAIL_INVALIDO"
	ErrCodePasswordInvalida ErrorCode = "PASSWORD_INVALIDA"

	// Errores de red y del backend
	ErrCodeRed           ErrorCode = "ERROR_RED"
	ErrCodeRespuesta     ErrorCode = "RESPUESTA_INVALIDA"
	ErrCodeBackend       ErrorCode = "ERROR_BACKEND"
	ErrCodeNoEncontrado  ErrorCode = "NO_ENCONTRADO"
	ErrCodeTiempoAgotado ErrorCode = "TIEMPO_AGOTADO"
	ErrCodeEnvioEnCurso  ErrorCode = "ENVIO_EN_CURSO"

	// Errores de validación
	ErrCodeValidacion       ErrorCode = "ERROR_VALIDACION"
	ErrCodeCampoObligatorio ErrorCode = "CAMPO_OBLIGATORIO"
	ErrCodeFormatoInvalido  ErrorCode = "FORMATO_INVALIDO"
	ErrCodeMontoInvalido    ErrorCode = "MONTO_INVALIDO"
)

// AppError define el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica si el error es un AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrae el AppError de un error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Errores de sesión
	ErrNoAutenticado   = errors.New("no hay una sesión activa")
	ErrSesionCerrada   = errors.New("la sesión fue cerrada")
	ErrUsuarioNoExiste = errors.New("el usuario no existe")

	// Errores de recursos
	ErrPropiedadNoExiste = errors.New("la propiedad no existe")
	ErrReservaInvalida   = errors.New("la reserva no es válida")
	ErrCitaInvalida      = errors.New("la cita no es válida")
	ErrOfertaEnviada     = errors.New("la oferta ya fue enviada")

	// Errores de entrada
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrCampoFaltante   = errors.New("falta un campo obligatorio")
)
