package auth

import (
	"strings"
	"time"

	"arriendaya/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"
)

// claimsDelToken decodifica el payload del token sin verificar la firma.
// El cliente solo necesita leer el uid y la expiración; la verificación
// real la hace el backend.
func claimsDelToken(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeTokenInvalido, "El token no es válido", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeTokenInvalido, "No se pudo decodificar el token", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeTokenInvalido, "No se pudo interpretar el token", err)
	}

	return claims, nil
}

// UIDDelToken extrae el uid del token
func UIDDelToken(tokenString string) (string, error) {
	claims, err := claimsDelToken(tokenString)
	if err != nil {
		return "", err
	}

	if uid, ok := claims["user_id"].(string); ok && uid != "" {
		return uid, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}

	return "", errors.NewAppError(errors.ErrCodeTokenInvalido, "El token no trae el uid", nil)
}

// TokenExpirado indica si el token ya venció
func TokenExpirado(tokenString string) bool {
	claims, err := claimsDelToken(tokenString)
	if err != nil {
		return true
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}

	return time.Now().After(time.Unix(int64(exp), 0))
}
