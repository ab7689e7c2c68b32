package commands

import (
	"context"
	"fmt"

	"arriendaya/auth"
	"arriendaya/validator"
)

// LoginCommand inicia sesión con email y contraseña y deja la identidad
// disponible para los demás comandos
type LoginCommand struct {
	sesion   *auth.Sesion
	email    string
	password string
}

// NewLoginCommand crea el comando de inicio de sesión
func NewLoginCommand(sesion *auth.Sesion, email, password string) *LoginCommand {
	return &LoginCommand{
		sesion:   sesion,
		email:    email,
		password: password,
	}
}

func (c *LoginCommand) Execute() error {
	if err := validator.ValidarEmail(c.email); err != nil {
		return err
	}
	if err := validator.ValidarPassword(c.password); err != nil {
		return err
	}

	id, err := c.sesion.Login(context.Background(), c.email, c.password)
	if err != nil {
		return err
	}

	if c.sesion.EsArrendador() {
		fmt.Printf("Sesión iniciada como %s (arrendador)\n", id.Email)
	} else {
		fmt.Printf("Sesión iniciada como %s\n", id.Email)
	}
	return nil
}
