package commands

// Command define la interfaz de los comandos de la aplicación
type Command interface {
	Execute() error
}
