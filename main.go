package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"arriendaya/api"
	"arriendaya/auth"
	"arriendaya/commands"
	"arriendaya/config"
	"arriendaya/dto"
	"arriendaya/services"
	"arriendaya/services/logger"
	"arriendaya/utils"
)

func uso() {
	fmt.Println(`Uso: arriendaya <comando> [argumentos]

Comandos:
  login <email> <password>                     iniciar sesión
  buscar [término]                             buscar propiedades
  reservar <id> <llegada> [salida]             crear una reserva (fechas AAAA-MM-DD)
  cita <id> <fecha> <hora> <minuto> <AM|PM>    agendar una visita
  ofertar <id> <monto> <mensaje>               enviar una oferta de precio
  favorito <id>                                alternar favorito

La sesión se inicia con ARRIENDAYA_EMAIL y ARRIENDAYA_PASSWORD.`)
}

func main() {
	config.LoadEnv()

	if len(os.Args) < 2 {
		uso()
		os.Exit(1)
	}

	lg := logger.NewDefaultLogger(logger.InfoLevel)

	// El cliente toma el token de la sesión mediante el cierre; la sesión
	// todavía no existe cuando se construye el cliente
	var sesion *auth.Sesion
	client := api.NewClient(config.BaseURL(), func() string {
		if sesion == nil {
			return ""
		}
		return sesion.Token()
	})

	ctx := context.Background()

	proveedor, err := auth.NewProveedorIdentidad(ctx, config.IdentityAPIKey())
	if err != nil {
		log.Fatalf("No se pudo inicializar el proveedor de identidad: %v", err)
	}
	sesion = auth.NewSesion(proveedor, client, lg)

	if email := config.GetEnv("ARRIENDAYA_EMAIL"); email != "" {
		if _, err := sesion.Login(ctx, email, config.GetEnv("ARRIENDAYA_PASSWORD")); err != nil {
			log.Fatalf("No se pudo iniciar sesión: %v", err)
		}
		utils.LogInfo("Sesión iniciada como %s", email)
	}

	propiedades := services.NewPropiedadService(client, lg)
	reservas := services.NewReservaService(client)
	citas := services.NewCitaService(client)
	ofertas := services.NewOfertaService(client)
	favoritos := services.NewFavoritoService(client, lg)

	cmd, err := armarComando(sesion, propiedades, reservas, citas, ofertas, favoritos)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		uso()
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		utils.LogError("El comando %s falló: %v", os.Args[1], err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func armarComando(sesion *auth.Sesion, propiedades *services.PropiedadService, reservas *services.ReservaService, citas *services.CitaService, ofertas *services.OfertaService, favoritos *services.FavoritoService) (commands.Command, error) {
	args := os.Args[2:]

	parseID := func(s string) (uint, error) {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("el id de la propiedad no es válido: %q", s)
		}
		return uint(id), nil
	}

	switch os.Args[1] {
	case "login":
		if len(args) < 2 {
			return nil, fmt.Errorf("login necesita <email> <password>")
		}
		return commands.NewLoginCommand(sesion, args[0], args[1]), nil

	case "buscar":
		termino := ""
		if len(args) > 0 {
			termino = args[0]
		}
		return commands.NewBuscarCommand(propiedades, termino, &dto.FiltrosBusqueda{}), nil

	case "reservar":
		if len(args) < 2 {
			return nil, fmt.Errorf("reservar necesita al menos <id> y <llegada>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		salida := ""
		if len(args) > 2 {
			salida = args[2]
		}
		return commands.NewReservarCommand(sesion, propiedades, reservas, id, args[1], salida, "09", "00", "AM", ""), nil

	case "cita":
		if len(args) < 5 {
			return nil, fmt.Errorf("cita necesita <id> <fecha> <hora> <minuto> <AM|PM>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return commands.NewCitaCommand(sesion, citas, id, args[1], args[2], args[3], args[4]), nil

	case "ofertar":
		if len(args) < 3 {
			return nil, fmt.Errorf("ofertar necesita <id> <monto> <mensaje>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return commands.NewOfertarCommand(sesion, propiedades, ofertas, id, args[1], args[2]), nil

	case "favorito":
		if len(args) < 1 {
			return nil, fmt.Errorf("favorito necesita <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return commands.NewFavoritoCommand(sesion, favoritos, id), nil
	}

	return nil, fmt.Errorf("comando desconocido: %q", os.Args[1])
}
