package auth

import (
	"context"
	"sync"

	"arriendaya/api"
	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/errors"
	"arriendaya/models"
	"arriendaya/services/logger"
)

// Evento es una transición del estado de autenticación. Usuario es nil
// cuando la sesión se cierra.
type Evento struct {
	Usuario      *Identidad
	EsArrendador bool
}

// Sesion es el contexto de autenticación de toda la aplicación: envuelve
// al proveedor de identidad, expone la identidad vigente y notifica cada
// transición a los suscriptores.
type Sesion struct {
	proveedor Proveedor
	client    *api.Client
	log       logger.Logger

	mu           sync.Mutex
	usuario      *Identidad
	esArrendador bool
	cargando     bool
	subs         []chan Evento
}

// NewSesion crea la sesión. El cliente se usa para la verificación de
// arrendador y el auto-registro del usuario en el backend.
func NewSesion(proveedor Proveedor, client *api.Client, log logger.Logger) *Sesion {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Sesion{
		proveedor: proveedor,
		client:    client,
		log:       log,
	}
}

// Usuario devuelve la identidad vigente, o nil si no hay sesión
func (s *Sesion) Usuario() *Identidad {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usuario
}

// Token entrega el token bearer vigente; sirve como api.TokenSource
func (s *Sesion) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usuario == nil {
		return ""
	}
	return s.usuario.Token
}

// EsArrendador indica si la identidad vigente también es arrendador
func (s *Sesion) EsArrendador() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.esArrendador
}

// Cargando indica si hay una operación de autenticación en curso
func (s *Sesion) Cargando() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cargando
}

// Suscribir devuelve un canal que recibe cada transición de la sesión
func (s *Sesion) Suscribir() <-chan Evento {
	ch := make(chan Evento, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Sesion) notificar(ev Evento) {
	s.mu.Lock()
	subs := make([]chan Evento, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
			// un suscriptor lento no bloquea la sesión
		}
	}
}

func (s *Sesion) setCargando(v bool) {
	s.mu.Lock()
	s.cargando = v
	s.mu.Unlock()
}

// alIniciarSesion corre en cada inicio de sesión: resuelve si la identidad
// es arrendador y auto-registra el usuario si el backend no lo conoce.
// Se vuelve a correr en cada transición, incluido el refresco del token.
func (s *Sesion) alIniciarSesion(ctx context.Context, id *Identidad) {
	esArrendador := s.verificarArrendador(ctx, id)

	s.mu.Lock()
	s.usuario = id
	s.esArrendador = esArrendador
	s.mu.Unlock()

	s.notificar(Evento{Usuario: id, EsArrendador: esArrendador})
}

// verificarArrendador recorre la lista de arrendadores buscando el uid.
// Cualquier fallo de red degrada a "no es arrendador" en vez de subir a la
// interfaz; solo se registra en el log.
func (s *Sesion) verificarArrendador(ctx context.Context, id *Identidad) bool {
	var arrendadores []models.Arrendador
	if err := s.client.Get(ctx, constants.RutaArrendadores, &arrendadores); err != nil {
		s.log.Error("No se pudo verificar el arrendador: %v", err)
		return false
	}

	for _, a := range arrendadores {
		if a.UID == id.UID {
			return true
		}
	}

	// No es arrendador: verificar que al menos exista como usuario
	var usuario models.Usuario
	err := s.client.Get(ctx, constants.RutaUsuarios+"/"+id.UID, &usuario)
	if err == nil && usuario.UID != "" {
		return false
	}

	if appErr := errors.GetAppError(err); appErr != nil && appErr.Code != errors.ErrCodeNoEncontrado {
		s.log.Error("No se pudo verificar el usuario: %v", err)
		return false
	}

	// Ni arrendador ni usuario: auto-registrar el registro mínimo
	registro := dto.RegistrarUsuarioRequest{
		UID:     id.UID,
		Nombre:  id.Nombre,
		Email:   id.Email,
		FotoURL: id.FotoURL,
	}
	if err := s.client.Post(ctx, constants.RutaUsuarios+"/"+id.UID, registro, nil); err != nil {
		s.log.Error("No se pudo auto-registrar el usuario %s: %v", id.UID, err)
	}

	return false
}

// Login inicia sesión con email y contraseña
func (s *Sesion) Login(ctx context.Context, email, password string) (*Identidad, error) {
	s.setCargando(true)
	defer s.setCargando(false)

	id, err := s.proveedor.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.alIniciarSesion(ctx, id)
	return id, nil
}

// LoginConGoogle inicia sesión con un id_token de Google
func (s *Sesion) LoginConGoogle(ctx context.Context, idToken string) (*Identidad, error) {
	s.setCargando(true)
	defer s.setCargando(false)

	id, err := s.proveedor.LoginConGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}

	s.alIniciarSesion(ctx, id)
	return id, nil
}

// Registrar crea la cuenta en el proveedor y deja la sesión iniciada
func (s *Sesion) Registrar(ctx context.Context, email, password, nombre string) (*Identidad, error) {
	s.setCargando(true)
	defer s.setCargando(false)

	id, err := s.proveedor.Registrar(ctx, email, password, nombre)
	if err != nil {
		return nil, err
	}

	s.alIniciarSesion(ctx, id)
	return id, nil
}

// Logout cierra la sesión local
func (s *Sesion) Logout() {
	s.mu.Lock()
	s.usuario = nil
	s.esArrendador = false
	s.mu.Unlock()

	s.notificar(Evento{Usuario: nil})
}

// EnviarRestablecerPassword manda el correo de restablecimiento
func (s *Sesion) EnviarRestablecerPassword(ctx context.Context, email string) error {
	return s.proveedor.EnviarRestablecerPassword(ctx, email)
}

// ConfirmarRestablecer confirma el restablecimiento con el código recibido
func (s *Sesion) ConfirmarRestablecer(ctx context.Context, codigo, nuevaPassword string) error {
	return s.proveedor.ConfirmarRestablecer(ctx, codigo, nuevaPassword)
}
