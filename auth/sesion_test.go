package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"arriendaya/api"
	"arriendaya/dto"
	"arriendaya/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// proveedorFalso responde con una identidad fija sin salir a la red
type proveedorFalso struct {
	identidad *Identidad
	err       error
}

func (p *proveedorFalso) Login(ctx context.Context, email, password string) (*Identidad, error) {
	return p.identidad, p.err
}

func (p *proveedorFalso) LoginConGoogle(ctx context.Context, idToken string) (*Identidad, error) {
	return p.identidad, p.err
}

func (p *proveedorFalso) Registrar(ctx context.Context, email, password, nombre string) (*Identidad, error) {
	return p.identidad, p.err
}

func (p *proveedorFalso) EnviarRestablecerPassword(ctx context.Context, email string) error {
	return p.err
}

func (p *proveedorFalso) ConfirmarRestablecer(ctx context.Context, codigo, nuevaPassword string) error {
	return p.err
}

func identidadDePrueba() *Identidad {
	return &Identidad{
		UID:    "uid-1",
		Nombre: "Ana",
		Email:  "ana@example.com",
		Token:  "tok-1",
	}
}

func TestLoginDetectaAlArrendador(t *testing.T) {
	r := gin.New()
	r.GET("/api/arrendador", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Arrendador{{UID: "uid-1", Nombre: "Ana"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewSesion(&proveedorFalso{identidad: identidadDePrueba()}, api.NewClient(srv.URL, nil), nil)

	id, err := s.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.True(t, s.EsArrendador())
	assert.Equal(t, "tok-1", s.Token())
}

func TestLoginAutoRegistraAlUsuarioNuevo(t *testing.T) {
	var registrado dto.RegistrarUsuarioRequest
	r := gin.New()
	r.GET("/api/arrendador", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Arrendador{})
	})
	r.GET("/api/usuario/:uid", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "el usuario no existe"})
	})
	r.POST("/api/usuario/:uid", func(c *gin.Context) {
		require.NoError(t, c.BindJSON(&registrado))
		c.JSON(http.StatusCreated, gin.H{"uid": registrado.UID})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewSesion(&proveedorFalso{identidad: identidadDePrueba()}, api.NewClient(srv.URL, nil), nil)

	_, err := s.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)

	assert.False(t, s.EsArrendador())
	assert.Equal(t, "uid-1", registrado.UID)
	assert.Equal(t, "ana@example.com", registrado.Email)
}

func TestLoginNoRegistraAlUsuarioConocido(t *testing.T) {
	var posts int
	r := gin.New()
	r.GET("/api/arrendador", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Arrendador{})
	})
	r.GET("/api/usuario/:uid", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Usuario{UID: c.Param("uid")})
	})
	r.POST("/api/usuario/:uid", func(c *gin.Context) {
		posts++
		c.Status(http.StatusCreated)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewSesion(&proveedorFalso{identidad: identidadDePrueba()}, api.NewClient(srv.URL, nil), nil)

	_, err := s.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, 0, posts)
}

func TestBackendCaidoNoImpideElLogin(t *testing.T) {
	// Con el backend fuera de línea la sesión igual se inicia; solo se
	// degrada a "no es arrendador"
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	s := NewSesion(&proveedorFalso{identidad: identidadDePrueba()}, api.NewClient(srv.URL, nil), nil)

	id, err := s.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.False(t, s.EsArrendador())
}

func TestSuscribirRecibeLasTransiciones(t *testing.T) {
	r := gin.New()
	r.GET("/api/arrendador", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Arrendador{{UID: "uid-1"}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := NewSesion(&proveedorFalso{identidad: identidadDePrueba()}, api.NewClient(srv.URL, nil), nil)
	eventos := s.Suscribir()

	_, err := s.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)

	ev := <-eventos
	require.NotNil(t, ev.Usuario)
	assert.Equal(t, "uid-1", ev.Usuario.UID)
	assert.True(t, ev.EsArrendador)

	s.Logout()
	ev = <-eventos
	assert.Nil(t, ev.Usuario)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Usuario())
}
