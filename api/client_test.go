package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"arriendaya/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetAdjuntaElToken(t *testing.T) {
	var auth string
	r := gin.New()
	r.GET("/api/ping", func(c *gin.Context) {
		auth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	cliente := NewClient(srv.URL, func() string { return "abc123" })

	var out map[string]bool
	require.NoError(t, cliente.Get(context.Background(), "/api/ping", &out))
	assert.Equal(t, "Bearer abc123", auth)
	assert.True(t, out["ok"])
}

func TestSinSesionNoViajaElHeader(t *testing.T) {
	var auth string
	r := gin.New()
	r.GET("/api/ping", func(c *gin.Context) {
		auth = c.GetHeader("Authorization")
		c.Status(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	cliente := NewClient(srv.URL, func() string { return "" })
	require.NoError(t, cliente.Get(context.Background(), "/api/ping", nil))
	assert.Empty(t, auth)
}

func TestPostCodificaElCuerpo(t *testing.T) {
	var contentType string
	var cuerpo map[string]interface{}
	r := gin.New()
	r.POST("/api/cosas", func(c *gin.Context) {
		contentType = c.ContentType()
		require.NoError(t, c.BindJSON(&cuerpo))
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	cliente := NewClient(srv.URL, nil)
	require.NoError(t, cliente.Post(context.Background(), "/api/cosas", map[string]string{"nombre": "x"}, nil))

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "x", cuerpo["nombre"])
}

func TestServidorApagadoEsErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cliente := NewClient(srv.URL, nil)
	err := cliente.Get(context.Background(), "/api/ping", nil)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeRed, appErr.Code)
}

func TestRecortaLaBarraFinal(t *testing.T) {
	cliente := NewClient("http://localhost:3001/", nil)
	assert.Equal(t, "http://localhost:3001", cliente.BaseURL)
}
