package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"arriendaya/errors"
	"arriendaya/response"

	"github.com/goccy/go-json"
)

// TokenSource entrega el token bearer vigente, o cadena vacía si no hay sesión
type TokenSource func() string

// Client es el cliente HTTP contra el backend REST. Todas las vistas pasan
// por aquí: agrega el token, codifica JSON y traduce los errores del
// servidor conservando el mensaje original.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   TokenSource
}

// NewClient crea un cliente apuntando al origen indicado
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeFormatoInvalido, "No se pudo codificar la petición", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeRed, "No se pudo construir la petición", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errors.NewAppError(errors.ErrCodeTiempoAgotado, "El servidor tardó demasiado en responder", err)
		}
		return errors.NewAppError(errors.ErrCodeRed, "No se pudo contactar al servidor", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeRed, "No se pudo leer la respuesta", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response.ErrorDelBackend(resp.StatusCode, data)
	}

	return response.Decode(data, out)
}

// Get hace un GET y decodifica la respuesta en out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post hace un POST con cuerpo JSON
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put hace un PUT con cuerpo JSON
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete hace un DELETE
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}
