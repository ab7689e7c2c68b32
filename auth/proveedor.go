package auth

import (
	"context"
	"time"

	"arriendaya/errors"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Identidad es la identidad autenticada que expone la sesión
type Identidad struct {
	UID          string
	Nombre       string
	Email        string
	FotoURL      string
	Token        string
	RefreshToken string
	Expira       time.Time
}

// Proveedor define las operaciones del proveedor de identidad externo
type Proveedor interface {
	Login(ctx context.Context, email, password string) (*Identidad, error)
	LoginConGoogle(ctx context.Context, idToken string) (*Identidad, error)
	Registrar(ctx context.Context, email, password, nombre string) (*Identidad, error)
	EnviarRestablecerPassword(ctx context.Context, email string) error
	ConfirmarRestablecer(ctx context.Context, codigo, nuevaPassword string) error
}

// ProveedorIdentidad implementa Proveedor sobre el Identity Toolkit de Google
type ProveedorIdentidad struct {
	svc *identitytoolkit.Service
}

// NewProveedorIdentidad crea el proveedor con la API key del proyecto
func NewProveedorIdentidad(ctx context.Context, apiKey string) (*ProveedorIdentidad, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey), option.WithoutAuthentication())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRed, "No se pudo inicializar el proveedor de identidad", err)
	}
	return &ProveedorIdentidad{svc: svc}, nil
}

func identidadDesdeLogin(uid, nombre, email, foto, token, refresh string, expiraEn int64) *Identidad {
	return &Identidad{
		UID:          uid,
		Nombre:       nombre,
		Email:        email,
		FotoURL:      foto,
		Token:        token,
		RefreshToken: refresh,
		Expira:       time.Now().Add(time.Duration(expiraEn) * time.Second),
	}
}

// Login inicia sesión con email y contraseña
func (p *ProveedorIdentidad) Login(ctx context.Context, email, password string) (*Identidad, error) {
	resp, err := p.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCredenciales, "Email o contraseña incorrectos", err)
	}

	return identidadDesdeLogin(resp.LocalId, resp.DisplayName, resp.Email, resp.PhotoUrl, resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// LoginConGoogle inicia sesión con un id_token de Google OAuth
func (p *ProveedorIdentidad) LoginConGoogle(ctx context.Context, idToken string) (*Identidad, error) {
	resp, err := p.svc.Relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          "id_token=" + idToken + "&providerId=google.com",
		RequestUri:        "http://localhost",
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCredenciales, "No se pudo iniciar sesión con Google", err)
	}

	return identidadDesdeLogin(resp.LocalId, resp.DisplayName, resp.Email, resp.PhotoUrl, resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// Registrar crea una cuenta nueva con email y contraseña
func (p *ProveedorIdentidad) Registrar(ctx context.Context, email, password, nombre string) (*Identidad, error) {
	resp, err := p.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: nombre,
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCredenciales, "No se pudo crear la cuenta", err)
	}

	return identidadDesdeLogin(resp.LocalId, resp.DisplayName, resp.Email, "", resp.IdToken, resp.RefreshToken, resp.ExpiresIn), nil
}

// EnviarRestablecerPassword manda el correo de restablecimiento
func (p *ProveedorIdentidad) EnviarRestablecerPassword(ctx context.Context, email string) error {
	_, err := p.svc.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	if err != nil {
		return errors.NewAppError(errors.ErrCodeRed, "No se pudo enviar el correo de restablecimiento", err)
	}
	return nil
}

// ConfirmarRestablecer confirma el restablecimiento con el código recibido
func (p *ProveedorIdentidad) ConfirmarRestablecer(ctx context.Context, codigo, nuevaPassword string) error {
	_, err := p.svc.Relyingparty.ResetPassword(&identitytoolkit.IdentitytoolkitRelyingpartyResetPasswordRequest{
		OobCode:     codigo,
		NewPassword: nuevaPassword,
	}).Context(ctx).Do()
	if err != nil {
		return errors.NewAppError(errors.ErrCodePasswordInvalida, "No se pudo restablecer la contraseña", err)
	}
	return nil
}
