package builders

import (
	"strconv"

	"arriendaya/constants"
	"arriendaya/dto"
	"arriendaya/errors"
	"arriendaya/utils"
	"arriendaya/validator"
)

// OfertaBuilder arma el borrador de una oferta de precio. El monto se
// refleja entre el campo de texto (solo dígitos) y el deslizador acotado
// a [0.5*base, 1.2*base] en pasos de 1000. Una vez enviada, el borrador
// queda bloqueado: solo se puede cancelar.
type OfertaBuilder struct {
	usuarioUID  string
	propiedadID uint
	precioBase  float64

	monto   float64
	mensaje string
	estado  string
}

// NewOfertaBuilder crea el borrador partiendo del precio base
func NewOfertaBuilder(usuarioUID string, propiedadID uint, precioBase float64) *OfertaBuilder {
	return &OfertaBuilder{
		usuarioUID:  usuarioUID,
		propiedadID: propiedadID,
		precioBase:  precioBase,
		monto:       precioBase,
		estado:      constants.OfertaSinEnviar,
	}
}

// EscribirMonto toma el texto del campo numérico, lo sanitiza a dígitos
// y ajusta el resultado a los límites del deslizador
func (b *OfertaBuilder) EscribirMonto(texto string) *OfertaBuilder {
	digitos := utils.SoloDigitos(texto)
	if digitos == "" {
		return b
	}

	valor, err := strconv.ParseFloat(digitos, 64)
	if err != nil {
		return b
	}

	b.monto = utils.AjustarOferta(valor, b.precioBase)
	return b
}

// DeslizarMonto toma el valor del deslizador y lo ajusta a los límites
func (b *OfertaBuilder) DeslizarMonto(valor float64) *OfertaBuilder {
	b.monto = utils.AjustarOferta(valor, b.precioBase)
	return b
}

// ConMensaje fija la justificación de la oferta
func (b *OfertaBuilder) ConMensaje(mensaje string) *OfertaBuilder {
	b.mensaje = mensaje
	return b
}

// Monto devuelve el monto vigente del borrador
func (b *OfertaBuilder) Monto() float64 {
	return b.monto
}

// Enviada indica si la oferta ya fue enviada
func (b *OfertaBuilder) Enviada() bool {
	return b.estado == constants.OfertaEnviada
}

// MarcarEnviada bloquea el borrador después de que el backend confirma
func (b *OfertaBuilder) MarcarEnviada() {
	b.estado = constants.OfertaEnviada
}

// Cancelar descarta la oferta enviada y vuelve al estado inicial
func (b *OfertaBuilder) Cancelar() {
	b.monto = b.precioBase
	b.mensaje = ""
	b.estado = constants.OfertaSinEnviar
}

// Build arma la petición final. Sin justificación no se construye nada
// y no sale ninguna petición; tras el envío no hay renegociación.
func (b *OfertaBuilder) Build() (*dto.CrearOfertaRequest, error) {
	if b.Enviada() {
		return nil, errors.ErrOfertaEnviada
	}

	req := &dto.CrearOfertaRequest{
		UsuarioUID:     b.usuarioUID,
		PropiedadID:    b.propiedadID,
		PrecioOfrecido: b.monto,
		Mensaje:        b.mensaje,
	}

	if err := validator.ValidarOferta(req); err != nil {
		return nil, err
	}

	return req, nil
}
