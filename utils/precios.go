package utils

// Límites de una oferta relativos al precio base
const (
	OfertaFactorMinimo = 0.5
	OfertaFactorMaximo = 1.2
	OfertaIncremento   = 1000
)

// AjustarOferta ajusta el monto ofrecido al incremento permitido y lo
// limita al rango [0.5*base, 1.2*base]
func AjustarOferta(monto, base float64) float64 {
	minimo := base * OfertaFactorMinimo
	maximo := base * OfertaFactorMaximo

	// Redondear al incremento más cercano antes de limitar
	pasos := int((monto + OfertaIncremento/2) / OfertaIncremento)
	monto = float64(pasos) * OfertaIncremento

	if monto < minimo {
		return minimo
	}
	if monto > maximo {
		return maximo
	}
	return monto
}

// SoloDigitos elimina todo carácter que no sea un dígito
func SoloDigitos(s string) string {
	var out []rune
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
