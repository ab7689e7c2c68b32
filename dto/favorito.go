package dto

// FavoritoRow es la fila cruda que devuelve GET /api/favorites. El backend
// no es consistente con el nombre del identificador de la propiedad, así
// que la normalización se hace una sola vez aquí.
type FavoritoRow struct {
	PropiedadID uint          `json:"propiedadId"`
	ID          uint          `json:"id"`
	Propiedad   *PropiedadRef `json:"propiedad,omitempty"`
}

// PropiedadRef es la referencia anidada que algunas filas traen
type PropiedadRef struct {
	MongoID uint `json:"_id"`
	ID      uint `json:"id"`
}

// PropiedadIDNormalizado resuelve el identificador de la propiedad sin
// importar bajo qué alias lo haya mandado el backend
func (f *FavoritoRow) PropiedadIDNormalizado() uint {
	if f.PropiedadID != 0 {
		return f.PropiedadID
	}
	if f.Propiedad != nil {
		if f.Propiedad.MongoID != 0 {
			return f.Propiedad.MongoID
		}
		if f.Propiedad.ID != 0 {
			return f.Propiedad.ID
		}
	}
	return f.ID
}
