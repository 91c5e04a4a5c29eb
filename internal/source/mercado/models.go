package mercado

// pagina is the envelope every endpoint wraps its results in. Fields the
// decoder does not know about pass through untouched.
type pagina[T any] struct {
	Pagina          int `json:"pagina"`
	TotalPaginas    int `json:"totalPaginas"`
	TotalResultados int `json:"totalResultados"`
	Resultados      []T `json:"resultados"`
}

// SolicitudData mirrors one solicitud record as the API returns it.
type SolicitudData struct {
	Codigo             string   `json:"codigo"`
	Estado             string   `json:"estado"`
	Tipo               string   `json:"tipo"`
	Distribuidora      *string  `json:"distribuidora"`
	Provincia          *string  `json:"provincia"`
	PotenciaKW         *float64 `json:"potenciaKw"`
	FechaSolicitud     string   `json:"fechaSolicitud"`
	FechaActualizacion string   `json:"fechaActualizacion"`
}

type DocumentoData struct {
	Codigo           string  `json:"codigo"`
	CodigoSolicitud  string  `json:"codigoSolicitud"`
	Nombre           string  `json:"nombre"`
	Tipo             *string `json:"tipo"`
	URL              *string `json:"url"`
	FechaPublicacion string  `json:"fechaPublicacion"`
}

type InteresadoData struct {
	Codigo    string  `json:"codigo"`
	Nombre    string  `json:"nombre"`
	Tipo      *string `json:"tipo"`
	Municipio *string `json:"municipio"`
	Email     *string `json:"email"`
}
