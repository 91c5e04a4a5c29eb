package domain

import "time"

// Solicitud is a market access request as published by the API.
// Codigo is the API's identifier and the storage natural key.
type Solicitud struct {
	ID                 int64
	Codigo             string
	Estado             string
	Tipo               string
	Distribuidora      *string
	Provincia          *string
	PotenciaKW         *float64
	FechaSolicitud     time.Time
	FechaActualizacion time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Documento is a document attached to a Solicitud, unique by its own
// codigo and referencing the parent by solicitud codigo.
type Documento struct {
	ID               int64
	Codigo           string
	SolicitudCodigo  string
	Nombre           string
	Tipo             *string
	URL              *string
	FechaPublicacion time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Interesado is a stakeholder/party record from the related endpoint.
type Interesado struct {
	ID        int64
	Codigo    string
	Nombre    string
	Tipo      *string
	Municipio *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunState tracks extraction progress per entity.
type RunState struct {
	ID             int64     `db:"id"`
	Entity         string    `db:"entity"`
	LastRunAt      time.Time `db:"last_run_at"`
	LastPage       int       `db:"last_page"`
	TotalExtracted int64     `db:"total_extracted"`
}
