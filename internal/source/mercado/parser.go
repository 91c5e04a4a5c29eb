package mercado

import (
	"fmt"
	"time"

	"mercado_fetcher/internal/domain"
)

// Parsers map raw API records onto domain records. They do no I/O and are
// close to passthrough: dates are coerced to time.Time, optional fields stay
// pointers. Field names the decoder does not recognize were already dropped
// at decode time, so new API fields never break a run.

func parseSolicitud(raw SolicitudData) (domain.Solicitud, error) {
	fechaSolicitud, err := parseFecha(raw.FechaSolicitud)
	if err != nil {
		return domain.Solicitud{}, fmt.Errorf("solicitud %s: fechaSolicitud: %w", raw.Codigo, err)
	}

	fechaActualizacion, err := parseFecha(raw.FechaActualizacion)
	if err != nil {
		return domain.Solicitud{}, fmt.Errorf("solicitud %s: fechaActualizacion: %w", raw.Codigo, err)
	}

	return domain.Solicitud{
		Codigo:             raw.Codigo,
		Estado:             raw.Estado,
		Tipo:               raw.Tipo,
		Distribuidora:      raw.Distribuidora,
		Provincia:          raw.Provincia,
		PotenciaKW:         raw.PotenciaKW,
		FechaSolicitud:     fechaSolicitud,
		FechaActualizacion: fechaActualizacion,
	}, nil
}

func parseDocumento(raw DocumentoData) (domain.Documento, error) {
	fechaPublicacion, err := parseFecha(raw.FechaPublicacion)
	if err != nil {
		return domain.Documento{}, fmt.Errorf("documento %s: fechaPublicacion: %w", raw.Codigo, err)
	}

	return domain.Documento{
		Codigo:           raw.Codigo,
		SolicitudCodigo:  raw.CodigoSolicitud,
		Nombre:           raw.Nombre,
		Tipo:             raw.Tipo,
		URL:              raw.URL,
		FechaPublicacion: fechaPublicacion,
	}, nil
}

func parseInteresado(raw InteresadoData) (domain.Interesado, error) {
	return domain.Interesado{
		Codigo:    raw.Codigo,
		Nombre:    raw.Nombre,
		Tipo:      raw.Tipo,
		Municipio: raw.Municipio,
		Email:     raw.Email,
	}, nil
}

// parseFecha accepts the two date formats the API mixes: RFC3339 timestamps
// and bare dates.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q", s)
	}
	return t, nil
}
