package domain

import (
	"fmt"
	"time"
)

// Entity identifies which API endpoint and table an extraction run covers.
type Entity string

const (
	EntitySolicitudes Entity = "solicitudes"
	EntityDocumentos  Entity = "documentos"
	EntityInteresados Entity = "interesados"
)

// ParseEntity validates a CLI-supplied entity name.
func ParseEntity(s string) (Entity, error) {
	switch Entity(s) {
	case EntitySolicitudes, EntityDocumentos, EntityInteresados:
		return Entity(s), nil
	}
	return "", fmt.Errorf("unknown entity %q", s)
}

// Filters narrow an extraction run. Zero values mean no filtering.
type Filters struct {
	Estado    string
	Provincia string
	Desde     *time.Time
}

// ExtractStats holds statistics about one extraction run.
type ExtractStats struct {
	Entity    Entity
	Pages     int
	Fetched   int
	Persisted int
	Published int
	Duration  time.Duration
}

// ChangeEvent is emitted after a record is committed, for downstream
// consumers of the same tables.
type ChangeEvent struct {
	Entity    Entity    `json:"entity"`
	Codigo    string    `json:"codigo"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
