package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"mercado_fetcher/internal/domain"
)

type SolicitudStore struct {
	db *sqlx.DB
}

func NewSolicitudStore(db *sqlx.DB) *SolicitudStore {
	return &SolicitudStore{db: db}
}

// Upsert inserts the solicitud or, when its codigo already exists, updates
// the mutable fields. The natural key is never touched on conflict, so
// re-running an extraction cannot duplicate or re-key rows.
func (s *SolicitudStore) Upsert(ctx context.Context, sol *domain.Solicitud) (int64, error) {
	query := `
		INSERT INTO solicitudes (
			codigo, estado, tipo, distribuidora, provincia, potencia_kw,
			fecha_solicitud, fecha_actualizacion
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (codigo) DO UPDATE SET
			estado = EXCLUDED.estado,
			tipo = EXCLUDED.tipo,
			distribuidora = EXCLUDED.distribuidora,
			provincia = EXCLUDED.provincia,
			potencia_kw = EXCLUDED.potencia_kw,
			fecha_solicitud = EXCLUDED.fecha_solicitud,
			fecha_actualizacion = EXCLUDED.fecha_actualizacion,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sol.Codigo,
		sol.Estado,
		sol.Tipo,
		sol.Distribuidora,
		sol.Provincia,
		sol.PotenciaKW,
		sol.FechaSolicitud,
		sol.FechaActualizacion,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBError(err)
	}

	return id, nil
}
