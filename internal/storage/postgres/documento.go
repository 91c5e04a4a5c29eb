package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"mercado_fetcher/internal/domain"
)

type DocumentoStore struct {
	db *sqlx.DB
}

func NewDocumentoStore(db *sqlx.DB) *DocumentoStore {
	return &DocumentoStore{db: db}
}

// Upsert inserts or updates a documento keyed on codigo. The parent
// reference is a foreign key; a documento whose solicitud is missing fails
// as a validation error and writes nothing.
func (s *DocumentoStore) Upsert(ctx context.Context, doc *domain.Documento) (int64, error) {
	query := `
		INSERT INTO documentos (
			codigo, solicitud_codigo, nombre, tipo, url, fecha_publicacion
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (codigo) DO UPDATE SET
			solicitud_codigo = EXCLUDED.solicitud_codigo,
			nombre = EXCLUDED.nombre,
			tipo = EXCLUDED.tipo,
			url = EXCLUDED.url,
			fecha_publicacion = EXCLUDED.fecha_publicacion,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		doc.Codigo,
		doc.SolicitudCodigo,
		doc.Nombre,
		doc.Tipo,
		doc.URL,
		doc.FechaPublicacion,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBError(err)
	}

	return id, nil
}
