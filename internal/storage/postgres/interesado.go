package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"mercado_fetcher/internal/domain"
)

type InteresadoStore struct {
	db *sqlx.DB
}

func NewInteresadoStore(db *sqlx.DB) *InteresadoStore {
	return &InteresadoStore{db: db}
}

func (s *InteresadoStore) Upsert(ctx context.Context, in *domain.Interesado) (int64, error) {
	query := `
		INSERT INTO interesados (
			codigo, nombre, tipo, municipio, email
		) VALUES (
			$1, $2, $3, $4, $5
		)
		ON CONFLICT (codigo) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			tipo = EXCLUDED.tipo,
			municipio = EXCLUDED.municipio,
			email = EXCLUDED.email,
			updated_at = now()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		in.Codigo,
		in.Nombre,
		in.Tipo,
		in.Municipio,
		in.Email,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBError(err)
	}

	return id, nil
}
