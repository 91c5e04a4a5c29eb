package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"mercado_fetcher/internal/domain"
)

type SolicitudStore interface {
	Upsert(ctx context.Context, sol *domain.Solicitud) (int64, error)
}

type DocumentoStore interface {
	Upsert(ctx context.Context, doc *domain.Documento) (int64, error)
}

type InteresadoStore interface {
	Upsert(ctx context.Context, in *domain.Interesado) (int64, error)
}

type RunStateStore interface {
	Get(ctx context.Context, entity domain.Entity) (*domain.RunState, error)
	Update(ctx context.Context, state *domain.RunState) error
}

type Source interface {
	Name() string
	SolicitudesPage(ctx context.Context, page int, f domain.Filters) ([]domain.Solicitud, bool, error)
	DocumentosPage(ctx context.Context, page int, f domain.Filters) ([]domain.Documento, bool, error)
	InteresadosPage(ctx context.Context, page int, f domain.Filters) ([]domain.Interesado, bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
	Close() error
}
