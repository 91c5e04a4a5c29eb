package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mercado_fetcher/internal/config"
	"mercado_fetcher/internal/domain"
)

// ExtractService drives one paginated pass over an API endpoint and persists
// each page inside its own transaction. A page either commits whole or rolls
// back whole; any failure aborts the run so the operator can re-invoke it
// (upserts make the re-run safe).
type ExtractService struct {
	source      Source
	solicitudes SolicitudStore
	documentos  DocumentoStore
	interesados InteresadoStore
	runState    RunStateStore
	txManager   TransactionManager
	publisher   Publisher
	logger      *slog.Logger
	config      config.ExtractConfig
}

func NewExtractService(
	source Source,
	solicitudes SolicitudStore,
	documentos DocumentoStore,
	interesados InteresadoStore,
	runState RunStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.ExtractConfig,
) *ExtractService {
	return &ExtractService{
		source:      source,
		solicitudes: solicitudes,
		documentos:  documentos,
		interesados: interesados,
		runState:    runState,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger.With("source", source.Name()),
		config:      cfg,
	}
}

// ExtractAll runs every entity in dependency order: solicitudes before
// documentos so parent rows exist when documento foreign keys resolve.
func (s *ExtractService) ExtractAll(ctx context.Context, filters domain.Filters) ([]*domain.ExtractStats, error) {
	order := []domain.Entity{
		domain.EntitySolicitudes,
		domain.EntityDocumentos,
		domain.EntityInteresados,
	}

	var all []*domain.ExtractStats
	for _, entity := range order {
		stats, err := s.Extract(ctx, entity, filters)
		if err != nil {
			return all, err
		}
		all = append(all, stats)
	}
	return all, nil
}

// Extract fetches pages until the API reports no more (or an empty page
// arrives), committing one transaction per page. It returns statistics
// including the count of records persisted.
func (s *ExtractService) Extract(ctx context.Context, entity domain.Entity, filters domain.Filters) (*domain.ExtractStats, error) {
	startTime := time.Now()
	logger := s.logger.With("entity", entity)
	logger.Info("starting extraction", "max_pages", s.config.MaxPages)

	var pageFn func(ctx context.Context, page int) ([]string, bool, error)
	switch entity {
	case domain.EntitySolicitudes:
		pageFn = func(ctx context.Context, page int) ([]string, bool, error) {
			return s.solicitudesPage(ctx, page, filters)
		}
	case domain.EntityDocumentos:
		pageFn = func(ctx context.Context, page int) ([]string, bool, error) {
			return s.documentosPage(ctx, page, filters)
		}
	case domain.EntityInteresados:
		pageFn = func(ctx context.Context, page int) ([]string, bool, error) {
			return s.interesadosPage(ctx, page, filters)
		}
	default:
		return nil, fmt.Errorf("unknown entity %q", entity)
	}

	stats := &domain.ExtractStats{Entity: entity}
	lastPage := 0

	for page := 1; ; page++ {
		codigos, more, err := pageFn(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("extract %s page %d: %w", entity, page, err)
		}

		if len(codigos) == 0 {
			break
		}

		stats.Pages++
		stats.Fetched += len(codigos)
		stats.Persisted += len(codigos)
		lastPage = page

		s.publish(ctx, entity, codigos, stats)

		if !more {
			break
		}
		if s.config.MaxPages > 0 && page >= s.config.MaxPages {
			logger.Warn("stopping at page cap", "max_pages", s.config.MaxPages)
			break
		}
	}

	if err := s.updateRunState(ctx, entity, lastPage, stats); err != nil {
		return stats, fmt.Errorf("update run state for %s: %w", entity, err)
	}

	stats.Duration = time.Since(startTime)

	logger.Info("extraction completed",
		"pages", stats.Pages,
		"fetched", stats.Fetched,
		"persisted", stats.Persisted,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *ExtractService) solicitudesPage(ctx context.Context, page int, f domain.Filters) ([]string, bool, error) {
	records, more, err := s.source.SolicitudesPage(ctx, page, f)
	if err != nil {
		return nil, false, fmt.Errorf("fetch: %w", err)
	}
	if len(records) == 0 {
		return nil, more, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range records {
			if _, err := s.solicitudes.Upsert(txCtx, &records[i]); err != nil {
				return fmt.Errorf("persist solicitud %s: %w", records[i].Codigo, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	codigos := make([]string, len(records))
	for i := range records {
		codigos[i] = records[i].Codigo
	}
	return codigos, more, nil
}

func (s *ExtractService) documentosPage(ctx context.Context, page int, f domain.Filters) ([]string, bool, error) {
	records, more, err := s.source.DocumentosPage(ctx, page, f)
	if err != nil {
		return nil, false, fmt.Errorf("fetch: %w", err)
	}
	if len(records) == 0 {
		return nil, more, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range records {
			if _, err := s.documentos.Upsert(txCtx, &records[i]); err != nil {
				return fmt.Errorf("persist documento %s: %w", records[i].Codigo, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	codigos := make([]string, len(records))
	for i := range records {
		codigos[i] = records[i].Codigo
	}
	return codigos, more, nil
}

func (s *ExtractService) interesadosPage(ctx context.Context, page int, f domain.Filters) ([]string, bool, error) {
	records, more, err := s.source.InteresadosPage(ctx, page, f)
	if err != nil {
		return nil, false, fmt.Errorf("fetch: %w", err)
	}
	if len(records) == 0 {
		return nil, more, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range records {
			if _, err := s.interesados.Upsert(txCtx, &records[i]); err != nil {
				return fmt.Errorf("persist interesado %s: %w", records[i].Codigo, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	codigos := make([]string, len(records))
	for i := range records {
		codigos[i] = records[i].Codigo
	}
	return codigos, more, nil
}

// publish emits one change event per committed record. Publishing is best
// effort: a broker failure must not fail a run whose data already committed.
func (s *ExtractService) publish(ctx context.Context, entity domain.Entity, codigos []string, stats *domain.ExtractStats) {
	if s.publisher == nil {
		return
	}

	for _, codigo := range codigos {
		event := domain.ChangeEvent{
			Entity:    entity,
			Codigo:    codigo,
			Action:    "upserted",
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish change event", "entity", entity, "codigo", codigo, "error", err)
			continue
		}
		stats.Published++
	}
}

func (s *ExtractService) updateRunState(ctx context.Context, entity domain.Entity, lastPage int, stats *domain.ExtractStats) error {
	state, err := s.runState.Get(ctx, entity)
	if err != nil {
		return err
	}

	state.Entity = string(entity)
	state.LastRunAt = time.Now()
	state.LastPage = lastPage
	state.TotalExtracted += int64(stats.Persisted)

	return s.runState.Update(ctx, state)
}
