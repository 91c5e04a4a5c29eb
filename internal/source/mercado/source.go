package mercado

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mercado_fetcher/internal/domain"
)

const SourceName = "Mercado Energético"

const (
	pathSolicitudes = "solicitudes"
	pathDocumentos  = "documentos"
	pathInteresados = "interesados"
)

// Config holds API client configuration.
type Config struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches paginated records from the market API one page at a time.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceName),
	}
}

func (c *Client) Name() string {
	return SourceName
}

// SolicitudesPage fetches one page of solicitudes. The second return value
// reports whether more pages remain.
func (c *Client) SolicitudesPage(ctx context.Context, page int, f domain.Filters) ([]domain.Solicitud, bool, error) {
	return fetchPage(ctx, c, pathSolicitudes, page, f, parseSolicitud)
}

func (c *Client) DocumentosPage(ctx context.Context, page int, f domain.Filters) ([]domain.Documento, bool, error) {
	return fetchPage(ctx, c, pathDocumentos, page, f, parseDocumento)
}

func (c *Client) InteresadosPage(ctx context.Context, page int, f domain.Filters) ([]domain.Interesado, bool, error) {
	return fetchPage(ctx, c, pathInteresados, page, f, parseInteresado)
}

func fetchPage[R, D any](
	ctx context.Context,
	c *Client,
	path string,
	page int,
	f domain.Filters,
	parse func(R) (D, error),
) ([]D, bool, error) {
	env, err := fetchEnvelope[R](ctx, c, path, page, f)
	if err != nil {
		return nil, false, err
	}

	records := make([]D, 0, len(env.Resultados))
	for _, raw := range env.Resultados {
		rec, err := parse(raw)
		if err != nil {
			return nil, false, fmt.Errorf("parse record: %w", err)
		}
		records = append(records, rec)
	}

	c.logger.Debug("fetched page",
		"entity", path,
		"page", env.Pagina,
		"records", len(records),
		"total_pages", env.TotalPaginas,
	)

	return records, env.Pagina < env.TotalPaginas, nil
}

func fetchEnvelope[R any](ctx context.Context, c *Client, path string, page int, f domain.Filters) (*pagina[R], error) {
	reqURL := c.pageURL(path, page, f)

	var env *pagina[R]
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		env, err = doRequest[R](ctx, c, reqURL)
		if err == nil {
			return env, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"entity", path,
			"page", page,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func doRequest[R any](ctx context.Context, c *Client, reqURL string) (*pagina[R], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MercadoFetcher/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", errors.Join(domain.ErrTransport, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, domain.ErrTransport)
	}

	var env pagina[R]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", errors.Join(domain.ErrTransport, err))
	}

	return &env, nil
}

func (c *Client) pageURL(path string, page int, f domain.Filters) string {
	q := url.Values{}
	q.Set("pagina", strconv.Itoa(page))
	q.Set("tamanoPagina", strconv.Itoa(c.pageSize))
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	if f.Provincia != "" {
		q.Set("provincia", f.Provincia)
	}
	if f.Desde != nil {
		q.Set("desde", f.Desde.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Encode())
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
