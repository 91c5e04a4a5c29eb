package mercado

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"mercado_fetcher/internal/domain"
	"mercado_fetcher/testdata/utils"
)

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(baseURL string) *Client {
	return New(Config{
		BaseURL:        baseURL,
		PageSize:       2,
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, s.logger)
}

func solicitudPage(page, totalPages int, records ...SolicitudData) pagina[SolicitudData] {
	return pagina[SolicitudData]{
		Pagina:       page,
		TotalPaginas: totalPages,
		Resultados:   records,
	}
}

func (s *ClientTestSuite) TestSolicitudesPage_DecodesAndReportsMore() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/solicitudes", r.URL.Path)
		s.Equal("1", r.URL.Query().Get("pagina"))
		s.Equal("2", r.URL.Query().Get("tamanoPagina"))

		_ = json.NewEncoder(w).Encode(solicitudPage(1, 3,
			SolicitudData{
				Codigo:             "S-001",
				Estado:             "EN_TRAMITE",
				Tipo:               "acceso",
				Provincia:          utils.Ptr("Sevilla"),
				PotenciaKW:         utils.Ptr(49.9),
				FechaSolicitud:     "2026-01-15",
				FechaActualizacion: "2026-02-01T10:30:00Z",
			},
			SolicitudData{
				Codigo:             "S-002",
				Estado:             "ADMITIDA",
				Tipo:               "conexion",
				FechaSolicitud:     "2026-01-20",
				FechaActualizacion: "2026-02-02T08:00:00Z",
			},
		))
	}))
	defer srv.Close()

	records, more, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 1, domain.Filters{})

	s.NoError(err)
	s.True(more)
	s.Len(records, 2)
	s.Equal("S-001", records[0].Codigo)
	s.Equal("EN_TRAMITE", records[0].Estado)
	s.NotNil(records[0].Provincia)
	s.Equal("Sevilla", *records[0].Provincia)
	s.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), records[0].FechaSolicitud)
	s.Nil(records[1].Provincia)
}

func (s *ClientTestSuite) TestSolicitudesPage_LastPageReportsNoMore() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(solicitudPage(3, 3, SolicitudData{
			Codigo:             "S-009",
			Estado:             "RESUELTA",
			FechaSolicitud:     "2026-01-01",
			FechaActualizacion: "2026-01-02T00:00:00Z",
		}))
	}))
	defer srv.Close()

	records, more, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 3, domain.Filters{})

	s.NoError(err)
	s.False(more)
	s.Len(records, 1)
}

func (s *ClientTestSuite) TestSolicitudesPage_FiltersInQuery() {
	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("EN_TRAMITE", r.URL.Query().Get("estado"))
		s.Equal("Sevilla", r.URL.Query().Get("provincia"))
		s.Equal("2026-03-01", r.URL.Query().Get("desde"))
		_ = json.NewEncoder(w).Encode(solicitudPage(1, 1))
	}))
	defer srv.Close()

	_, _, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 1, domain.Filters{
		Estado:    "EN_TRAMITE",
		Provincia: "Sevilla",
		Desde:     &desde,
	})

	s.NoError(err)
}

func (s *ClientTestSuite) TestSolicitudesPage_RetriesThenSucceeds() {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(solicitudPage(1, 1, SolicitudData{
			Codigo:             "S-001",
			Estado:             "EN_TRAMITE",
			FechaSolicitud:     "2026-01-15",
			FechaActualizacion: "2026-02-01T10:30:00Z",
		}))
	}))
	defer srv.Close()

	records, _, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 1, domain.Filters{})

	s.NoError(err)
	s.Len(records, 1)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestSolicitudesPage_ExhaustedRetriesIsTransportError() {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 1, domain.Filters{})

	s.Error(err)
	s.ErrorIs(err, domain.ErrTransport)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientTestSuite) TestSolicitudesPage_MalformedRecordFailsParse() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(solicitudPage(1, 1, SolicitudData{
			Codigo:             "S-BAD",
			Estado:             "EN_TRAMITE",
			FechaSolicitud:     "not-a-date",
			FechaActualizacion: "2026-02-01T10:30:00Z",
		}))
	}))
	defer srv.Close()

	_, _, err := s.newClient(srv.URL).SolicitudesPage(s.ctx, 1, domain.Filters{})

	s.Error(err)
	s.Contains(err.Error(), "parse record")
	s.Contains(err.Error(), "S-BAD")
}

func (s *ClientTestSuite) TestDocumentosPage_Decodes() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/documentos", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pagina[DocumentoData]{
			Pagina:       1,
			TotalPaginas: 1,
			Resultados: []DocumentoData{
				{
					Codigo:           "D-001",
					CodigoSolicitud:  "S-001",
					Nombre:           "anexo.pdf",
					Tipo:             utils.Ptr("anexo"),
					URL:              utils.Ptr("https://example.com/anexo.pdf"),
					FechaPublicacion: "2026-02-05T12:00:00Z",
				},
			},
		})
	}))
	defer srv.Close()

	records, more, err := s.newClient(srv.URL).DocumentosPage(s.ctx, 1, domain.Filters{})

	s.NoError(err)
	s.False(more)
	s.Len(records, 1)
	s.Equal("S-001", records[0].SolicitudCodigo)
}

func (s *ClientTestSuite) TestInteresadosPage_Decodes() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/interesados", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pagina[InteresadoData]{
			Pagina:       1,
			TotalPaginas: 1,
			Resultados: []InteresadoData{
				{Codigo: "I-001", Nombre: "Promotora Solar SL", Municipio: utils.Ptr("Écija")},
			},
		})
	}))
	defer srv.Close()

	records, _, err := s.newClient(srv.URL).InteresadosPage(s.ctx, 1, domain.Filters{})

	s.NoError(err)
	s.Len(records, 1)
	s.Equal("Promotora Solar SL", records[0].Nombre)
}

func (s *ClientTestSuite) TestPageURL() {
	c := s.newClient("https://api.example/v1")
	u := c.pageURL(pathSolicitudes, 2, domain.Filters{Estado: "ADMITIDA"})
	s.Equal(fmt.Sprintf("https://api.example/v1/solicitudes?%s", "estado=ADMITIDA&pagina=2&tamanoPagina=2"), u)
}
