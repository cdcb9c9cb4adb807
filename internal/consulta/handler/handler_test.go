package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"esaj/internal/consulta"
	"esaj/internal/consulta/handler/mocks"
	dErrors "esaj/pkg/domain-errors"
)

// =============================================================================
// Consulta Handler Test Suite
// =============================================================================
// Tests cover the response envelope contract the GPT action depends on.
// Normalization itself is covered by the domain and service tests.

type HandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockService
	router      chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.mockService, logger).Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) get(processo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/consulta?processo="+url.QueryEscape(processo), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func (s *HandlerSuite) TestSuccessEnvelope() {
	tribunal, grau := "TJSP", "1GRAU"
	publicURL := "https://esaj.tjsp.jus.br/cpopg/search.do?x=1"
	ts := time.Date(2024, 5, 10, 17, 30, 0, 0, time.UTC)

	s.mockService.EXPECT().
		Lookup(gomock.Any(), "0001234-56.2020.8.26.0100").
		Return(&consulta.Result{
			Numero:     "0001234-56.2020.8.26.0100",
			Tribunal:   &tribunal,
			Grau:       &grau,
			PublicURL:  &publicURL,
			Source:     "render",
			LookedUpAt: ts,
		}, nil)

	rec := s.get("0001234-56.2020.8.26.0100")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "application/json")

	body := s.decode(rec)
	s.Equal(true, body["ok"])
	s.Equal("online", body["status"])
	s.Equal("0001234-56.2020.8.26.0100", body["numero"])
	s.Equal("TJSP", body["tribunal"])
	s.Equal("1GRAU", body["grau"])
	s.Equal("render", body["fonte"])
	s.Equal("2024-05-10T17:30:00Z", body["ts"])
	s.Equal(true, body["dados_minimos_disponiveis"])
	s.Equal(publicURL, body["url_publica_sugerida"])
	s.Contains(body, "resumo")
	s.Nil(body["resumo"])
	s.Equal([]any{}, body["partes"])
	s.Equal([]any{}, body["movimentacoes"])
	s.Equal("Conector online (dados reais ainda não implementados neste template).", body["message"])
}

func (s *HandlerSuite) TestUnknownCourtRendersNulls() {
	grau := "1GRAU"
	s.mockService.EXPECT().
		Lookup(gomock.Any(), "0001234-56.2020.8.19.0001").
		Return(&consulta.Result{Numero: "0001234-56.2020.8.19.0001", Grau: &grau, Source: "render"}, nil)

	body := s.decode(s.get("0001234-56.2020.8.19.0001"))
	s.Contains(body, "tribunal")
	s.Nil(body["tribunal"])
	s.Contains(body, "url_publica_sugerida")
	s.Nil(body["url_publica_sugerida"])
}

func (s *HandlerSuite) TestInvalidNumberIsInline() {
	s.mockService.EXPECT().
		Lookup(gomock.Any(), "abc not a number").
		Return(nil, dErrors.New(dErrors.CodeInvalidInput, "no CNJ process number found"))

	rec := s.get("abc not a number")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":false,"motivo":"NPU inválido","numero":"abc not a number"}`, rec.Body.String())
}

func (s *HandlerSuite) TestMissingParameterIsTreatedAsEmpty() {
	s.mockService.EXPECT().
		Lookup(gomock.Any(), "").
		Return(nil, dErrors.New(dErrors.CodeInvalidInput, "process number is required"))

	req := httptest.NewRequest(http.MethodGet, "/consulta", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":false,"motivo":"NPU inválido","numero":""}`, rec.Body.String())
}

func (s *HandlerSuite) TestUnexpectedErrorIsInternal() {
	s.mockService.EXPECT().
		Lookup(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("tracer exploded"))

	rec := s.get("00012345620208260100")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"internal_error"}`, rec.Body.String())
}

func (s *HandlerSuite) TestOnlyGetIsRouted() {
	req := httptest.NewRequest(http.MethodPost, "/consulta?processo=1", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}
