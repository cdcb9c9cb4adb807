package handler

import (
	"time"

	"esaj/internal/consulta"
)

const (
	statusOnline   = "online"
	messageOnline  = "Conector online (dados reais ainda não implementados neste template)."
	motivoInvalido = "NPU inválido"
)

// ConsultaResponse is the HTTP response for a recognised process number.
// Tribunal, Grau, URLPublicaSugerida and Resumo render as null when absent.
type ConsultaResponse struct {
	OK                      bool           `json:"ok"`
	Status                  string         `json:"status"`
	Numero                  string         `json:"numero"`
	Tribunal                *string        `json:"tribunal"`
	Grau                    *string        `json:"grau"`
	Fonte                   string         `json:"fonte"`
	Timestamp               time.Time      `json:"ts"`
	DadosMinimosDisponiveis bool           `json:"dados_minimos_disponiveis"`
	URLPublicaSugerida      *string        `json:"url_publica_sugerida"`
	Resumo                  *string        `json:"resumo"`
	Partes                  []Parte        `json:"partes"`
	Movimentacoes           []Movimentacao `json:"movimentacoes"`
	Message                 string         `json:"message"`
}

// Parte is a party to the case. Always empty until real data is fetched.
type Parte struct {
	Nome string `json:"nome"`
	Polo string `json:"polo"`
}

// Movimentacao is a docket entry. Always empty until real data is fetched.
type Movimentacao struct {
	Data      string `json:"data"`
	Descricao string `json:"descricao"`
}

// InvalidResponse is the HTTP response when no process number was found.
type InvalidResponse struct {
	OK     bool   `json:"ok"`
	Motivo string `json:"motivo"`
	Numero string `json:"numero"`
}

// FromResult converts a lookup result to an HTTP response.
func FromResult(result *consulta.Result) *ConsultaResponse {
	return &ConsultaResponse{
		OK:                      true,
		Status:                  statusOnline,
		Numero:                  result.Numero,
		Tribunal:                result.Tribunal,
		Grau:                    result.Grau,
		Fonte:                   result.Source,
		Timestamp:               result.LookedUpAt,
		DadosMinimosDisponiveis: true,
		URLPublicaSugerida:      result.PublicURL,
		Resumo:                  nil,
		Partes:                  []Parte{},
		Movimentacoes:           []Movimentacao{},
		Message:                 messageOnline,
	}
}

// NewInvalidResponse echoes the caller's original input.
func NewInvalidResponse(input string) *InvalidResponse {
	return &InvalidResponse{
		OK:     false,
		Motivo: motivoInvalido,
		Numero: input,
	}
}
