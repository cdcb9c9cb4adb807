package consulta

import (
	"net/url"

	"esaj/pkg/domain"
)

// GrauPrimeiro is the only instance the connector reports today.
const GrauPrimeiro = "1GRAU"

// tribunalKey identifies a court by judiciary segment (J) and court code (TR).
type tribunalKey struct {
	segment string
	court   string
}

type tribunal struct {
	id string
	// publicURL builds the public case-search URL for a canonical number.
	publicURL func(cnj string) string
}

// tribunais lists the courts the connector recognises. Only the São Paulo
// state court is known; every other number reports an unknown court.
var tribunais = map[tribunalKey]tribunal{
	{segment: "8", court: "26"}: {id: "TJSP", publicURL: esajTJSPURL},
}

// InferTribunal returns the court identifier for n, or false when unknown.
func InferTribunal(n domain.CNJNumber) (string, bool) {
	t, ok := tribunais[tribunalKey{segment: n.Segment, court: n.Court}]
	if !ok {
		return "", false
	}
	return t.id, true
}

// PublicURL suggests where a person can look the case up, or false when the
// court has no known public search.
func PublicURL(n domain.CNJNumber) (string, bool) {
	t, ok := tribunais[tribunalKey{segment: n.Segment, court: n.Court}]
	if !ok || t.publicURL == nil {
		return "", false
	}
	return t.publicURL(n.String()), true
}

func esajTJSPURL(cnj string) string {
	q := url.Values{}
	q.Set("cbPesquisa", "NUMPROC")
	q.Set("dadosConsulta.tipoNuProcesso", "UNIFICADO")
	q.Set("dadosConsulta.valorConsultaNuUnificado", cnj)
	return "https://esaj.tjsp.jus.br/cpopg/search.do?" + q.Encode()
}
