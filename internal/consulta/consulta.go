// Package consulta resolves a raw process number into the minimal data the
// GPT action expects. No court system is queried; the result is derived from
// the number alone.
package consulta

import (
	"time"
)

// Result is the outcome of a successful lookup.
type Result struct {
	Numero           string
	Tribunal         *string
	Grau             *string
	PublicURL        *string
	CheckDigitsValid bool
	Source           string
	LookedUpAt       time.Time
}
