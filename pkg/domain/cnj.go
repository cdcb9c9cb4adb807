package domain

import (
	"regexp"
	"strings"

	dErrors "esaj/pkg/domain-errors"
)

// CNJNumber is a judicial process number in the CNJ unified format
// NNNNNNN-DD.AAAA.J.TR.OOOO. This is a domain primitive: values are only
// produced by ParseCNJ and are immutable afterwards.
type CNJNumber struct {
	Sequential  string // NNNNNNN
	CheckDigits string // DD
	Year        string // AAAA
	Segment     string // J, judiciary segment
	Court       string // TR, court or region
	Origin      string // OOOO, originating unit
}

// cnjDigits is the length of a CNJ number without punctuation.
const cnjDigits = 20

var (
	cnjPunctuated = regexp.MustCompile(`\d{7}-\d{2}\.\d{4}\.\d\.\d{2}\.\d{4}`)
	cnjRaw        = regexp.MustCompile(`\b\d{20}\b`)
	nonDigits     = regexp.MustCompile(`\D+`)
	punctuation   = strings.NewReplacer("-", "", ".", "")
)

// ParseCNJ locates a CNJ number inside arbitrary input.
//
// A substring already in canonical punctuated form wins (leftmost match).
// Otherwise every non-digit is stripped and the remainder must be exactly one
// isolated run of 20 digits; longer or shorter runs are rejected.
func ParseCNJ(raw string) (CNJNumber, error) {
	if raw == "" {
		return CNJNumber{}, dErrors.New(dErrors.CodeInvalidInput, "process number is required")
	}
	if m := cnjPunctuated.FindString(raw); m != "" {
		return fromDigits(punctuation.Replace(m)), nil
	}
	if m := cnjRaw.FindString(nonDigits.ReplaceAllString(raw, "")); m != "" {
		return fromDigits(m), nil
	}
	return CNJNumber{}, dErrors.New(dErrors.CodeInvalidInput, "no CNJ process number found")
}

// NormalizeCNJ returns the canonical punctuated form of the CNJ number found in
// raw, or "" when there is none.
func NormalizeCNJ(raw string) string {
	n, err := ParseCNJ(raw)
	if err != nil {
		return ""
	}
	return n.String()
}

// fromDigits splits a 20 digit string at offsets 7/9/13/14/16.
func fromDigits(d string) CNJNumber {
	return CNJNumber{
		Sequential:  d[0:7],
		CheckDigits: d[7:9],
		Year:        d[9:13],
		Segment:     d[13:14],
		Court:       d[14:16],
		Origin:      d[16:20],
	}
}

// String returns the canonical punctuated form.
func (n CNJNumber) String() string {
	if n.IsZero() {
		return ""
	}
	var b strings.Builder
	b.Grow(cnjDigits + 5)
	b.WriteString(n.Sequential)
	b.WriteByte('-')
	b.WriteString(n.CheckDigits)
	b.WriteByte('.')
	b.WriteString(n.Year)
	b.WriteByte('.')
	b.WriteString(n.Segment)
	b.WriteByte('.')
	b.WriteString(n.Court)
	b.WriteByte('.')
	b.WriteString(n.Origin)
	return b.String()
}

// Digits returns the 20 digits without punctuation.
func (n CNJNumber) Digits() string {
	return n.Sequential + n.CheckDigits + n.Year + n.Segment + n.Court + n.Origin
}

// IsZero returns true if n was never parsed.
func (n CNJNumber) IsZero() bool {
	return n == CNJNumber{}
}

// CheckDigitsValid verifies DD with the mod 97-10 rule from CNJ Resolution 65:
// DD = 98 - (NNNNNNN AAAA J TR OOOO 00 mod 97).
// The value does not fit in a uint64, so the remainder is folded digit by digit.
func (n CNJNumber) CheckDigitsValid() bool {
	if n.IsZero() {
		return false
	}
	rem := 0
	for _, c := range n.Sequential + n.Year + n.Segment + n.Court + n.Origin + "00" {
		rem = (rem*10 + int(c-'0')) % 97
	}
	want := 98 - rem
	got := int(n.CheckDigits[0]-'0')*10 + int(n.CheckDigits[1]-'0')
	return got == want
}
