// Package report renders measurement results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/govol/pkg/geometry"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

// Format selects how reports are rendered
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for an output format that is not supported
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves an output format by name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Report is anything a Printer can render
type Report interface {
	writeText(t *textWriter)
}

// Printer writes reports in one format
type Printer struct {
	w         io.Writer
	format    Format
	precision int
	numbers   *message.Printer
}

// NewPrinter creates a printer. precision is the number of decimals in text
// output; lang controls digit grouping.
func NewPrinter(w io.Writer, format Format, precision int, lang language.Tag) *Printer {
	return &Printer{
		w:         w,
		format:    format,
		precision: precision,
		numbers:   message.NewPrinter(lang),
	}
}

// Print renders a report
func (p *Printer) Print(r Report) error {
	switch p.format {
	case JSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		t := &textWriter{p: p}
		r.writeText(t)
		return t.err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
}

// Number formats a value with the configured precision and grouping
func (p *Printer) Number(v float64) string {
	return p.numbers.Sprint(number.Decimal(v, number.Scale(p.precision)))
}

// textWriter collects the first write error
type textWriter struct {
	p   *Printer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.p.w, format+"\n", args...)
}

func (t *textWriter) title(s string) {
	t.line("%s", s)
	t.line("%s", strings.Repeat("=", len(s)))
}

func (t *textWriter) num(v float64) string {
	return t.p.Number(v)
}

// quantity formats a value followed by a unit symbol raised to power
func (t *textWriter) quantity(v float64, unit string, power int) string {
	s := t.num(v)
	switch {
	case unit == "" && power == 1:
		return s + " units"
	case unit == "" && power == 2:
		return s + " square units"
	case unit == "" && power == 3:
		return s + " cubic units"
	case power == 2:
		return s + " " + unit + "²"
	case power == 3:
		return s + " " + unit + "³"
	}
	return s + " " + unit
}

func (t *textWriter) vector(v Vector) string {
	return fmt.Sprintf("(%s, %s, %s)", t.num(v.X), t.num(v.Y), t.num(v.Z))
}

// Vector is a point in reports
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// VectorOf converts a geometry vector
func VectorOf(v geometry.Vector3) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}
