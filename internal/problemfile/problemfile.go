// Package problemfile reads problem documents and writes solve reports.
//
// A problem document is a YAML (or JSON) rendering of clp.Problem field
// for field:
//
//	rows: 1
//	cols: 1
//	mode: primal
//	matrix: {row_index: [0], col_index: [0], coeffs: [1]}
//	cost: [1]
//	row_lower: [0]
//	row_upper: [10]
//	col_lower: [0]
//	col_upper: [5]
//
// Infinite bounds are written .inf and -.inf. Unknown keys are rejected.
package problemfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bartolsthoorn/goclp/clp"
)

// Format selects the report encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q, want yaml or json", s)
	}
}

// Matrix is the coordinate form of the constraint matrix.
type Matrix struct {
	RowIndex []int     `yaml:"row_index"`
	ColIndex []int     `yaml:"col_index"`
	Coeffs   []float64 `yaml:"coeffs"`
}

// Document is one problem document.
type Document struct {
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Mode     string    `yaml:"mode,omitempty"`
	Matrix   Matrix    `yaml:"matrix"`
	Cost     []float64 `yaml:"cost"`
	RowLower []float64 `yaml:"row_lower"`
	RowUpper []float64 `yaml:"row_upper"`
	ColLower []float64 `yaml:"col_lower"`
	ColUpper []float64 `yaml:"col_upper"`
}

// Decode reads a single document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("decode problem: %w", err)
	}
	return &doc, nil
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Problem returns the clp.Problem described by d. The slices are shared.
func (d *Document) Problem() *clp.Problem {
	return &clp.Problem{
		Rows: d.Rows,
		Cols: d.Cols,
		Matrix: clp.Matrix{
			RowIndex: d.Matrix.RowIndex,
			ColIndex: d.Matrix.ColIndex,
			Coeffs:   d.Matrix.Coeffs,
		},
		Cost:     d.Cost,
		RowLower: d.RowLower,
		RowUpper: d.RowUpper,
		ColLower: d.ColLower,
		ColUpper: d.ColUpper,
	}
}

// SolveMode returns the document's mode. An absent mode is clp.Primal;
// an unrecognised one is an error.
func (d *Document) SolveMode() (clp.Mode, error) {
	if d.Mode == "" {
		return clp.Primal, nil
	}
	return clp.ParseMode(d.Mode)
}

// Value is a report number that survives JSON when it is not finite.
// Infinities and NaN are written as the strings "inf", "-inf" and "nan";
// YAML has .inf and .nan of its own.
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return []byte(`"nan"`), nil
	case math.IsInf(f, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(f)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "nan":
			*v = Value(math.NaN())
		case "inf":
			*v = Value(math.Inf(1))
		case "-inf":
			*v = Value(math.Inf(-1))
		default:
			return fmt.Errorf("invalid number %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Value(f)
	return nil
}

// Report is the outcome of solving one document. X is whatever point the
// engine stopped at, so it and Objective may be infinite or NaN when the
// solve is not optimal.
type Report struct {
	File                   string  `json:"file" yaml:"file"`
	Mode                   string  `json:"mode" yaml:"mode"`
	ProvenOptimal          bool    `json:"proven_optimal" yaml:"proven_optimal"`
	ProvenPrimalInfeasible bool    `json:"proven_primal_infeasible" yaml:"proven_primal_infeasible"`
	ProvenDualInfeasible   bool    `json:"proven_dual_infeasible" yaml:"proven_dual_infeasible"`
	Abandoned              bool    `json:"abandoned" yaml:"abandoned"`
	X                      []Value `json:"x" yaml:"x"`
	Objective              Value   `json:"objective" yaml:"objective"`
}

// NewReport builds the report for res, the result of solving p in mode.
func NewReport(file string, mode clp.Mode, p *clp.Problem, res *clp.Result) Report {
	return Report{
		File:                   file,
		Mode:                   mode.String(),
		ProvenOptimal:          res.ProvenOptimal,
		ProvenPrimalInfeasible: res.ProvenPrimalInfeasible,
		ProvenDualInfeasible:   res.ProvenDualInfeasible,
		Abandoned:              res.Abandoned,
		X:                      values(res.X),
		Objective:              Value(res.Objective(p.Cost)),
	}
}

func values(x []float64) []Value {
	out := make([]Value, len(x))
	for i, f := range x {
		out[i] = Value(f)
	}
	return out
}

// WriteReports encodes reports to w as a single list.
func WriteReports(w io.Writer, format Format, reports []Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
