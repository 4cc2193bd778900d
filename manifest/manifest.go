// Package manifest reads and writes YAML lists of operators.
//
//	operators:
//	  - schema: "aten::add(Tensor self, Tensor other) -> Tensor"
//	    alias_analysis: from_schema
//	  - schema: "prim::Constant(...) -> ..."
//	    alias_analysis: internal_special_case
//
// alias_analysis defaults to conservative.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/opreg/format"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/symbol"
)

var ErrManifest = errors.New("bad manifest")

type Manifest struct {
	// Path is where the manifest was loaded from, if anywhere.
	Path    string  `json:"-" yaml:"-"`
	Entries []Entry `json:"operators" yaml:"operators"`
}

type Entry struct {
	Schema        string `json:"schema" yaml:"schema"`
	AliasAnalysis string `json:"alias_analysis,omitempty" yaml:"alias_analysis,omitempty"`
}

func Load(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return m, nil
}

func LoadFile(path string) (*Manifest, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	m, err := Load(bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

func (m *Manifest) name() string {
	if m.Path == "" {
		return "manifest"
	}
	return m.Path
}

// Operators builds an operator for every entry.  All entries are checked;
// the error joins the problems of each bad entry.
func (m *Manifest) Operators() ([]*opreg.Operator, error) {
	var (
		res  []*opreg.Operator
		errs []error
	)
	for i := range m.Entries {
		op, err := m.Entries[i].Operator()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: operator %d: %w", m.name(), i, err))
			continue
		}
		res = append(res, op)
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

func (e *Entry) Operator() (*opreg.Operator, error) {
	if e.Schema == "" {
		return nil, fmt.Errorf("%w: missing schema", ErrManifest)
	}
	kind := opreg.Conservative
	if e.AliasAnalysis != "" {
		k, err := opreg.ParseAliasAnalysisKind(e.AliasAnalysis)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	s, err := parse.Schema(e.Schema)
	if err != nil {
		return nil, err
	}
	if _, err := symbol.Parse(s.Name); err != nil {
		return nil, err
	}
	return opreg.NewOperator(s, kind), nil
}

// RegisterAll registers ops with r.  Operators the registry rejects are
// skipped and reported in the returned error.
func RegisterAll(r *opreg.Registry, ops []*opreg.Operator) error {
	var errs []error
	for _, op := range ops {
		if err := r.TryRegister(op); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FromOperators makes a manifest listing ops.
func FromOperators(ops []*opreg.Operator) *Manifest {
	m := &Manifest{Entries: make([]Entry, len(ops))}
	for i, op := range ops {
		m.Entries[i] = Entry{
			Schema:        op.String(),
			AliasAnalysis: op.AliasAnalysisKind().String(),
		}
	}
	return m
}

func (m *Manifest) Write(w io.Writer) error {
	return m.WriteFormat(w, format.YAMLFormat)
}

// WriteFormat writes m as yaml or json.  Both load back with Load.
func (m *Manifest) WriteFormat(w io.Writer, f format.Format) error {
	if f.IsText() {
		f = format.YAMLFormat
	}
	return f.Encode(w, m)
}
