// Package scenario reads algorithm inputs from YAML files and from the
// comma-separated text a user types, and turns them into catalog inputs.
//
// A scenario file names an algorithm and overrides any subset of its
// default input:
//
//	algorithm: binary-search
//	values: 2, 5, 8, 12
//	target: 8
//
// values accepts either a YAML sequence or a comma-separated string. grid is
// a list of rows using '.', '#', 'S' and 'E'; ops is a list such as
// ["push 4", "pop"]. Unknown keys are rejected.
package scenario

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/knapsack"
	"github.com/katalvlaran/algostep/linear"
	"github.com/katalvlaran/algostep/step"
)

var (
	// ErrBadNumber indicates a list entry that is not an integer.
	ErrBadNumber = step.InvalidInput("scenario: not an integer")

	// ErrNoAlgorithm indicates a file without an algorithm key.
	ErrNoAlgorithm = step.InvalidInput("scenario: algorithm is required")

	// ErrMalformed indicates YAML that does not decode into a File.
	ErrMalformed = step.InvalidInput("scenario: malformed file")
)

// IntList is a list of ints written as a YAML sequence or as "1, 2, 3".
type IntList []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *IntList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		vals, err := ParseInts(value.Value)
		if err != nil {
			return err
		}
		*l = vals
		return nil
	}
	var vals []int
	if err := value.Decode(&vals); err != nil {
		return errors.Mark(err, ErrBadNumber)
	}
	*l = vals
	return nil
}

// File is one scenario. Nil and empty fields keep the algorithm default.
type File struct {
	Algorithm     string          `yaml:"algorithm"`
	Values        IntList         `yaml:"values,omitempty"`
	Target        *int            `yaml:"target,omitempty"`
	Text          string          `yaml:"text,omitempty"`
	Pattern       string          `yaml:"pattern,omitempty"`
	Grid          []string        `yaml:"grid,omitempty"`
	Limit         *int            `yaml:"limit,omitempty"`
	FullTraversal *bool           `yaml:"full_traversal,omitempty"`
	Items         []knapsack.Item `yaml:"items,omitempty"`
	Capacity      *int            `yaml:"capacity,omitempty"`
	Discs         *int            `yaml:"discs,omitempty"`
	Ops           []string        `yaml:"ops,omitempty"`
}

// Parse decodes one scenario document.
func Parse(data []byte) (*File, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one scenario document from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, step.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrMalformed, "%v", err)
	}
	if f.Algorithm == "" {
		return nil, ErrNoAlgorithm
	}
	return &f, nil
}

// Load reads and decodes the scenario at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return f, nil
}

// Marshal encodes f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Apply overlays the fields set in f on base and returns the result.
func (f *File) Apply(base catalog.Input) (catalog.Input, error) {
	in := base
	if len(f.Values) > 0 {
		in.Values = append([]int(nil), f.Values...)
	}
	if f.Target != nil {
		in.Target = *f.Target
	}
	if f.Text != "" {
		in.Text = f.Text
	}
	if f.Pattern != "" {
		in.Pattern = f.Pattern
	}
	if len(f.Grid) > 0 {
		g, err := gridgraph.Parse(f.Grid)
		if err != nil {
			return catalog.Input{}, errors.Wrap(err, "grid")
		}
		in.Grid = g
	}
	if f.Limit != nil {
		in.Limit = *f.Limit
	}
	if f.FullTraversal != nil {
		in.FullTraversal = *f.FullTraversal
	}
	if len(f.Items) > 0 {
		in.Items = append([]knapsack.Item(nil), f.Items...)
	}
	if f.Capacity != nil {
		in.Capacity = *f.Capacity
	}
	if f.Discs != nil {
		in.Discs = *f.Discs
	}
	if len(f.Ops) > 0 {
		ops, err := linear.ParseOps(f.Ops)
		if err != nil {
			return catalog.Input{}, errors.Wrap(err, "ops")
		}
		in.Ops = ops
	}
	return in, nil
}

// Resolve looks up f.Algorithm and returns it with its default input
// overlaid by f.
func (f *File) Resolve() (catalog.Algorithm, catalog.Input, error) {
	a, err := catalog.Lookup(f.Algorithm)
	if err != nil {
		return catalog.Algorithm{}, catalog.Input{}, err
	}
	in, err := f.Apply(a.Default())
	if err != nil {
		return catalog.Algorithm{}, catalog.Input{}, err
	}
	return a, in, nil
}

// ParseInts reads integers separated by commas and/or whitespace,
// e.g. "64, 34, 25". An empty string yields an empty list.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]int, 0, len(fields))
	for _, fld := range fields {
		v, err := strconv.Atoi(fld)
		if err != nil {
			return nil, errors.Wrapf(ErrBadNumber, "%q", fld)
		}
		out = append(out, v)
	}
	return out, nil
}
