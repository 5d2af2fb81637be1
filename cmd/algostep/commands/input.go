package commands

import (
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/scenario"
	"github.com/katalvlaran/algostep/step"
)

// errNameMismatch indicates an argument that disagrees with the scenario file.
var errNameMismatch = step.InvalidInput("algorithm argument does not match the scenario")

// inputFlags selects the input an algorithm runs on.
type inputFlags struct {
	scenario string
	random   bool
	seed     uint64
	values   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.scenario, "scenario", "s", "", "YAML scenario file")
	fl.BoolVar(&f.random, "random", false, "generate a random input")
	fl.Uint64Var(&f.seed, "seed", 0, "seed for --random (0 picks one)")
	fl.StringVar(&f.values, "values", "", `comma-separated values, e.g. "5, 3, 8"`)
}

// resolve picks the algorithm and builds its producer. Precedence, lowest
// first: default input, random input, scenario file, --values.
func (f *inputFlags) resolve(args []string) (catalog.Algorithm, catalog.Input, step.Producer, error) {
	var (
		file *scenario.File
		name string
		err  error
	)
	if len(args) > 0 {
		name = args[0]
	}
	if f.scenario != "" {
		if file, err = scenario.Load(f.scenario); err != nil {
			return catalog.Algorithm{}, catalog.Input{}, nil, err
		}
		if name != "" && name != file.Algorithm {
			return catalog.Algorithm{}, catalog.Input{}, nil,
				errors.Wrapf(errNameMismatch, "%q vs %q", name, file.Algorithm)
		}
		name = file.Algorithm
	}
	if name == "" {
		return catalog.Algorithm{}, catalog.Input{}, nil, errors.New("an algorithm name or --scenario is required")
	}

	a, err := catalog.Lookup(name)
	if err != nil {
		return catalog.Algorithm{}, catalog.Input{}, nil, err
	}
	in := a.Default()
	if f.random {
		seed := f.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
			f.seed = seed
		}
		in = a.Random(rand.New(rand.NewPCG(seed, seed>>1)))
	}
	if file != nil {
		if in, err = file.Apply(in); err != nil {
			return catalog.Algorithm{}, catalog.Input{}, nil, err
		}
	}
	if f.values != "" {
		vals, err := scenario.ParseInts(f.values)
		if err != nil {
			return catalog.Algorithm{}, catalog.Input{}, nil, err
		}
		in.Values = vals
	}

	p, err := a.Build(in)
	if err != nil {
		return catalog.Algorithm{}, catalog.Input{}, nil, err
	}
	return a, in, p, nil
}
