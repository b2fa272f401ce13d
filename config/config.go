// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads the generator configuration: the lattice to build and
// the simulator parameters written to the parameter card.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/2dChan/celllattice"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	// Seed initializes the process random source once at start-up.
	Seed       int64            `yaml:"seed"`
	Lattice    LatticeConfig    `yaml:"lattice"`
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
}

type LatticeConfig struct {
	// Kind is "square", "cubic" or "triangular".
	Kind string `yaml:"kind"`
	// Cells is the requested cell count; the lattice side is floor(sqrt(Cells)).
	Cells  int     `yaml:"cells"`
	Layers int     `yaml:"layers"`
	Radius float64 `yaml:"radius"`
	// Disorder is the maximum per-axis displacement; 0 keeps the lattice regular.
	Disorder   float64 `yaml:"disorder"`
	EdgeOffset float64 `yaml:"edge_offset"`
}

type SimulationConfig struct {
	Config      string `yaml:"config"`
	Steps       int    `yaml:"nsteps"`
	Info        int    `yaml:"ninfo"`
	LZ          int    `yaml:"lz"`
	Substeps    int    `yaml:"nsubsteps"`
	BC          int    `yaml:"bc"`
	Margin      int    `yaml:"margin"`
	RelaxTime   int    `yaml:"relax_time"`
	MaxPhases   int    `yaml:"nphases_max"`
	Proliferate bool   `yaml:"proliferate"`

	Gamma         float64 `yaml:"gamma"`
	Mu            float64 `yaml:"mu"`
	Lambda        float64 `yaml:"lambda"`
	Kappa         float64 `yaml:"kappa_cc"`
	Xi            float64 `yaml:"xi"`
	OmegaCC       float64 `yaml:"omega_cc"`
	WallThickness float64 `yaml:"wall_thickness"`
	WallKappa     float64 `yaml:"kappa_cs"`
	OmegaCS       float64 `yaml:"omega_cs"`
	Alpha         float64 `yaml:"alpha"`

	ProlifStart      int     `yaml:"prolif_start"`
	ProlifFreq       int     `yaml:"prolif_freq"`
	MutationStrength float64 `yaml:"mutation_strength"`
	MaxPropVal       float64 `yaml:"max_prop_val"`
	MinPropVal       float64 `yaml:"min_prop_val"`
	TimeCorrOU       float64 `yaml:"time_corr_ou"`
	SigmaOU          float64 `yaml:"sigma_ou"`

	SPol  float64 `yaml:"s_pol"`
	DPol  float64 `yaml:"d_pol"`
	JPol  float64 `yaml:"j_pol"`
	KPol  float64 `yaml:"k_pol"`
	ZetaS float64 `yaml:"zeta_s"`
	ZetaQ float64 `yaml:"zeta_q"`
	SNem  float64 `yaml:"s_nem"`
	KNem  float64 `yaml:"k_nem"`
	JNem  float64 `yaml:"j_nem"`
	WNem  float64 `yaml:"w_nem"`
}

type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Positions string `yaml:"positions"`
	Card      string `yaml:"card"`
	Summary   string `yaml:"summary"`
	Preview   string `yaml:"preview"`
	Spacing   string `yaml:"spacing"`
}

// Default returns the configuration of a 5x5 monolayer of cells of radius 8.
func Default() Config {
	return Config{
		Seed: 1,
		Lattice: LatticeConfig{
			Kind:       "square",
			Cells:      25,
			Layers:     1,
			Radius:     8,
			Disorder:   0,
			EdgeOffset: 8,
		},
		Simulation: SimulationConfig{
			Config:      "input const",
			Steps:       3000,
			Info:        10,
			LZ:          40,
			Substeps:    5,
			BC:          2,
			Margin:      18,
			RelaxTime:   50,
			MaxPhases:   400,
			Proliferate: true,

			Gamma:         0.007,
			Mu:            45,
			Lambda:        3,
			Kappa:         0.5,
			Xi:            1,
			OmegaCC:       0.001,
			WallThickness: 7,
			WallKappa:     0.15,
			OmegaCS:       0.0025,
			Alpha:         0.05,

			ProlifStart:      150,
			ProlifFreq:       75,
			MutationStrength: 0.1,
			MaxPropVal:       0.009,
			MinPropVal:       0.005,
			TimeCorrOU:       5,
			SigmaOU:          2,

			SPol: 1,
			DPol: 0.01,
			JPol: 0.005,
			KPol: 0.001,
		},
		Output: OutputConfig{
			Dir:       ".",
			Positions: "input_str.dat",
			Card:      "simCard.dat",
			Summary:   "simulation_parameter_summary.dat",
		},
	}
}

// Load reads the YAML file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML data on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (cfg Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (cfg Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
		}
	}

	l := cfg.Lattice
	_, err := celllattice.ParseKind(l.Kind)
	check(err == nil, "lattice.kind %q is not square, cubic or triangular", l.Kind)
	check(l.Cells >= 1, "lattice.cells %d must be >= 1", l.Cells)
	check(l.Layers >= 1, "lattice.layers %d must be >= 1", l.Layers)
	check(l.Radius > 0, "lattice.radius %v must be positive", l.Radius)
	check(l.Disorder >= 0, "lattice.disorder %v must be >= 0", l.Disorder)

	s := cfg.Simulation
	check(s.Steps >= 1, "simulation.nsteps %d must be >= 1", s.Steps)
	check(s.LZ >= 1, "simulation.lz %d must be >= 1", s.LZ)
	check(s.WallThickness >= 0, "simulation.wall_thickness %v must be >= 0", s.WallThickness)
	check(s.MaxPhases >= l.Cells, "simulation.nphases_max %d must be >= lattice.cells %d", s.MaxPhases, l.Cells)

	check(cfg.Output.Positions != "", "output.positions must be set")
	check(cfg.Output.Card != "", "output.card must be set")

	return errors.Join(errs...)
}

// Side returns the number of cells along x and y: floor(sqrt(Cells)).
func (cfg Config) Side() int {
	return int(math.Sqrt(float64(cfg.Lattice.Cells)))
}

// Spacing returns the lattice spacing, one cell diameter.
func (cfg Config) Spacing() float64 {
	return 2 * cfg.Lattice.Radius
}

// BoxSize returns the simulation box extent along x and y.
func (cfg Config) BoxSize() int {
	return int(float64(cfg.Side()) * cfg.Spacing())
}

// ZCoor returns the height of the cell plane above the bottom wall.
func (cfg Config) ZCoor() int {
	return int(cfg.Simulation.WallThickness + cfg.Lattice.Radius/2)
}

// LatticeSpec translates the lattice section into a lattice description.
func (cfg Config) LatticeSpec() (celllattice.Spec, error) {
	kind, err := celllattice.ParseKind(cfg.Lattice.Kind)
	if err != nil {
		return celllattice.Spec{}, err
	}
	side := cfg.Side()
	box := float64(cfg.BoxSize())
	return celllattice.Spec{
		Kind:       kind,
		Spacing:    cfg.Spacing(),
		NX:         side,
		NY:         side,
		NZ:         cfg.Lattice.Layers,
		Width:      box,
		Height:     box,
		ZPlane:     float64(cfg.ZCoor()),
		EdgeOffset: cfg.Lattice.EdgeOffset,
	}, nil
}
