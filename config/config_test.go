// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/2dChan/celllattice"
	"github.com/google/go-cmp/cmp"
)

func TestDefault_Derived(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Side", float64(cfg.Side()), 5},
		{"Spacing", cfg.Spacing(), 16},
		{"BoxSize", float64(cfg.BoxSize()), 80},
		{"ZCoor", float64(cfg.ZCoor()), 11},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Default().%s() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConfig_LatticeSpec(t *testing.T) {
	cfg := Default()
	got, err := cfg.LatticeSpec()
	if err != nil {
		t.Fatalf("cfg.LatticeSpec() error = %v, want nil", err)
	}
	want := celllattice.Spec{
		Kind:       celllattice.Square,
		Spacing:    16,
		NX:         5,
		NY:         5,
		NZ:         1,
		Width:      80,
		Height:     80,
		ZPlane:     11,
		EdgeOffset: 8,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cfg.LatticeSpec() mismatch (-want +got):\n%s", diff)
	}

	cfg.Lattice.Kind = "hexagonal"
	if _, err := cfg.LatticeSpec(); err == nil {
		t.Errorf("cfg.LatticeSpec() with kind %q error = nil, want non-nil", cfg.Lattice.Kind)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
seed: 42
lattice:
  kind: triangular
  cells: 36
  radius: 6
  disorder: 0.5
simulation:
  gamma: 0.008
  omega_cc: 0.0008
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(...) error = %v, want nil", err)
	}

	want := Default()
	want.Seed = 42
	want.Lattice.Kind = "triangular"
	want.Lattice.Cells = 36
	want.Lattice.Radius = 6
	want.Lattice.Disorder = 0.5
	want.Simulation.Gamma = 0.008
	want.Simulation.OmegaCC = 0.0008
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v, want nil", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_UnknownKey(t *testing.T) {
	if _, err := Parse([]byte("lattice:\n  spacing: 3\n")); err == nil {
		t.Errorf("Parse(unknown key) error = nil, want non-nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown kind", func(c *Config) { c.Lattice.Kind = "hexagonal" }},
		{"no cells", func(c *Config) { c.Lattice.Cells = 0 }},
		{"no layers", func(c *Config) { c.Lattice.Layers = 0 }},
		{"radius zero", func(c *Config) { c.Lattice.Radius = 0 }},
		{"negative disorder", func(c *Config) { c.Lattice.Disorder = -1 }},
		{"no steps", func(c *Config) { c.Simulation.Steps = 0 }},
		{"too many cells", func(c *Config) { c.Simulation.MaxPhases = 10 }},
		{"no positions file", func(c *Config) { c.Output.Positions = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("cfg.Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Lattice.Kind = "cubic"
	cfg.Lattice.Layers = 3
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("cfg.Marshal() error = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), "lattice.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v, want nil", path, err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load(missing) error = nil, want non-nil")
	}
}

func TestConfig_Card(t *testing.T) {
	c := Default().Card(25)

	wantFirst := []string{"config", "nsteps", "ninfo", "LX", "LY", "LZ"}
	if diff := cmp.Diff(wantFirst, c.Keys()[:len(wantFirst)]); diff != "" {
		t.Errorf("Card(25).Keys() prefix mismatch (-want +got):\n%s", diff)
	}
	if got, want := c.Len(), 41; got != want {
		t.Errorf("Card(25).Len() = %v, want %v", got, want)
	}

	wantValues := map[string]string{
		"config":       "input const",
		"LX":           "80",
		"LY":           "80",
		"LZ":           "40",
		"nphases_init": "25",
		"R":            "8",
		"gamma":        "0.007",
		"omega_cs":     "0.0025",
		"proliferate":  "true",
		"S-pol":        "1",
		"W-nem":        "0",
	}
	for key, want := range wantValues {
		got, ok := c.Get(key)
		if !ok || got != want {
			t.Errorf("Card(25).Get(%q) = %q, %v, want %q, true", key, got, ok, want)
		}
	}
}
