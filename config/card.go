// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package config

import "github.com/2dChan/celllattice/cardfile"

// Card returns the parameter card for a run starting with cells cells, keys
// in the order the simulator expects.
func (cfg Config) Card(cells int) *cardfile.Card {
	s := cfg.Simulation
	box := cfg.BoxSize()

	c := cardfile.NewCard()
	c.Set("config", s.Config)
	c.Set("nsteps", s.Steps)
	c.Set("ninfo", s.Info)
	c.Set("LX", box)
	c.Set("LY", box)
	c.Set("LZ", s.LZ)
	c.Set("nsubsteps", s.Substeps)
	c.Set("bc", s.BC)
	c.Set("margin", s.Margin)
	c.Set("relax-time", s.RelaxTime)
	c.Set("nphases_init", cells)
	c.Set("nphases_max", s.MaxPhases)
	c.Set("gamma", s.Gamma)
	c.Set("mu", s.Mu)
	c.Set("lambda", s.Lambda)
	c.Set("kappa_cc", s.Kappa)
	c.Set("R", cfg.Lattice.Radius)
	c.Set("xi", s.Xi)
	c.Set("omega_cc", s.OmegaCC)
	c.Set("wall-thickness", s.WallThickness)
	c.Set("kappa_cs", s.WallKappa)
	c.Set("omega_cs", s.OmegaCS)
	c.Set("prolif_start", s.ProlifStart)
	c.Set("prolif_freq", s.ProlifFreq)
	c.Set("proliferate", s.Proliferate)
	c.Set("mutation_strength", s.MutationStrength)
	c.Set("max_prop_val", s.MaxPropVal)
	c.Set("min_prop_val", s.MinPropVal)
	c.Set("time_corr_OU", s.TimeCorrOU)
	c.Set("sigma_OU", s.SigmaOU)
	c.Set("alpha", s.Alpha)
	c.Set("S-pol", s.SPol)
	c.Set("D-pol", s.DPol)
	c.Set("J-pol", s.JPol)
	c.Set("K-pol", s.KPol)
	c.Set("zetaS", s.ZetaS)
	c.Set("zetaQ", s.ZetaQ)
	c.Set("S-nem", s.SNem)
	c.Set("K-nem", s.KNem)
	c.Set("J-nem", s.JNem)
	c.Set("W-nem", s.WNem)
	return c
}
