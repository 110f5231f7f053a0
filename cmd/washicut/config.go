package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sayhiben/washi-cut/mesh"
)

// Planner mode names accepted on the command line.
const (
	ModeStrips = "bfs"
	ModeRibbon = "hamiltonian"
)

// errConfig marks a command-line value outside its legal range.
var errConfig = errors.New("invalid configuration")

// Config is the parsed command line.
type Config struct {
	MeshPath   string
	TapeWidth  float64 // mm
	Out        string
	Unit       string // mesh.UnitMM or mesh.UnitInch
	Shrink     float64
	Gap        float64
	Margin     float64
	Duplicates int
	Mode       string
	Seed       int64
	Beam       int
	Timeout    time.Duration
	Fallback   bool // fall back to bfs strips when the ribbon search fails
	DXFOut     string
	PDFOut     string
	Verbose    bool
}

func defaultConfig() Config {
	return Config{
		Out:        "washi_wrap.svg",
		Unit:       mesh.UnitMM,
		Gap:        2,
		Margin:     1,
		Duplicates: 1,
		Mode:       ModeStrips,
		Beam:       24,
		Timeout:    2 * time.Second,
		Fallback:   true,
	}
}

// Validate reports the first illegal field.
func (c Config) Validate() error {
	if c.MeshPath == "" {
		return fmt.Errorf("%w: missing mesh file argument", errConfig)
	}
	if !(c.TapeWidth > 0) || math.IsInf(c.TapeWidth, 1) {
		return fmt.Errorf("%w: tape width must be positive, got %v", errConfig, c.TapeWidth)
	}
	if c.Duplicates < 1 {
		return fmt.Errorf("%w: duplicates must be at least 1, got %d", errConfig, c.Duplicates)
	}
	if c.Mode != ModeStrips && c.Mode != ModeRibbon {
		return fmt.Errorf("%w: mode must be %q or %q, got %q", errConfig, ModeStrips, ModeRibbon, c.Mode)
	}
	if c.Unit != mesh.UnitMM && c.Unit != mesh.UnitInch {
		return fmt.Errorf("%w: unit must be %q or %q, got %q", errConfig, mesh.UnitMM, mesh.UnitInch, c.Unit)
	}

	return nil
}
