package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayhiben/washi-cut/mesh"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "washi_wrap.svg", cfg.Out)
	assert.Equal(t, mesh.UnitMM, cfg.Unit)
	assert.Equal(t, 0.0, cfg.Shrink)
	assert.Equal(t, 2.0, cfg.Gap)
	assert.Equal(t, 1.0, cfg.Margin)
	assert.Equal(t, 1, cfg.Duplicates)
	assert.Equal(t, ModeStrips, cfg.Mode)
	assert.Equal(t, 24, cfg.Beam)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.Fallback)
}

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{
		"-tape-width", "15",
		"-out", "d20.svg",
		"-stl-unit", "inch",
		"-shrink", "0.2",
		"-gap", "3",
		"-margin", "2",
		"-duplicates", "4",
		"-mode", "hamiltonian",
		"-seed", "7",
		"-ham-beam", "16",
		"-ham-timeout", "500ms",
		"-no-ham-fallback",
		"-dxf", "d20.dxf",
		"-pdf", "d20.pdf",
		"-v",
		"d20.stl",
	})
	require.NoError(t, err)

	assert.Equal(t, "d20.stl", cfg.MeshPath)
	assert.Equal(t, 15.0, cfg.TapeWidth)
	assert.Equal(t, "d20.svg", cfg.Out)
	assert.Equal(t, mesh.UnitInch, cfg.Unit)
	assert.Equal(t, 0.2, cfg.Shrink)
	assert.Equal(t, 3.0, cfg.Gap)
	assert.Equal(t, 2.0, cfg.Margin)
	assert.Equal(t, 4, cfg.Duplicates)
	assert.Equal(t, ModeRibbon, cfg.Mode)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 16, cfg.Beam)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.False(t, cfg.Fallback)
	assert.Equal(t, "d20.dxf", cfg.DXFOut)
	assert.Equal(t, "d20.pdf", cfg.PDFOut)
	assert.True(t, cfg.Verbose)
}

func TestParseArgs_Minimal(t *testing.T) {
	cfg, err := parseArgs([]string{"-tape-width", "15", "cube.stl"})
	require.NoError(t, err)
	assert.Equal(t, "cube.stl", cfg.MeshPath)
	assert.Equal(t, 15.0, cfg.TapeWidth)
	assert.True(t, cfg.Fallback)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	base := defaultConfig()
	base.MeshPath = "cube.stl"
	base.TapeWidth = 15

	require.NoError(t, base.Validate())

	for name, mutate := range map[string]func(*Config){
		"missing mesh":        func(c *Config) { c.MeshPath = "" },
		"zero tape width":     func(c *Config) { c.TapeWidth = 0 },
		"negative tape width": func(c *Config) { c.TapeWidth = -3 },
		"zero duplicates":     func(c *Config) { c.Duplicates = 0 },
		"bad mode":            func(c *Config) { c.Mode = "spiral" },
		"bad unit":            func(c *Config) { c.Unit = "furlong" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), errConfig)
		})
	}
}

// TestRun_Pipeline drives the whole pipeline against a generated
// tetrahedron and checks every requested output lands on disk.
func TestRun_Pipeline(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "tetra.stl")
	require.NoError(t, mesh.Tetrahedron(10).SaveSTL(stl))

	cfg := defaultConfig()
	cfg.MeshPath = stl
	cfg.TapeWidth = 15
	cfg.Out = filepath.Join(dir, "band.svg")
	cfg.DXFOut = filepath.Join(dir, "band.dxf")
	cfg.PDFOut = filepath.Join(dir, "band.pdf")

	require.NoError(t, run(cfg))
	for _, p := range []string{cfg.Out, cfg.DXFOut, cfg.PDFOut} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

// TestRun_RibbonFallback uses hamiltonian mode on a shell the ribbon
// search cannot cover; the run still succeeds through the bfs
// fallback.
func TestRun_RibbonFallback(t *testing.T) {
	dir := t.TempDir()
	stl := filepath.Join(dir, "tetra.stl")
	require.NoError(t, mesh.Tetrahedron(10).SaveSTL(stl))

	cfg := defaultConfig()
	cfg.MeshPath = stl
	cfg.TapeWidth = 15
	cfg.Mode = ModeRibbon
	cfg.Timeout = 500 * time.Millisecond
	cfg.Out = filepath.Join(dir, "band.svg")

	require.NoError(t, run(cfg))
	_, err := os.Stat(cfg.Out)
	require.NoError(t, err)

	cfg.Fallback = false
	assert.Error(t, run(cfg), "without the fallback the failure surfaces")
}

func TestRun_MissingMesh(t *testing.T) {
	cfg := defaultConfig()
	cfg.MeshPath = filepath.Join(t.TempDir(), "nope.stl")
	cfg.TapeWidth = 15
	cfg.Out = filepath.Join(t.TempDir(), "band.svg")

	assert.Error(t, run(cfg))
}
