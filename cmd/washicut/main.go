// Command washicut turns a closed mesh into a washi tape cutting
// sheet: it unfolds the shell into flat strips that fit the tape
// width, packs them into one band and writes the band as SVG
// (optionally DXF and PDF).
//
//	washicut -tape-width 15 dice.stl
//	washicut -tape-width 15 -mode hamiltonian -shrink 0.2 -out d20.svg d20.stl
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	washicut "github.com/sayhiben/washi-cut"
	"github.com/sayhiben/washi-cut/export"
	"github.com/sayhiben/washi-cut/facegraph"
	"github.com/sayhiben/washi-cut/layout"
	"github.com/sayhiben/washi-cut/mesh"
	"github.com/sayhiben/washi-cut/region"
	"github.com/sayhiben/washi-cut/unfold"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// parseArgs maps the flag surface onto a Config. The one positional
// argument is the mesh file.
func parseArgs(args []string) (Config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("washicut", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: washicut [flags] mesh.stl")
		fs.PrintDefaults()
	}

	fs.Float64Var(&cfg.TapeWidth, "tape-width", 0, "tape width in mm (required)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output SVG path")
	fs.StringVar(&cfg.Unit, "stl-unit", cfg.Unit, "input mesh unit: mm or inch")
	fs.Float64Var(&cfg.Shrink, "shrink", cfg.Shrink, "shrink each face outline by this many mm before cutting")
	fs.Float64Var(&cfg.Gap, "gap", cfg.Gap, "gap between strips in mm")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "sheet margin in mm")
	fs.IntVar(&cfg.Duplicates, "duplicates", cfg.Duplicates, "how many copies of the strip set to lay out")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "unfolding mode: bfs or hamiltonian")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (reserved)")
	fs.IntVar(&cfg.Beam, "ham-beam", cfg.Beam, "beam width for the hamiltonian search")
	fs.DurationVar(&cfg.Timeout, "ham-timeout", cfg.Timeout, "time budget for the hamiltonian search")
	noFallback := fs.Bool("no-ham-fallback", false, "fail instead of falling back to bfs strips")
	fs.StringVar(&cfg.DXFOut, "dxf", cfg.DXFOut, "also write a DXF drawing to this path")
	fs.StringVar(&cfg.PDFOut, "pdf", cfg.PDFOut, "also write a PDF preview to this path")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.Fallback = !*noFallback
	cfg.MeshPath = fs.Arg(0)

	return cfg, nil
}

func run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		washicut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := mesh.Load(cfg.MeshPath, mesh.LoadOptions{Unit: cfg.Unit})
	if err != nil {
		return err
	}
	g, err := facegraph.Build(m, facegraph.Options{})
	if err != nil {
		return err
	}

	res, err := plan(g, cfg)
	if err != nil {
		return err
	}

	strips := assemble(res, cfg.Shrink)
	sheet, err := layout.Arrange(strips, layout.Options{
		TapeWidth:  cfg.TapeWidth,
		Gap:        cfg.Gap,
		Margin:     cfg.Margin,
		Duplicates: cfg.Duplicates,
	})
	if err != nil {
		return err
	}

	if err := export.SaveSVG(cfg.Out, sheet); err != nil {
		return err
	}
	if cfg.DXFOut != "" {
		if err := export.SaveDXF(cfg.DXFOut, sheet); err != nil {
			return err
		}
	}
	if cfg.PDFOut != "" {
		if err := export.SavePDF(cfg.PDFOut, sheet); err != nil {
			return err
		}
	}
	fmt.Printf("OK; wrote SVG to: %s\n", cfg.Out)

	return nil
}

// plan runs the configured planner. A failed ribbon search falls back
// to bfs strips unless the fallback is disabled.
func plan(g *facegraph.Graph, cfg Config) (*unfold.Result, error) {
	opts := unfold.Options{
		TapeWidth: cfg.TapeWidth,
		Beam:      cfg.Beam,
		Timeout:   cfg.Timeout,
		Seed:      cfg.Seed,
	}
	if cfg.Mode == ModeStrips {
		return unfold.Strips(g, opts)
	}

	start := time.Now()
	res, err := unfold.Ribbon(g, opts)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, unfold.ErrNoRibbon) && cfg.Fallback:
		washicut.Logger().Warn("ribbon search failed, falling back to strips",
			"err", err, "elapsed", time.Since(start))
		return unfold.Strips(g, opts)
	default:
		return nil, err
	}
}

// assemble turns each planned strip into one merged, optionally
// shrunk, cut region. Strips that vanish entirely are dropped.
func assemble(res *unfold.Result, shrink float64) []*region.Region {
	out := make([]*region.Region, 0, len(res.Strips))
	for _, s := range res.Strips {
		ids := make([]int, 0, len(s.Coords))
		for id := range s.Coords {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		r := region.New()
		for _, id := range ids {
			if err := r.Add(s.Coords[id]); err != nil {
				washicut.Logger().Warn("skipping outline", "face", id, "err", err)
			}
		}
		if shrink > 0 {
			r.ShrinkEach(shrink)
		}
		r.Merge()
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}

	return out
}
