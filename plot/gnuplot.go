package plot

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/toomuat/tsp/tsp"
)

// ErrNoCities is returned by NewGnuplot for an empty city set.
var ErrNoCities = errors.New("plot: no cities to draw")

// DefaultDelay is the GIF frame delay, in hundredths of a second.
const DefaultDelay = 10

// Config controls the gnuplot output.
type Config struct {
	// Title is shown above every frame.
	Title string

	// GIF, when non-empty, renders an animated GIF to this file instead of an
	// interactive window.
	GIF string

	// Delay is the GIF frame delay; 0 selects DefaultDelay.
	Delay int

	// Every draws one frame per Every events; values below 2 draw them all.
	Every int
}

// Gnuplot writes plot commands for a fixed set of cities.
type Gnuplot struct {
	w      *bufio.Writer
	cities []tsp.City
	cfg    Config

	edges   [][2]int
	order   []int
	events  uint64
	pending bool
	frames  int
	err     error
}

// NewGnuplot writes the session header to w and returns the renderer.
func NewGnuplot(w io.Writer, cities []tsp.City, cfg Config) (*Gnuplot, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Every < 1 {
		cfg.Every = 1
	}

	g := &Gnuplot{w: bufio.NewWriter(w), cities: cities, cfg: cfg}
	if cfg.GIF != "" {
		g.printf("set terminal gif animate delay %d optimize size 800,800\n", cfg.Delay)
		g.printf("set output %q\n", cfg.GIF)
	}
	g.printf("set size square\n")
	g.printf("unset key\n")
	if cfg.Title != "" {
		g.printf("set title %q\n", cfg.Title)
	}
	g.flush()

	return g, g.err
}

// Observe implements tsp.Observer.
func (g *Gnuplot) Observe(e tsp.Event) {
	switch e.Kind {
	case tsp.EdgeAccepted, tsp.EdgeClosed:
		g.edges = append(g.edges, [2]int{e.From, e.To})
	default:
		if e.Order == nil {
			return
		}
		g.order = append(g.order[:0], e.Order...)
	}
	g.pending = true

	g.events++
	if g.events%uint64(g.cfg.Every) == 0 {
		g.drawPending()
	}
}

// Frame draws the closed tour through order (city indices, open form).
func (g *Gnuplot) Frame(order []int) {
	g.printf("plot '-' with points pt 7 ps 1 lc rgb \"black\", '-' with lines lc rgb \"red\"\n")
	g.writeCities()
	for _, v := range order {
		g.point(g.cities[v])
	}
	if len(order) > 0 {
		g.point(g.cities[order[0]])
	}
	g.printf("e\n")
	g.frames++
	g.flush()
}

// Edges draws the given city pairs as separate segments.
func (g *Gnuplot) Edges(edges [][2]int) {
	g.printf("plot '-' with points pt 7 ps 1 lc rgb \"black\", '-' with vectors nohead lc rgb \"red\"\n")
	g.writeCities()
	for _, e := range edges {
		p, q := g.cities[e[0]], g.cities[e[1]]
		g.printf("%g %g %g %g\n", p.X, p.Y, q.X-p.X, q.Y-p.Y)
	}
	g.printf("e\n")
	g.frames++
	g.flush()
}

// Frames returns the number of frames written so far.
func (g *Gnuplot) Frames() int { return g.frames }

// Err returns the first write error, if any.
func (g *Gnuplot) Err() error { return g.err }

// Close draws any state skipped by throttling, finishes the GIF output and
// flushes. It does not close the underlying writer.
func (g *Gnuplot) Close() error {
	g.drawPending()
	if g.cfg.GIF != "" {
		g.printf("unset output\n")
	}
	g.flush()

	return g.err
}

func (g *Gnuplot) drawPending() {
	if !g.pending {
		return
	}
	g.pending = false
	if g.order != nil {
		g.Frame(g.order)
	} else {
		g.Edges(g.edges)
	}
}

func (g *Gnuplot) writeCities() {
	for _, c := range g.cities {
		g.point(c)
	}
	g.printf("e\n")
}

func (g *Gnuplot) point(c tsp.City) {
	g.printf("%g %g\n", c.X, c.Y)
}

func (g *Gnuplot) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

func (g *Gnuplot) flush() {
	if g.err != nil {
		return
	}
	g.err = g.w.Flush()
}
