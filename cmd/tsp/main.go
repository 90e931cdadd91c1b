// Command tsp builds a heuristic tour for a TSPLIB instance and reports its
// length, optionally improving it with randomized 2-opt and animating the
// progress through gnuplot.
//
//	tsp -file berlin52.tsp -algo greedy -2opt -gnuplot -gif greedy_berlin52.gif
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/toomuat/tsp/gen"
	"github.com/toomuat/tsp/plot"
	"github.com/toomuat/tsp/tsp"
	"github.com/toomuat/tsp/tsplib"
)

// randomExtent is the side of the square -random draws cities from.
const randomExtent = 1000

type config struct {
	file    string
	algo    string
	twoOpt  bool
	iters   uint64
	seed    int64
	index   bool
	timeout time.Duration
	gnuplot bool
	gif     string
	every   int

	random     int
	randomSeed uint64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[tsp] ")

	cfg := parseFlags(os.Args[1:])
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func parseFlags(args []string) config {
	var cfg config
	fs := flag.NewFlagSet("tsp", flag.ExitOnError)
	fs.StringVar(&cfg.file, "file", "berlin52.tsp", "TSPLIB instance with a NODE_COORD_SECTION")
	fs.StringVar(&cfg.algo, "algo", "greedy", "constructor: greedy, nn or ni")
	fs.BoolVar(&cfg.twoOpt, "2opt", false, "improve the tour with randomized 2-opt")
	fs.Uint64Var(&cfg.iters, "iters", tsp.DefaultIterations, "2-opt iterations")
	fs.Int64Var(&cfg.seed, "seed", 0, "2-opt seed; 0 picks one from the clock")
	fs.BoolVar(&cfg.index, "index", false, "answer nearest-neighbour queries with an R-tree")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "soft 2-opt time limit (0 = none)")
	fs.BoolVar(&cfg.gnuplot, "gnuplot", false, "animate progress in a gnuplot window")
	fs.StringVar(&cfg.gif, "gif", "", "write the gnuplot animation to this GIF file")
	fs.IntVar(&cfg.every, "every", 1, "draw one gnuplot frame per N events")
	fs.IntVar(&cfg.random, "random", 0, "solve N uniform random cities instead of -file")
	fs.Uint64Var(&cfg.randomSeed, "random-seed", 1, "seed for -random")
	_ = fs.Parse(args)

	return cfg
}

func run(cfg config, stdout io.Writer) error {
	algo, err := tsp.ParseAlgorithm(cfg.algo)
	if err != nil {
		return fmt.Errorf("-algo %q: %w", cfg.algo, err)
	}

	inst, err := loadInstance(cfg)
	if err != nil {
		return err
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.TwoOpt = cfg.twoOpt
	opts.Iterations = cfg.iters
	opts.SpatialIndex = cfg.index
	opts.TimeLimit = cfg.timeout
	opts.Seed = cfg.seed
	if opts.TwoOpt && opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
		log.Printf("Using 2-opt seed %d", opts.Seed)
	}

	var gp *gnuplotProcess
	if cfg.gnuplot || cfg.gif != "" {
		gp, err = startGnuplot(inst, algo, cfg)
		if err != nil {
			return err
		}
		opts.Observer = gp.plot
	}

	start := time.Now()
	res, err := tsp.Solve(inst.Cities, opts)
	switch {
	case errors.Is(err, tsp.ErrTimeLimit):
		log.Printf("2-opt stopped after %d iterations: time limit %s reached", res.TwoOpt.Iterations, cfg.timeout)
	case err != nil:
		if gp != nil {
			_ = gp.wait()
		}
		return fmt.Errorf("failed to solve: %w", err)
	}
	log.Printf("%s finished in %s", algo, time.Since(start).Round(time.Millisecond))
	if res.TwoOpt != nil {
		log.Printf("2-opt applied %d of %d moves: %d -> %d",
			res.TwoOpt.Applied, res.TwoOpt.Iterations, res.TwoOpt.Initial, res.TwoOpt.Final)
	}

	if gp != nil {
		gp.plot.Frame(res.Route.Index)
		if err := gp.wait(); err != nil {
			return fmt.Errorf("gnuplot: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Total distance: %d\n", res.Length)

	return nil
}

// loadInstance reads -file, or generates cities when -random is set.
func loadInstance(cfg config) (tsplib.Instance, error) {
	if cfg.random > 0 {
		cities, err := gen.Uniform(cfg.random, randomExtent, randomExtent, gen.WithSeed(cfg.randomSeed))
		if err != nil {
			return tsplib.Instance{}, fmt.Errorf("failed to generate cities: %w", err)
		}
		log.Printf("Generated %d random cities (seed %d)", cfg.random, cfg.randomSeed)

		return tsplib.Instance{
			Name:      fmt.Sprintf("random%d", cfg.random),
			Dimension: cfg.random,
			Cities:    cities,
		}, nil
	}

	inst, err := tsplib.Load(cfg.file)
	if err != nil {
		return tsplib.Instance{}, fmt.Errorf("failed to load cities: %w", err)
	}
	log.Printf("Loaded %d cities from %s", len(inst.Cities), cfg.file)

	return inst, nil
}

// gnuplotProcess is a running gnuplot fed through its stdin.
type gnuplotProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	plot  *plot.Gnuplot
}

func startGnuplot(inst tsplib.Instance, algo tsp.Algorithm, cfg config) (*gnuplotProcess, error) {
	cmd := exec.Command("gnuplot", "-persist")
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("gnuplot stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start gnuplot: %w", err)
	}

	name := inst.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(cfg.file), filepath.Ext(cfg.file))
	}
	g, err := plot.NewGnuplot(stdin, inst.Cities, plot.Config{
		Title: fmt.Sprintf("%s %s", algo, name),
		GIF:   cfg.gif,
		Every: cfg.every,
	})
	if err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return nil, fmt.Errorf("gnuplot header: %w", err)
	}
	if cfg.gif != "" {
		log.Printf("Writing animation to %s", cfg.gif)
	}

	return &gnuplotProcess{cmd: cmd, stdin: stdin, plot: g}, nil
}

// wait finishes the plot stream and waits for gnuplot to exit.
func (p *gnuplotProcess) wait() error {
	perr := p.plot.Close()
	cerr := p.stdin.Close()
	werr := p.cmd.Wait()

	return errors.Join(perr, cerr, werr)
}
