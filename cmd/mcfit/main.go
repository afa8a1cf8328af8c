// Command mcfit applies a cosmological integral transform to a tabulated
// function.
//
// Usage:
//
//	mcfit [flags] transform-name [file]
//
// The input is a two-column whitespace-separated table of grid points and
// function values, read from the file argument or standard input. Lines
// starting with # are skipped. The grid must be log-evenly spaced.
//
// Examples:
//
//	mcfit p2xi power.txt
//	mcfit -l 2 p2xi power.txt
//	mcfit -q 2 -no-extrap tophatvar power.txt
//	mcfit c2w cl.txt
//	mcfit -list
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/AZhou00/mcfit/cosmology"
	"github.com/AZhou00/mcfit/fftlog"
	"github.com/AZhou00/mcfit/transforms"
)

// applier is the part of the transform wrappers the command needs.
type applier interface {
	Apply(F []float64, extrap fftlog.Extrap) (y, G []float64, err error)
	Check(F []float64) ([]string, error)
}

type transformEntry struct {
	name    string
	desc    string
	outCols [2]string
	build   func(x []float64, order int, opts cosmology.Options) (applier, error)
}

var registry = []transformEntry{
	{
		name: "p2xi", desc: "power spectrum multipole to correlation function",
		outCols: [2]string{"r", "xi"},
		build: func(x []float64, order int, opts cosmology.Options) (applier, error) {
			return cosmology.NewP2Xi(x, order, opts)
		},
	},
	{
		name: "xi2p", desc: "correlation function multipole to power spectrum",
		outCols: [2]string{"k", "P"},
		build: func(x []float64, order int, opts cosmology.Options) (applier, error) {
			return cosmology.NewXi2P(x, order, opts)
		},
	},
	{
		name: "tophatvar", desc: "variance in a top-hat window",
		outCols: [2]string{"R", "var"},
		build: func(x []float64, _ int, opts cosmology.Options) (applier, error) {
			return cosmology.NewTophatVar(x, opts)
		},
	},
	{
		name: "gaussvar", desc: "variance in a Gaussian window",
		outCols: [2]string{"R", "var"},
		build: func(x []float64, _ int, opts cosmology.Options) (applier, error) {
			return cosmology.NewGaussVar(x, opts)
		},
	},
	{
		name: "c2w", desc: "angular power spectrum to angular correlation",
		outCols: [2]string{"theta", "w"},
		build: func(x []float64, order int, opts cosmology.Options) (applier, error) {
			return cosmology.NewC2W(x, order, opts)
		},
	},
	{
		name: "w2c", desc: "angular correlation to angular power spectrum",
		outCols: [2]string{"ell", "C"},
		build: func(x []float64, order int, opts cosmology.Options) (applier, error) {
			return cosmology.NewW2C(x, order, opts)
		},
	},
	{
		name: "hankel", desc: "plain Hankel transform pair",
		outCols: [2]string{"y", "G"},
		build: func(x []float64, order int, opts cosmology.Options) (applier, error) {
			return transforms.NewHankel(x, float64(order), transforms.Options{
				Q:       opts.Q,
				N:       opts.N,
				LowRing: opts.LowRing,
			})
		},
	},
}

func main() {
	order := flag.Int("l", 0, "multipole order for p2xi/xi2p, Bessel order for c2w/w2c")
	tilt := flag.Float64("q", 0, "power-law tilt, 0 selects the transform default")
	fftLen := flag.Int("fft", 0, "FFT length, 0 selects the engine default")
	noLowring := flag.Bool("no-lowring", false, "disable the low-ringing output grid")
	noExtrap := flag.Bool("no-extrap", false, "pad with zeros instead of power-law tails")
	check := flag.Bool("check", false, "print input diagnostics to stderr")
	list := flag.Bool("list", false, "list available transform names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mcfit [flags] transform-name [file]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a cosmological integral transform to a two-column table\n")
		fmt.Fprintf(os.Stderr, "read from the file argument or standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mcfit p2xi power.txt\n")
		fmt.Fprintf(os.Stderr, "  mcfit -l 2 p2xi power.txt\n")
		fmt.Fprintf(os.Stderr, "  mcfit -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	entry, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown transform %q (use -list to see available)\n", args[0])
		os.Exit(1)
	}

	x, F, err := readTable(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := cosmology.Options{
		Q:       *tilt,
		N:       *fftLen,
		LowRing: !*noLowring,
	}

	tr, err := entry.build(x, *order, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *check {
		warnings, err := tr.Check(F)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}

	extrap := fftlog.ExtrapBoth
	if *noExtrap {
		extrap = fftlog.ExtrapNone
	}

	y, G, err := tr.Apply(F, extrap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTable(entry, y, G)
}

func lookup(name string) (transformEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}

	return transformEntry{}, false
}

func printList() {
	names := make([]string, len(registry))
	byName := make(map[string]string, len(registry))

	for i, e := range registry {
		names[i] = e.name
		byName[e.name] = e.desc
	}

	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t%s\n", n, byName[n])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// readTable reads the two-column input from the named file, or standard
// input when no name is given.
func readTable(args []string) (x, F []float64, err error) {
	r := os.Stdin

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		r = f
	}

	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("line %d: need two columns, got %d", line, len(fields))
		}

		xv, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %v", line, err)
		}

		fv, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %v", line, err)
		}

		x = append(x, xv)
		F = append(F, fv)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return x, F, nil
}

func printTable(entry transformEntry, y, G []float64) {
	w := bufio.NewWriter(os.Stdout)

	fmt.Fprintf(w, "# %s\t%s\n", entry.outCols[0], entry.outCols[1])

	for i := range y {
		fmt.Fprintf(w, "%.12e\t%.12e\n", y[i], G[i])
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
