// Command lvsimplex solves a minimum-cost-flow problem, or one-to-all
// shortest paths when -source is given, and optionally replays a mutation
// script against the live solution.
//
//	lvsimplex -f network.min
//	lvsimplex -f network.hcl -script changes.txt -check -v 1
//	lvsimplex -f roads.hcl -source depot
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-simplex/simplex"
)

type options struct {
	file    string
	script  string
	source  string
	pricing simplex.Pricing
	check   bool
	verbose int
	noColor bool
}

func flagsToOptions() (options, error) {
	filePtr := flag.String("f", "", "Problem file: DIMACS (.min, .dimacs) or HCL (.hcl).")
	scriptPtr := flag.String("script", "", "Mutation script replayed after the first solve.")
	sourcePtr := flag.String("source", "", "Solve shortest paths from this node instead of min-cost flow.")
	pricingPtr := flag.String("pricing", "most", "Pricing rule: most (most negative) or first (first negative).")
	checkPtr := flag.Bool("check", false, "Verify every solver invariant after each compute and cross-check infeasibility against max flow.")
	verbosePtr := flag.Int("v", 0, "Log verbosity. 0 for info, 1 per compute, 2 per mutation, 3 per pivot.")
	colourPtr := flag.Bool("nocolor", false, "Removes the colouring from the log output.")
	flag.Parse()

	opts := options{
		file:    *filePtr,
		script:  *scriptPtr,
		source:  *sourcePtr,
		check:   *checkPtr,
		verbose: *verbosePtr,
		noColor: *colourPtr,
	}
	if opts.file == "" {
		return opts, fmt.Errorf("no problem file given (-f)")
	}
	switch *pricingPtr {
	case "most":
		opts.pricing = simplex.MostNegative
	case "first":
		opts.pricing = simplex.FirstNegative
	default:
		return opts, fmt.Errorf("unknown pricing %q, want most or first", *pricingPtr)
	}
	if opts.verbose < 0 {
		return opts, fmt.Errorf("verbosity must be non-negative")
	}
	return opts, nil
}

// newLogger writes to stderr so that reports on stdout stay parseable.
// logr V(n) maps to zerolog level 1-n.
func newLogger(opts options) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly, NoColor: opts.noColor}
	zl := zerolog.New(cw).Level(zerolog.Level(1 - opts.verbose)).With().Timestamp().Logger()
	return zerologr.New(&zl)
}

func main() {
	opts, err := flagsToOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvsimplex:", err)
		flag.Usage()
		os.Exit(2)
	}
	log := newLogger(opts)
	if err := run(opts, log, os.Stdout); err != nil {
		log.Error(err, "failed")
		os.Exit(1)
	}
}
