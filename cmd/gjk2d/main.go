// Command gjk2d tests convex polygons for overlap.
//
//	gjk2d pair "[[4, 11], [4, 5], [9, 9]]" "[[5, 7], [7, 3], [10, 2], [12, 7]]"
//	gjk2d check testdata/fixtures.yaml
//	gjk2d svg testdata/shapes.svg
//	gjk2d stress --trials 0 "[[0, 0], [2, 0], [2, 2], [0, 2]]" "[[1, 1], [3, 1], [3, 3], [1, 3]]"
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akmonengine/gjk2d/gjk"
	"github.com/akmonengine/gjk2d/logging"
	"github.com/akmonengine/gjk2d/stress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, runs the command and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("gjk2d", "Convex polygon intersection with GJK.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	verbose := app.Flag("verbose", "Debug logs on stderr.").Short('v').Bool()
	noColor := app.Flag("no-color", "Plain output.").Bool()
	maxIterations := app.Flag("max-iterations", "GJK iteration ceiling, 0 for the default.").Default("0").Int()
	tolerance := app.Flag("tolerance", "Length under which a search direction counts as zero, 0 for exact checks.").Default("0").Float64()
	workers := app.Flag("workers", "Concurrent workers.").Default("1").Int()

	pairCmd := app.Command("pair", "Test two polygons given as [[x, y], ...].")
	pairA := pairCmd.Arg("a", "First polygon.").Required().String()
	pairB := pairCmd.Arg("b", "Second polygon.").Required().String()
	pairRender := pairCmd.Flag("render", "Write a PNG of the pair.").PlaceHolder("FILE").String()
	pairPreview := pairCmd.Flag("preview", "Print the PNG inline (iTerm2).").Bool()

	checkCmd := app.Command("check", "Run a YAML fixture file.")
	checkFile := checkCmd.Arg("file", "Fixture file.").Required().ExistingFile()

	svgCmd := app.Command("svg", "Report the overlapping <polygon> elements of an SVG file.")
	svgFile := svgCmd.Arg("file", "SVG file.").Required().ExistingFile()

	stressCmd := app.Command("stress", "Perturb two polygons and report verdict flips.")
	stressA := stressCmd.Arg("a", "First polygon.").Required().String()
	stressB := stressCmd.Arg("b", "Second polygon.").Required().String()
	stressTrials := stressCmd.Flag("trials", "Number of trials, 0 runs until interrupted.").Default("1000").Int()
	stressEpsilon := stressCmd.Flag("epsilon", "Maximum offset of each coordinate.").Default("1e-6").Float64()
	stressSeed := stressCmd.Flag("seed", "Seed of the first trial.").Default("1").Int64()

	command, err := app.Parse(args)
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	env := environment{
		out:    stdout,
		au:     aurora.NewAurora(!*noColor),
		logger: logging.NewSlog(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))),
		config: gjk.Config{MaxIterations: *maxIterations, Tolerance: *tolerance},
	}

	switch command {
	case pairCmd.FullCommand():
		err = env.pair(*pairA, *pairB, *pairRender, *pairPreview)
	case checkCmd.FullCommand():
		err = env.check(*checkFile, *workers)
	case svgCmd.FullCommand():
		err = env.svg(*svgFile, *workers)
	case stressCmd.FullCommand():
		err = env.stress(ctx, *stressA, *stressB, stress.Config{
			Trials:  *stressTrials,
			Epsilon: *stressEpsilon,
			Seed:    *stressSeed,
			Workers: *workers,
		})
	}

	if err != nil {
		app.Errorf("%v", err)
		return 1
	}
	return 0
}
