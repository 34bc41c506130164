package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/akmonengine/gjk2d"
	"github.com/akmonengine/gjk2d/actor"
	"github.com/akmonengine/gjk2d/codec"
	"github.com/akmonengine/gjk2d/gjk"
	"github.com/akmonengine/gjk2d/logging"
	"github.com/akmonengine/gjk2d/render"
	"github.com/akmonengine/gjk2d/stress"
)

// maxPrintedFlips bounds the flips listed by the stress command
const maxPrintedFlips = 10

// environment holds what every command writes to and runs with.
type environment struct {
	out    io.Writer
	au     aurora.Aurora
	logger logging.Logger
	config gjk.Config
}

func (e environment) verdict(collision bool) aurora.Value {
	if collision {
		return e.au.Red("collision")
	}
	return e.au.Green("no collision")
}

func (e environment) pair(textA, textB, renderPath string, preview bool) error {
	a, err := codec.ParsePolygon(textA)
	if err != nil {
		return errors.Wrap(err, "a")
	}
	b, err := codec.ParsePolygon(textB)
	if err != nil {
		return errors.Wrap(err, "b")
	}

	result, err := gjk.GJK(a, b, e.config)
	if err != nil {
		return err
	}
	e.logger.Debug("gjk", "collision", result.Collision, "iterations", result.Iterations, "simplex", result.Simplex.Slice())
	fmt.Fprintf(e.out, "%s (%d iterations)\n", e.verdict(result.Collision), result.Iterations)

	if renderPath == "" {
		if preview {
			e.logger.Warn("--preview needs --render")
		}
		return nil
	}

	img, err := render.Pair(a, b, result.Collision, render.Options{})
	if err != nil {
		return err
	}
	if err := render.SavePNG(renderPath, img); err != nil {
		return err
	}
	e.logger.Info("image written", "path", renderPath)

	if preview {
		return render.Preview(renderPath, e.out)
	}
	return nil
}

type checkResult struct {
	collision bool
	err       error
}

func (e environment) check(path string, workers int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fixtures, err := codec.LoadFixtures(file)
	if err != nil {
		return errors.Wrap(err, path)
	}

	results := make([]checkResult, len(fixtures))
	var g errgroup.Group
	g.SetLimit(max(1, workers))
	for i, fixture := range fixtures {
		i, fixture := i, fixture
		g.Go(func() error {
			result, err := gjk.GJK(fixture.A, fixture.B, e.config)
			results[i] = checkResult{collision: result.Collision, err: err}
			e.logger.Debug("fixture", "name", fixture.Name, "collision", result.Collision, "iterations", result.Iterations)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, fixture := range fixtures {
		result := results[i]
		switch {
		case result.err != nil:
			failed++
			fmt.Fprintf(e.out, "%s %s: %v\n", e.au.Red("ERROR"), fixture.Name, result.err)
		case fixture.Expect == nil:
			fmt.Fprintf(e.out, "%s %s: %s\n", e.au.Yellow("----"), fixture.Name, e.verdict(result.collision))
		case *fixture.Expect == result.collision:
			fmt.Fprintf(e.out, "%s %s: %s\n", e.au.Green("PASS"), fixture.Name, e.verdict(result.collision))
		default:
			failed++
			fmt.Fprintf(e.out, "%s %s: expected %s, got %s\n", e.au.Red("FAIL"), fixture.Name,
				e.verdict(*fixture.Expect), e.verdict(result.collision))
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, len(fixtures))
	}
	return nil
}

func (e environment) svg(path string, workers int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	polygons, err := codec.DecodeSVG(file)
	if err != nil {
		return errors.Wrap(err, path)
	}

	world := gjk2d.NewWorld()
	world.Workers = workers
	world.Config = e.config
	world.Logger = e.logger
	for _, polygon := range polygons {
		body := actor.NewBody(actor.NewTransform(), polygon.Polygon, actor.BodyTypeDynamic)
		body.Name = polygon.ID
		world.AddBody(body)
	}

	overlaps := world.Step()
	fmt.Fprintf(e.out, "%d polygons, %d overlapping pairs\n", len(polygons), len(overlaps))
	for _, overlap := range overlaps {
		fmt.Fprintf(e.out, "%s %s %s\n", e.au.Bold(overlap.BodyA.Name), e.au.Red("overlaps"), e.au.Bold(overlap.BodyB.Name))
	}

	return nil
}

func (e environment) stress(ctx context.Context, textA, textB string, config stress.Config) error {
	a, err := codec.ParsePolygon(textA)
	if err != nil {
		return errors.Wrap(err, "a")
	}
	b, err := codec.ParsePolygon(textB)
	if err != nil {
		return errors.Wrap(err, "b")
	}
	config.GJK = e.config

	e.logger.Debug("stress", "trials", config.Trials, "epsilon", config.Epsilon, "seed", config.Seed)
	report, err := stress.Run(ctx, a, b, config)
	if err != nil && report.Trials == 0 {
		return err
	}

	fmt.Fprintf(e.out, "baseline: %s\n", e.verdict(report.Baseline))
	fmt.Fprintf(e.out, "trials: %d, flips: %d\n", report.Trials, len(report.Flips))
	for i, flip := range report.Flips {
		if i == maxPrintedFlips {
			fmt.Fprintf(e.out, "... %d more\n", len(report.Flips)-maxPrintedFlips)
			break
		}
		if flip.Err != nil {
			fmt.Fprintf(e.out, "trial %d (seed %d): %v\n", flip.Trial, config.Seed+int64(flip.Trial), flip.Err)
			continue
		}
		fmt.Fprintf(e.out, "trial %d (seed %d): %s\n", flip.Trial, config.Seed+int64(flip.Trial), e.verdict(flip.Collision))
	}
	if err != nil {
		return err
	}

	if defects := report.Defects(); len(defects) > 0 {
		return errors.Errorf("%d overlapping trials reported no collision", len(defects))
	}
	return nil
}
