// Package stress checks the stability of a GJK verdict near its boundary.
//
// Every trial perturbs each vertex of both polygons by a small random offset
// and compares the verdict with the unperturbed one.
package stress

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/akmonengine/gjk2d/actor"
	"github.com/akmonengine/gjk2d/gjk"
)

const (
	DEFAULT_EPSILON = 1e-6
	DEFAULT_WORKERS = 1
)

type Config struct {
	// Trials is the number of perturbed runs. Zero runs until the context is done.
	Trials int
	// Epsilon bounds the offset of each coordinate, DEFAULT_EPSILON when zero
	Epsilon float64
	// Seed of trial i is Seed+i
	Seed    int64
	Workers int
	GJK     gjk.Config
}

// Flip is a trial whose verdict differs from the baseline.
type Flip struct {
	Trial     int
	A, B      actor.Polygon
	Collision bool
	// Err is set when GJK failed on the perturbed polygons
	Err error
}

type Report struct {
	Baseline bool
	// Trials counts the completed trials
	Trials int
	// Flips is sorted by trial
	Flips []Flip
}

// Defects returns the flips from a collision to no collision.
func (r Report) Defects() []Flip {
	if !r.Baseline {
		return nil
	}

	var defects []Flip
	for _, flip := range r.Flips {
		if !flip.Collision {
			defects = append(defects, flip)
		}
	}

	return defects
}

// Run computes the baseline verdict of a and b, then runs the perturbed trials
// over config.Workers goroutines. The report does not depend on the worker count.
//
// With a positive Trials, a cancelled context stops the run and its error is
// returned with the partial report. With Trials at zero, cancellation is the
// normal end of the run.
func Run(ctx context.Context, a, b actor.Polygon, config Config) (Report, error) {
	var report Report

	baseline, err := gjk.GJK(a, b, config.GJK)
	if err != nil {
		return report, errors.Wrap(err, "baseline")
	}
	report.Baseline = baseline.Collision

	epsilon := config.Epsilon
	if epsilon <= 0 {
		epsilon = DEFAULT_EPSILON
	}
	workers := config.Workers
	if workers <= 0 {
		workers = DEFAULT_WORKERS
	}

	var next, completed atomic.Int64
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for gctx.Err() == nil {
				trial := int(next.Add(1) - 1)
				if config.Trials > 0 && trial >= config.Trials {
					return nil
				}

				rng := rand.New(rand.NewSource(config.Seed + int64(trial)))
				pa := Perturb(a, epsilon, rng)
				pb := Perturb(b, epsilon, rng)

				result, err := gjk.GJK(pa, pb, config.GJK)
				if err != nil || result.Collision != report.Baseline {
					mu.Lock()
					report.Flips = append(report.Flips, Flip{
						Trial:     trial,
						A:         pa,
						B:         pb,
						Collision: err == nil && result.Collision,
						Err:       err,
					})
					mu.Unlock()
				}
				completed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Trials = int(completed.Load())
	sort.Slice(report.Flips, func(i, j int) bool {
		return report.Flips[i].Trial < report.Flips[j].Trial
	})

	if config.Trials > 0 && ctx.Err() != nil {
		return report, ctx.Err()
	}

	return report, nil
}

// Perturb returns a copy of polygon with each coordinate moved by an offset
// uniform in [-epsilon, epsilon].
func Perturb(polygon actor.Polygon, epsilon float64, rng *rand.Rand) actor.Polygon {
	perturbed := make(actor.Polygon, len(polygon))
	for i, p := range polygon {
		offset := mgl64.Vec2{
			(rng.Float64()*2 - 1) * epsilon,
			(rng.Float64()*2 - 1) * epsilon,
		}
		perturbed[i] = p.Add(offset)
	}

	return perturbed
}
