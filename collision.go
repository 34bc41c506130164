package gjk2d

import (
	"sort"
	"sync"

	"github.com/akmonengine/gjk2d/actor"
	"github.com/akmonengine/gjk2d/gjk"
	"github.com/akmonengine/gjk2d/logging"
)

// CollisionPair represents two bodies whose polygons overlap
type CollisionPair struct {
	BodyA  *actor.Body
	BodyB  *actor.Body
	Result gjk.Result

	indexA, indexB int
}

// BroadPhase rebuilds the spatial grid and streams the pairs whose AABBs overlap
func BroadPhase(spatialGrid *SpatialGrid, bodies []*actor.Body, workersCount int) <-chan Pair {
	spatialGrid.Clear()
	for i, body := range bodies {
		spatialGrid.Insert(i, body)
	}
	spatialGrid.SortCells()

	return spatialGrid.FindPairsParallel(bodies, workersCount)
}

// NarrowPhase runs GJK on every pair with workersCount goroutines.
// A pair for which GJK fails is logged and counted as not overlapping.
// The result is sorted by body index, whatever the scheduling.
func NarrowPhase(pairs <-chan Pair, workersCount int, config gjk.Config, logger logging.Logger) []CollisionPair {
	collisionChan := GJK(pairs, workersCount, config, logger)

	collisions := make([]CollisionPair, 0)
	for c := range collisionChan {
		collisions = append(collisions, c)
	}

	sort.Slice(collisions, func(i, j int) bool {
		if collisions[i].indexA != collisions[j].indexA {
			return collisions[i].indexA < collisions[j].indexA
		}
		return collisions[i].indexB < collisions[j].indexB
	})

	return collisions
}

func GJK(pairChan <-chan Pair, workersCount int, config gjk.Config, logger logging.Logger) <-chan CollisionPair {
	collisionChan := make(chan CollisionPair, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(collisionChan)

		for i := 0; i < workersCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for p := range pairChan {
					result, err := gjk.GJK(p.BodyA.WorldVertices(), p.BodyB.WorldVertices(), config)
					if err != nil {
						logger.Warn("gjk failed, pair ignored",
							"bodyA", p.BodyA.Name, "bodyB", p.BodyB.Name,
							"iterations", result.Iterations, "error", err)
						continue
					}

					if result.Collision {
						collisionChan <- CollisionPair{
							BodyA:  p.BodyA,
							BodyB:  p.BodyB,
							Result: result,
							indexA: p.indexA,
							indexB: p.indexB,
						}
					}
				}
			}()
		}
		wg.Wait()
	}()

	return collisionChan
}
