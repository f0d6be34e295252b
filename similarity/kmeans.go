package similarity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/poiesic/phonemescape/core"
	"github.com/viant/vec/search"
)

// Clusters maps a cluster id to its member symbols, in input order.
type Clusters map[int][]string

// Size returns the total number of members across all clusters.
func (c Clusters) Size() int {
	n := 0
	for _, members := range c {
		n += len(members)
	}
	return n
}

// Of returns the cluster id holding symbol.
func (c Clusters) Of(symbol string) (int, bool) {
	for id, members := range c {
		for _, m := range members {
			if m == symbol {
				return id, true
			}
		}
	}
	return 0, false
}

// Cluster partitions symbols into k groups by k-means over their raw feature
// vectors. See ClusterWithMonitor.
func (v *View) Cluster(symbols []string, k int) (Clusters, error) {
	return v.ClusterWithMonitor(symbols, k, nil)
}

// ClusterWithMonitor partitions symbols into exactly k non-empty groups using
// k-means++ seeding and Lloyd iterations, reporting progress to monitor.
// Seeding draws from a PCG source seeded with the engine seed, so results are
// identical across runs. Cluster ids are numbered by first appearance in
// symbols.
//
// Mixed vowel/consonant input clusters on raw coordinates from two planes;
// the categories usually separate by coordinate magnitude.
func (v *View) ClusterWithMonitor(symbols []string, k int, monitor ClusterMonitor) (Clusters, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if k < 1 || k > len(symbols) {
		return nil, fmt.Errorf("%w: %w: k=%d for %d symbols", core.ErrInvalidArgument, ErrInvalidK, k, len(symbols))
	}

	points := make([][]float32, len(symbols))
	for i, s := range symbols {
		e, err := v.entry(s)
		if err != nil {
			return nil, err
		}
		points[i] = []float32{float32(e.Vector[0]), float32(e.Vector[1]), float32(e.Vector[2])}
	}

	monitor.Start(symbols, k)

	km := &kmeans{
		points:        points,
		k:             k,
		rng:           rand.New(rand.NewPCG(v.engine.seed, v.engine.seed)),
		maxIterations: v.engine.maxIterations,
	}
	labels, iterations := km.run(monitor)

	// Renumber by first appearance so ids do not depend on seeding order.
	remap := make(map[int]int, k)
	clusters := make(Clusters, k)
	for i, label := range labels {
		id, ok := remap[label]
		if !ok {
			id = len(remap)
			remap[label] = id
		}
		clusters[id] = append(clusters[id], symbols[i])
	}

	v.engine.logger.Debug("clustered phonemes", "symbols", len(symbols), "k", k, "iterations", iterations)
	monitor.Finish(clusters, iterations)
	return clusters, nil
}

type kmeans struct {
	points        [][]float32
	k             int
	rng           *rand.Rand
	maxIterations int
	centroids     [][]float32
	labels        []int
}

func distance(a, b []float32) float64 {
	return float64(search.Float32s(a).EuclideanDistance(b))
}

// run returns one label per point in [0, k) with every label used, and the
// number of iterations performed.
func (km *kmeans) run(monitor ClusterMonitor) ([]int, int) {
	km.seed()
	monitor.AfterSeeding(km.centroids)

	km.labels = make([]int, len(km.points))
	for i := range km.labels {
		km.labels[i] = -1
	}

	iteration := 0
	for iteration < km.maxIterations {
		iteration++
		moved := km.assign()
		moved += km.fillEmpty()
		km.update()
		monitor.AfterIteration(iteration, moved)
		if moved == 0 {
			break
		}
	}
	return km.labels, iteration
}

// seed picks initial centroids with k-means++: the first uniformly, each next
// one with probability proportional to its squared distance from the nearest
// chosen centroid.
func (km *kmeans) seed() {
	n := len(km.points)
	chosen := make([]bool, n)
	first := km.rng.IntN(n)
	chosen[first] = true
	km.centroids = [][]float32{clone(km.points[first])}

	weights := make([]float64, n)
	for len(km.centroids) < km.k {
		var total float64
		for i, p := range km.points {
			d := math.Inf(1)
			for _, c := range km.centroids {
				d = math.Min(d, distance(p, c))
			}
			weights[i] = d * d
			total += weights[i]
		}

		next := -1
		if total > 0 {
			target := km.rng.Float64() * total
			for i, w := range weights {
				target -= w
				if w > 0 && target <= 0 {
					next = i
					break
				}
			}
		}
		if next < 0 {
			// All remaining points coincide with a centroid; take any unused point.
			next = km.unchosen(chosen)
		}
		chosen[next] = true
		km.centroids = append(km.centroids, clone(km.points[next]))
	}
}

func (km *kmeans) unchosen(chosen []bool) int {
	start := km.rng.IntN(len(chosen))
	for off := range chosen {
		i := (start + off) % len(chosen)
		if !chosen[i] {
			return i
		}
	}
	return start
}

// assign moves each point to its nearest centroid. A point stays put when
// its current centroid ties for nearest.
func (km *kmeans) assign() int {
	moved := 0
	for i, p := range km.points {
		best, bestDist := 0, math.Inf(1)
		if l := km.labels[i]; l >= 0 {
			best, bestDist = l, distance(p, km.centroids[l])
		}
		for c, centroid := range km.centroids {
			if d := distance(p, centroid); d < bestDist {
				best, bestDist = c, d
			}
		}
		if km.labels[i] != best {
			km.labels[i] = best
			moved++
		}
	}
	return moved
}

// fillEmpty gives every empty cluster the point farthest from its current
// centroid, taken from a cluster with more than one member.
func (km *kmeans) fillEmpty() int {
	counts := make([]int, km.k)
	for _, l := range km.labels {
		counts[l]++
	}
	moved := 0
	for c := range counts {
		if counts[c] > 0 {
			continue
		}
		far, farDist := -1, -1.0
		for i, p := range km.points {
			l := km.labels[i]
			if counts[l] < 2 {
				continue
			}
			if d := distance(p, km.centroids[l]); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			continue
		}
		counts[km.labels[far]]--
		counts[c]++
		km.labels[far] = c
		km.centroids[c] = clone(km.points[far])
		moved++
	}
	return moved
}

// update moves each centroid to the mean of its members.
func (km *kmeans) update() {
	dims := len(km.points[0])
	sums := make([][]float64, km.k)
	counts := make([]int, km.k)
	for c := range sums {
		sums[c] = make([]float64, dims)
	}
	for i, p := range km.points {
		l := km.labels[i]
		counts[l]++
		for d, x := range p {
			sums[l][d] += float64(x)
		}
	}
	for c := range km.centroids {
		if counts[c] == 0 {
			continue
		}
		for d := range km.centroids[c] {
			km.centroids[c][d] = float32(sums[c][d] / float64(counts[c]))
		}
	}
}

func clone(v []float32) []float32 { return append([]float32(nil), v...) }
