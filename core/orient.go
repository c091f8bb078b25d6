package core

import (
	"math"
	"sort"
)

// Orient appends a new epoch centered on centerID, choosing its context by
// a popularity-weighted greedy walk over the neighborhood of centerID
// (spec.md §4.4). sinceEpoch is the horizon recentCount uses while scoring
// candidates.
//
// If the network has fewer artifacts than context_min_size, the entire
// network becomes the context. Otherwise a target size is drawn from the
// expected max-degree of a scale-free graph with a randomized exponent in
// [0.5, 1.0), and the walk admits neighbors in descending popularity order
// until it reaches that target or runs out of graph to explore.
func (n *Network) Orient(sinceEpoch, centerID int) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orientLocked(sinceEpoch, centerID)
}

// orientLocked must be called with mu held for writing.
func (n *Network) orientLocked(sinceEpoch, centerID int) (int, error) {
	size := len(n.artifacts)
	if centerID < 0 || centerID >= size {
		return 0, wrapf("Orient", ErrUnknownArtifact)
	}

	var ctx map[int]struct{}
	if size < n.contextMinSize {
		ctx = make(map[int]struct{}, size)
		for id := 0; id < size; id++ {
			ctx[id] = struct{}{}
		}
	} else {
		ctx = n.greedyPopularityWalk(sinceEpoch, centerID, size)
	}

	n.epochs = append(n.epochs, epoch{
		center:   centerID,
		context:  ctx,
		accessed: make(map[int]struct{}),
	})
	return len(n.epochs) - 1, nil
}

// greedyPopularityWalk implements the body of spec.md §4.4's bulleted
// algorithm. Ties in popularity are broken by ascending artifact id, so
// behavior is deterministic for a fixed RNG stream.
func (n *Network) greedyPopularityWalk(sinceEpoch, centerID, size int) map[int]struct{} {
	gamma := 0.5 + n.rng.Float64()*0.5 // uniform in [0.5, 1.0)
	target := int(0.5 * math.Pow(float64(size), gamma))
	if target < n.contextMinSize {
		target = n.contextMinSize
	}
	if target > size {
		target = size
	}

	ctx := make(map[int]struct{})
	selected := centerID
	for len(ctx) < target {
		ext := n.neighborsExcluding(selected, ctx)
		if len(ext) == 0 {
			break
		}
		if len(ext)+len(ctx) > target {
			sort.Slice(ext, func(i, j int) bool {
				ci := n.recentCountLocked(ext[i], sinceEpoch)
				cj := n.recentCountLocked(ext[j], sinceEpoch)
				if ci != cj {
					return ci > cj
				}
				return ext[i] < ext[j]
			})
			take := target - len(ctx)
			for _, id := range ext[:take] {
				ctx[id] = struct{}{}
			}
			break
		}

		best := ext[0]
		bestCount := n.recentCountLocked(best, sinceEpoch)
		for _, id := range ext[1:] {
			c := n.recentCountLocked(id, sinceEpoch)
			if c > bestCount || (c == bestCount && id < best) {
				best, bestCount = id, c
			}
		}
		for _, id := range ext {
			ctx[id] = struct{}{}
		}
		selected = best
	}
	return ctx
}

// neighborsExcluding returns the neighbors of id that are not already in
// exclude, as a slice (order is not meaningful; callers sort as needed).
func (n *Network) neighborsExcluding(id int, exclude map[int]struct{}) []int {
	a := n.artifacts[id]
	out := make([]int, 0, len(a.neighbors))
	for nb := range a.neighbors {
		if _, skip := exclude[nb]; !skip {
			out = append(out, nb)
		}
	}
	return out
}
