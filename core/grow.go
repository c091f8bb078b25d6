package core

// Grow inserts a new artifact carrying mechanismTag and payload, wires it
// to antecedent artifacts chosen by popularity-biased Bernoulli trials with
// a Chinese-Restaurant-Process fallback, mirrors the new edges on both
// ends, and implicitly orients the network on the new artifact to create
// the post-growth epoch (spec.md §4.5).
//
// Grow fails if the network is already at its configured maximum size.
func (n *Network) Grow(mechanismTag, payload string, sinceEpoch int) (int, error) {
	n.mu.Lock()

	if len(n.artifacts) >= n.maxSize {
		n.mu.Unlock()
		return 0, wrapf("Grow", ErrNetworkFull)
	}
	if sinceEpoch < 0 || sinceEpoch >= len(n.epochs) {
		n.mu.Unlock()
		return 0, wrapf("Grow", ErrInvalidEpoch)
	}

	newID := len(n.artifacts)

	antecedents, err := n.antecedentProbabilities(sinceEpoch)
	if err != nil {
		n.mu.Unlock()
		return 0, err
	}

	edges := n.selectEdges(antecedents)

	for oid := range edges {
		n.artifacts[oid].neighbors[newID] = struct{}{}
	}

	n.artifacts = append(n.artifacts, &artifact{
		mechanismTag: mechanismTag,
		payload:      payload,
		neighbors:    edges,
		counts:       make(map[int]uint64),
	})

	n.mu.Unlock()

	if _, err := n.Orient(sinceEpoch, newID); err != nil {
		return 0, err
	}
	return newID, nil
}

// antecedentProbabilities collects every artifact id that appeared in a
// context or accessed set from sinceEpoch onward (spec.md §4.5 step 3),
// and normalizes weight(id) = 1 + recentCount(id, sinceEpoch) into
// probabilities (step 4). Must be called with mu held.
func (n *Network) antecedentProbabilities(sinceEpoch int) (map[int]float64, error) {
	ids := make(map[int]struct{})
	for e := sinceEpoch; e < len(n.epochs); e++ {
		for id := range n.epochs[e].context {
			ids[id] = struct{}{}
		}
		for id := range n.epochs[e].accessed {
			ids[id] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil, wrapf("Grow", ErrNoAntecedents)
	}

	weights := make(map[int]uint64, len(ids))
	var sum uint64
	for id := range ids {
		w := 1 + n.recentCountLocked(id, sinceEpoch)
		weights[id] = w
		sum += w
	}

	probs := make(map[int]float64, len(ids))
	for id, w := range weights {
		probs[id] = float64(w) / float64(sum)
	}
	return probs, nil
}

// selectEdges runs the two-stage edge-selection rule from spec.md §4.5
// steps 5-6: independent Bernoulli trials biased by probability, falling
// back to a single Chinese-Restaurant-Process draw if every trial failed.
func (n *Network) selectEdges(probs map[int]float64) map[int]struct{} {
	edges := make(map[int]struct{})
	for id, p := range probs {
		if n.rng.Float64() <= p {
			edges[id] = struct{}{}
		}
	}
	if len(edges) > 0 {
		return edges
	}

	r := n.rng.Float64()
	var lastSeen int
	haveLastSeen := false
	for id, p := range probs {
		lastSeen, haveLastSeen = id, true
		r -= p
		if r < 0 {
			edges[id] = struct{}{}
			return edges
		}
	}
	// Floating-point rounding may leave r >= 0 after the full pass; fall
	// back to whichever antecedent was last visited so Grow always wires
	// at least one edge when antecedents exist.
	if haveLastSeen {
		edges[lastSeen] = struct{}{}
	}
	return edges
}
