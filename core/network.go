package core

// NewNetwork builds the embryo clique described in spec.md §4.1: ids are
// assigned 0..n-1 in order, every embryo artifact is connected to every
// other embryo artifact, and an initial epoch is pushed whose context is
// the entire embryo and whose accessed set is empty. context_min_size is
// raised to the embryo size if the embryo is larger than the configured
// floor; it is never decreased afterward.
//
// NewNetwork fails only when embryo is empty.
func NewNetwork(embryo []EmbryoItem, opts ...NetworkOption) (*Network, error) {
	if len(embryo) == 0 {
		return nil, wrapf("NewNetwork", ErrEmptyEmbryo)
	}

	cfg := newNetworkConfig(opts...)
	n := len(embryo)

	artifacts := make([]*artifact, n)
	allIDs := make(map[int]struct{}, n)
	for id := range embryo {
		allIDs[id] = struct{}{}
	}
	for id, item := range embryo {
		neighbors := make(map[int]struct{}, n-1)
		for other := range allIDs {
			if other != id {
				neighbors[other] = struct{}{}
			}
		}
		artifacts[id] = &artifact{
			mechanismTag: item.MechanismTag,
			payload:      item.Payload,
			neighbors:    neighbors,
			counts:       make(map[int]uint64),
		}
	}

	contextMinSize := cfg.contextMinSize
	if n > contextMinSize {
		contextMinSize = n
	}

	initialContext := make(map[int]struct{}, n)
	for id := range allIDs {
		initialContext[id] = struct{}{}
	}

	net := &Network{
		artifacts:      artifacts,
		contextMinSize: contextMinSize,
		maxSize:        cfg.maxSize,
		rng:            cfg.rng,
		epochs: []epoch{{
			center:   0,
			context:  initialContext,
			accessed: make(map[int]struct{}),
		}},
	}
	return net, nil
}

// Len reports the current number of artifacts in the network.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.artifacts)
}

// EpochCount reports the current length of the epoch log.
func (n *Network) EpochCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.epochs)
}

// Artifact returns a snapshot of the artifact with the given id.
func (n *Network) Artifact(id int) (Artifact, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.snapshotLocked(id)
}

// snapshotLocked must be called with mu held (read or write).
func (n *Network) snapshotLocked(id int) (Artifact, error) {
	if id < 0 || id >= len(n.artifacts) {
		return Artifact{}, wrapf("Artifact", ErrUnknownArtifact)
	}
	a := n.artifacts[id]
	neighbors := make([]int, 0, len(a.neighbors))
	for nb := range a.neighbors {
		neighbors = append(neighbors, nb)
	}
	counts := make(map[int]uint64, len(a.counts))
	for e, c := range a.counts {
		counts[e] = c
	}
	return Artifact{
		ID:           id,
		MechanismTag: a.mechanismTag,
		Payload:      a.payload,
		Neighbors:    neighbors,
		Counts:       counts,
	}, nil
}

// LatestEpoch returns the index of the most recently appended epoch.
func (n *Network) LatestEpoch() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.epochs) - 1
}

// EpochContext returns a copy of the context set frozen at the given
// epoch.
func (n *Network) EpochContext(idx int) (map[int]struct{}, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if idx < 0 || idx >= len(n.epochs) {
		return nil, wrapf("EpochContext", ErrInvalidEpoch)
	}
	return cloneSet(n.epochs[idx].context), nil
}

// LatestContext returns the epoch index and a copy of the context set for
// the network's most recent epoch (spec.md's "context-at-latest-epoch"
// primitive).
func (n *Network) LatestContext() (int, map[int]struct{}) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	idx := len(n.epochs) - 1
	return idx, cloneSet(n.epochs[idx].context)
}

// ContextMinSize returns the network's current context_min_size floor.
func (n *Network) ContextMinSize() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.contextMinSize
}

// MaxSize returns the network's configured maximum artifact count.
func (n *Network) MaxSize() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.maxSize
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
