// Package view implements the Context handle (spec.md §4.7): an immutable
// snapshot of a Network's current epoch that mechanisms read from and
// mutate the Network through. The package is named view, not context, to
// avoid colliding with the standard library's context.Context — the two
// are unrelated; this Context never carries cancellation or deadlines.
package view

import (
	"sort"

	"github.com/lorepozo/skn/core"
)

// network is the subset of *core.Network a Context needs. Accepting an
// interface here (rather than *core.Network directly) keeps the package
// testable with a fake network and makes the dependency explicit.
type network interface {
	RecordAccess(epoch, id int, count uint64) error
	Orient(sinceEpoch, centerID int) (int, error)
	Grow(mechanismTag, payload string, sinceEpoch int) (int, error)
	FrontierOf(items map[int]struct{}) map[int]struct{}
	Artifact(id int) (core.Artifact, error)
	LatestContext() (int, map[int]struct{})
}

// Context is an immutable handle over a network's state as of the epoch
// it was minted in. Its fields never change after construction; Refresh
// returns a new Context rather than mutating this one.
type Context struct {
	net          network
	mechanismTag string
	items        map[int]struct{}
	frontier     map[int]struct{}
	initialEpoch int
	currentEpoch int
}

// New constructs a Context over the network's latest epoch, per spec.md
// §4.7: items is a copy of that epoch's context set, frontier is its
// one-hop boundary, and both initialEpoch and currentEpoch start at that
// epoch index.
func New(net *core.Network, mechanismTag string) *Context {
	return newContext(net, mechanismTag)
}

func newContext(net network, mechanismTag string) *Context {
	epoch, items := net.LatestContext()
	return &Context{
		net:          net,
		mechanismTag: mechanismTag,
		items:        items,
		frontier:     net.FrontierOf(items),
		initialEpoch: epoch,
		currentEpoch: epoch,
	}
}

// List returns every artifact in the immediate context, sorted by id for
// deterministic iteration.
func (c *Context) List() []core.Artifact {
	return c.resolve(c.items)
}

// Explore returns every artifact in the context union its frontier.
func (c *Context) Explore() []core.Artifact {
	union := make(map[int]struct{}, len(c.items)+len(c.frontier))
	for id := range c.items {
		union[id] = struct{}{}
	}
	for id := range c.frontier {
		union[id] = struct{}{}
	}
	return c.resolve(union)
}

func (c *Context) resolve(ids map[int]struct{}) []core.Artifact {
	out := make([]core.Artifact, 0, len(ids))
	for id := range ids {
		a, err := c.net.Artifact(id)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RecordAccess delegates to the network at this handle's current_epoch.
func (c *Context) RecordAccess(id int, count uint64) error {
	return c.net.RecordAccess(c.currentEpoch, id, count)
}

// Orient delegates to the network at this handle's initial_epoch (the
// antecedent horizon), re-centering the network on id. The handle itself
// is not updated; call Refresh afterward to see the new context.
func (c *Context) Orient(id int) error {
	_, err := c.net.Orient(c.initialEpoch, id)
	return err
}

// Grow delegates to the network at initial_epoch, growing a new artifact
// tagged with this handle's mechanism.
func (c *Context) Grow(payload string) (int, error) {
	return c.GrowFor(c.mechanismTag, payload)
}

// GrowFor is Grow but for an explicitly given mechanism tag.
func (c *Context) GrowFor(mechanismTag, payload string) (int, error) {
	return c.net.Grow(mechanismTag, payload, c.initialEpoch)
}

// Refresh returns a new Context reflecting whatever orients/grows have
// happened on the network since this one was minted, preserving
// initial_epoch (the refresh preserves horizon law, spec.md §8).
func (c *Context) Refresh() *Context {
	epoch, items := c.net.LatestContext()
	return &Context{
		net:          c.net,
		mechanismTag: c.mechanismTag,
		items:        items,
		frontier:     c.net.FrontierOf(items),
		initialEpoch: c.initialEpoch,
		currentEpoch: epoch,
	}
}

// MechanismTag returns the tag this handle was minted for.
func (c *Context) MechanismTag() string { return c.mechanismTag }

// InitialEpoch returns the epoch index this handle was minted at — the
// antecedent horizon used by Orient and Grow.
func (c *Context) InitialEpoch() int { return c.initialEpoch }
