package mechanism

import (
	"fmt"

	"github.com/lorepozo/skn/core"
	"github.com/lorepozo/skn/internal/logging"
	"github.com/lorepozo/skn/view"
)

// Loop is the Integration Loop (spec.md §4.9): for t in 1..=T, it runs
// every registered mechanism, in registration order, against a context
// freshly derived from the network. No callback is ever preempted, and
// no two callbacks ever run concurrently.
type Loop struct {
	net      *core.Network
	registry *Registry
	log      *logging.Logger
}

// LoopOption configures a Loop at construction.
type LoopOption func(*Loop)

// WithLogger attaches a logger; mechanisms' fatal errors are logged
// before being returned.
func WithLogger(log *logging.Logger) LoopOption {
	return func(l *Loop) { l.log = log }
}

// NewLoop builds a Loop over net and registry.
func NewLoop(net *core.Network, registry *Registry, opts ...LoopOption) *Loop {
	l := &Loop{net: net, registry: registry, log: logging.Noop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes iterations 1..=T. A mechanism error is fatal: the run
// stops immediately and the error is returned, wrapped with the
// iteration and mechanism name that produced it (spec.md §7: "subprocess
// failure is fatal; surface the captured error stream").
func (l *Loop) Run(iterations uint64) error {
	for t := uint64(1); t <= iterations; t++ {
		for _, name := range l.registry.Names() {
			fn, err := l.registry.mustGet(name)
			if err != nil {
				return err
			}
			ctx := view.New(l.net, name)
			if err := fn(ctx, t); err != nil {
				l.log.Errorw("mechanism failed", "mechanism", name, "iteration", t, "error", err)
				return fmt.Errorf("mechanism/loop: iteration %d mechanism %q: %w", t, name, err)
			}
			l.log.Infow("mechanism invocation complete", "mechanism", name, "iteration", t)
		}
	}
	return nil
}
