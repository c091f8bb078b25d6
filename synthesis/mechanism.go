package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lorepozo/skn/internal/logging"
	"github.com/lorepozo/skn/view"
)

// learnedExpr is one candidate expression and the probability mass the
// engine assigned it, after the primitive/finiteness filter has been
// applied (spec.md §9: "apply the primitives filter exactly once, at
// learned-set construction").
type learnedExpr struct {
	expr  string
	score float64
}

// Mechanism builds the registered mechanism.Mechanism-compatible callback
// for the Synthesis Mechanism: it loads a curriculum file, invokes the
// external engine, and reports the result back onto the context.
type Mechanism struct {
	cfg Config
	log *logging.Logger
}

// NewMechanism builds a Synthesis Mechanism from the given config. A nil
// logger is replaced with a no-op logger.
func NewMechanism(cfg Config, log *logging.Logger) *Mechanism {
	if log == nil {
		log = logging.Noop()
	}
	return &Mechanism{cfg: cfg, log: log}
}

// Run is the Synthesis Mechanism callback (spec.md §4.8). It has the
// mechanism.Mechanism signature and is registered directly with a
// mechanism.Registry.
func (m *Mechanism) Run(ctx *view.Context, iteration uint64) error {
	correlation := uuid.NewString()
	log := m.log.With("correlation_id", correlation, "iteration", iteration)

	results, err := m.invoke(ctx, iteration, log)
	if err != nil {
		return err
	}
	log.Infow("ec invocation complete", "hit_rate", results.HitRate, "programs", len(results.Programs))

	learned := m.buildLearnedSet(*results)
	if len(learned) == 0 {
		return nil
	}

	ctx = m.reorientToMostProbable(ctx, learned, log)
	m.reportAccesses(ctx, learned, log)
	return m.grow(ctx, learned, log)
}

func (m *Mechanism) invoke(ctx *view.Context, iteration uint64, log *logging.Logger) (*Results, error) {
	course, err := LoadCourse(m.cfg, iteration)
	if err != nil {
		return nil, err
	}
	if err := course.Merge(ctx); err != nil {
		return nil, err
	}
	path, cleanup, err := Save(course, iteration)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	runCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(runCtx, m.cfg.Binary, path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugw("invoking synthesis engine", "binary", m.cfg.Binary, "input", path)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("synthesis: ec failed at iteration %d: %w: %s", iteration, err, stderr.String())
	}

	return ParseResults(stdout.Bytes())
}

// buildLearnedSet implements spec.md §4.8 step 4: filter grammar (and,
// if configured, successful programs) to expressions that are neither
// primitives nor non-finite, exactly once.
func (m *Mechanism) buildLearnedSet(results Results) []learnedExpr {
	var learned []learnedExpr
	for _, c := range results.Grammar {
		if m.cfg.isPrimitive(c.Expr) || !c.LogLikelihood.IsFinite() {
			continue
		}
		learned = append(learned, learnedExpr{expr: c.Expr, score: float64(c.LogLikelihood)})
	}
	if m.cfg.IncludeProgs {
		for _, p := range results.Programs {
			if p.Result == nil {
				continue
			}
			if m.cfg.isPrimitive(p.Result.Expr) || !p.Result.LogProbability.IsFinite() {
				continue
			}
			learned = append(learned, learnedExpr{expr: p.Result.Expr, score: float64(p.Result.LogProbability)})
		}
	}
	return learned
}

// reorientToMostProbable implements step 5: re-center on the single
// highest-scoring learned expression if it can be located among the
// context's explorable artifacts.
func (m *Mechanism) reorientToMostProbable(ctx *view.Context, learned []learnedExpr, log *logging.Logger) *view.Context {
	top := argmax(learned)
	id, found := findExprID(ctx.Explore(), top.expr)
	if !found {
		return ctx
	}
	if err := ctx.Orient(id); err != nil {
		log.Warnw("reorient to most probable fragment failed", "expr", top.expr, "error", err)
		return ctx
	}
	return ctx.Refresh()
}

// reportAccesses implements step 6: normalize scores of locatable
// learned expressions into [0, access_factor] and record_access each,
// skipping the degenerate p_max == p_min case entirely (spec.md §8
// boundary behavior).
func (m *Mechanism) reportAccesses(ctx *view.Context, learned []learnedExpr, log *logging.Logger) {
	sorted := make([]learnedExpr, len(learned))
	copy(sorted, learned)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	type located struct {
		id    int
		score float64
	}
	var locatable []located
	for _, le := range sorted {
		id, found := findExprID(ctx.List(), le.expr)
		if !found {
			continue
		}
		locatable = append(locatable, located{id: id, score: le.score})
	}
	if len(locatable) == 0 {
		return
	}

	pMin, pMax := locatable[0].score, locatable[0].score
	for _, l := range locatable[1:] {
		if l.score < pMin {
			pMin = l.score
		}
		if l.score > pMax {
			pMax = l.score
		}
	}
	if pMax == pMin {
		return
	}

	factor := m.cfg.accessFactor()
	for _, l := range locatable {
		count := factor * (l.score - pMin) / (pMax - pMin)
		if count < 0 {
			continue
		}
		if err := ctx.RecordAccess(l.id, uint64(count)); err != nil {
			log.Warnw("record_access failed", "id", l.id, "error", err)
		}
	}
}

// grow implements step 7: take up to cfg.MaxGrowth learned expressions,
// sorted by descending score, excluding anything already present among
// the context's explorable artifacts. learned is already primitive-free
// by construction (buildLearnedSet applies that filter once).
func (m *Mechanism) grow(ctx *view.Context, learned []learnedExpr, log *logging.Logger) error {
	sorted := make([]learnedExpr, len(learned))
	copy(sorted, learned)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	present := exprsInArtifacts(ctx.Explore())

	var fresh []string
	for _, le := range sorted {
		if _, ok := present[le.expr]; ok {
			continue
		}
		present[le.expr] = -1 // mark seen so a repeated expr doesn't consume two slots
		fresh = append(fresh, le.expr)
		if len(fresh) >= m.cfg.maxGrowth() {
			break
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	payload, err := json.Marshal(fresh)
	if err != nil {
		return fmt.Errorf("synthesis: serializing growth payload: %w", err)
	}
	id, err := ctx.GrowFor(MechanismTag, string(payload))
	if err != nil {
		return err
	}
	log.Infow("grew new artifact", "id", id, "expressions", len(fresh))
	return nil
}

func argmax(learned []learnedExpr) learnedExpr {
	best := learned[0]
	for _, le := range learned[1:] {
		if le.score > best.score {
			best = le
		}
	}
	return best
}

