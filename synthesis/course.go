package synthesis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lorepozo/skn/view"
)

// Comb is a single grammar entry in a synthesis input document.
type Comb struct {
	Expr string `json:"expr"`
}

// Course is the synthesis input document: curriculum tasks passed
// through unchanged, plus a grammar assembled from the curriculum file
// and the current context's "ec" artifacts. Tasks is kept as raw JSON
// because spec.md §6 requires preserving whichever task schema variant
// the curriculum file used (train/test vs. a single problems list) —
// this package never interprets it.
type Course struct {
	Tasks   json.RawMessage `json:"tasks"`
	Grammar []Comb          `json:"grammar"`
}

// LoadCourse reads and parses the curriculum file for the given
// iteration from cfg.CurriculumDir.
func LoadCourse(cfg Config, iteration uint64) (*Course, error) {
	path := cfg.CoursePath(iteration)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("synthesis: opening course file %s: %w", path, err)
	}
	var c Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("synthesis: parsing course file %s: %w", path, err)
	}
	return &c, nil
}

// Merge appends every expression carried by "ec"-tagged artifacts in
// ctx.List() to the course's grammar (spec.md §4.8 step 1). Each such
// artifact's payload is a JSON list of expression strings.
func (c *Course) Merge(ctx *view.Context) error {
	for _, a := range ctx.List() {
		if a.MechanismTag != MechanismTag {
			continue
		}
		var exprs []string
		if err := json.Unmarshal([]byte(a.Payload), &exprs); err != nil {
			return fmt.Errorf("synthesis: parsing combinator payload of artifact %d: %w", a.ID, err)
		}
		for _, e := range exprs {
			c.Grammar = append(c.Grammar, Comb{Expr: e})
		}
	}
	return nil
}

// Save serializes the course to a temporary file and returns its path
// plus a cleanup function the caller must invoke on every exit path
// (spec.md §5: "temporary files ... must be released on every exit path
// including failure").
func Save(c *Course, iteration uint64) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", fmt.Sprintf("ec_input_%d_*.json", iteration))
	if err != nil {
		return "", func() {}, fmt.Errorf("synthesis: creating temp input file: %w", err)
	}
	cleanup = func() { _ = os.Remove(f.Name()) }

	enc := json.NewEncoder(f)
	if encErr := enc.Encode(c); encErr != nil {
		_ = f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("synthesis: writing temp input file: %w", encErr)
	}
	if closeErr := f.Close(); closeErr != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("synthesis: closing temp input file: %w", closeErr)
	}
	return f.Name(), cleanup, nil
}
