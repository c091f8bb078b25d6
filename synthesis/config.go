// Package synthesis implements the Synthesis Mechanism (spec.md §4.8):
// the production mechanism that merges a context's "ec"-tagged artifacts
// with a curriculum file, invokes the external synthesis engine as a
// subprocess, and turns its result back into record_access/orient/grow
// calls on the Network.
package synthesis

import (
	"fmt"
	"os"
	"path/filepath"
)

// AccessFactor is the normalization constant for proportional access
// reporting (spec.md §4.8 step 6).
const AccessFactor = 400

// MaxGrowth caps how many new expressions a single invocation may grow
// (spec.md §4.8 step 7).
const MaxGrowth = 20

// MechanismTag is the artifact mechanism tag the Synthesis Mechanism
// reads from and grows under.
const MechanismTag = "ec"

// defaultPrimitives is the fixed allow-list of expressions treated as
// already known, carried over from the original synthesis engine's
// combinator/arithmetic/string-op primitive set.
var defaultPrimitives = []string{
	`' '`, `','`, `'.'`, `'<'`, `'>'`, `'@'`,
	"+", "+1", "-1", "0",
	"B", "C", "I", "K", "S",
	"cap", "feach", "findchar", "fnth", "len",
	"lower", "nth", "string-of-char", "substr", "uncap", "upper",
}

// Config holds the knobs spec.md leaves as "a configuration constant of
// the mechanism, not of the Network".
type Config struct {
	// Binary is the synthesis engine executable. Resolved in order: the
	// EC environment variable, then ./ec if it exists, then "ec" on
	// PATH (spec.md §4.8 step 2).
	Binary string
	// CurriculumDir holds course_{NN}.json and embryo.json. Resolved
	// from EC_CURRICULUM if Config didn't set it explicitly.
	CurriculumDir string
	// Primitives is the fixed allow-list; defaults to defaultPrimitives.
	Primitives map[string]struct{}
	// IncludeProgs mirrors EC_GRAMMAR_INCLUDE_PROGS: when true, successful
	// program results are folded into the learned set alongside grammar
	// fragments (spec.md §4.8 step 4).
	IncludeProgs bool
	// AccessFactor and MaxGrowth override the package defaults; zero
	// means "use the default".
	AccessFactor float64
	MaxGrowth    int
}

// NewConfig builds a Config from environment variables and defaults,
// mirroring the original engine's EC/EC_CURRICULUM resolution order.
func NewConfig() Config {
	cfg := Config{
		Binary:        resolveBinary(),
		CurriculumDir: os.Getenv("EC_CURRICULUM"),
		Primitives:    primitiveSet(defaultPrimitives),
		IncludeProgs:  true,
		AccessFactor:  AccessFactor,
		MaxGrowth:     MaxGrowth,
	}
	return cfg
}

func resolveBinary() string {
	if bin := os.Getenv("EC"); bin != "" {
		return bin
	}
	if _, err := os.Stat("./ec"); err == nil {
		return "./ec"
	}
	return "ec"
}

func primitiveSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// CoursePath returns the path to the curriculum file for iteration i,
// formatted as course_{i:02}.json.
func (c Config) CoursePath(iteration uint64) string {
	return filepath.Join(c.CurriculumDir, coursesFileName(iteration))
}

func coursesFileName(iteration uint64) string {
	return fmt.Sprintf("course_%02d.json", iteration)
}

func (c Config) accessFactor() float64 {
	if c.AccessFactor == 0 {
		return AccessFactor
	}
	return c.AccessFactor
}

func (c Config) maxGrowth() int {
	if c.MaxGrowth == 0 {
		return MaxGrowth
	}
	return c.MaxGrowth
}

func (c Config) isPrimitive(expr string) bool {
	_, ok := c.Primitives[expr]
	return ok
}
