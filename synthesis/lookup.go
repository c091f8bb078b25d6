package synthesis

import (
	"encoding/json"

	"github.com/lorepozo/skn/core"
)

// exprsInArtifacts indexes every expression carried by "ec"-tagged
// artifacts in the given list, mapping expr -> artifact id. Later
// artifacts win ties, mirroring a plain map build in iteration order.
func exprsInArtifacts(artifacts []core.Artifact) map[string]int {
	index := make(map[string]int)
	for _, a := range artifacts {
		if a.MechanismTag != MechanismTag {
			continue
		}
		var exprs []string
		if err := json.Unmarshal([]byte(a.Payload), &exprs); err != nil {
			continue
		}
		for _, e := range exprs {
			index[e] = a.ID
		}
	}
	return index
}

// findExprID locates the artifact among the given list whose "ec"
// payload contains expr. Artifacts with a different mechanism tag or an
// unparseable payload are skipped — this mirrors spec.md §7's "missing
// expression lookup ... silently skipped".
func findExprID(artifacts []core.Artifact, expr string) (int, bool) {
	id, ok := exprsInArtifacts(artifacts)[expr]
	return id, ok
}
