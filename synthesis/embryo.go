package synthesis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lorepozo/skn/core"
)

// embryoDoc is the on-disk shape of embryo.json: a list of
// [mechanism_tag, payload] pairs, mirroring the original engine's
// Vec<(&str, String)> embryo representation.
type embryoDoc [][2]string

// LoadEmbryo reads embryo.json from cfg.CurriculumDir and converts it to
// the embryo items core.NewNetwork expects.
func LoadEmbryo(cfg Config) ([]core.EmbryoItem, error) {
	path := filepath.Join(cfg.CurriculumDir, "embryo.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("synthesis: opening embryo file %s: %w", path, err)
	}
	var doc embryoDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("synthesis: parsing embryo file %s: %w", path, err)
	}
	items := make([]core.EmbryoItem, len(doc))
	for i, pair := range doc {
		items[i] = core.EmbryoItem{MechanismTag: pair[0], Payload: pair[1]}
	}
	return items, nil
}
