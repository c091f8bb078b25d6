package synthesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lorepozo/skn/synthesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbryo_ParsesPairs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "embryo.json"), []byte(`[["ec","[]"],["m","seed"]]`), 0o644))

	cfg := synthesis.NewConfig()
	cfg.CurriculumDir = dir

	items, err := synthesis.LoadEmbryo(cfg)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "ec", items[0].MechanismTag)
	assert.Equal(t, "[]", items[0].Payload)
	assert.Equal(t, "seed", items[1].Payload)
}

func TestLoadEmbryo_MissingFileErrors(t *testing.T) {
	cfg := synthesis.NewConfig()
	cfg.CurriculumDir = t.TempDir()
	_, err := synthesis.LoadEmbryo(cfg)
	assert.Error(t, err)
}
