package synthesis_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lorepozo/skn/core"
	"github.com/lorepozo/skn/synthesis"
	"github.com/lorepozo/skn/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCourse_PreservesTasksSchemaVerbatim(t *testing.T) {
	dir := t.TempDir()
	// A curriculum using the "problems" schema variant, not train/test.
	doc := `{"tasks":[{"name":"t1","problems":[{"i":"a","o":"b"}]}],"grammar":[{"expr":"B"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "course_01.json"), []byte(doc), 0o644))

	cfg := synthesis.NewConfig()
	cfg.CurriculumDir = dir

	course, err := synthesis.LoadCourse(cfg, 1)
	require.NoError(t, err)

	var roundTripped json.RawMessage
	require.NoError(t, json.Unmarshal(course.Tasks, &roundTripped))
	assert.JSONEq(t, `[{"name":"t1","problems":[{"i":"a","o":"b"}]}]`, string(roundTripped))
	require.Len(t, course.Grammar, 1)
	assert.Equal(t, "B", course.Grammar[0].Expr)
}

func TestCourseMerge_AppendsEcArtifactExpressions(t *testing.T) {
	items := []core.EmbryoItem{
		{MechanismTag: "ec", Payload: `["XY","ZZ"]`},
		{MechanismTag: "m", Payload: "not an expr list"},
	}
	net, err := core.NewNetwork(items)
	require.NoError(t, err)
	ctx := view.New(net, "ec")

	course := &synthesis.Course{Grammar: []synthesis.Comb{{Expr: "B"}}}
	require.NoError(t, course.Merge(ctx))

	require.Len(t, course.Grammar, 3)
	assert.Equal(t, "B", course.Grammar[0].Expr)
	assert.Equal(t, "XY", course.Grammar[1].Expr)
	assert.Equal(t, "ZZ", course.Grammar[2].Expr)
}

func TestSave_WritesRemovableTempFile(t *testing.T) {
	course := &synthesis.Course{Grammar: []synthesis.Comb{{Expr: "B"}}}
	path, cleanup, err := synthesis.Save(course, 1)
	require.NoError(t, err)
	defer cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"B"`)

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
